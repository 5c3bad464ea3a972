package share

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestText(t *testing.T) {
	p := engine.SharePayload{Score: 87, Attempts: 3, Link: "https://example.com"}
	got := Text(i18n.New("en-US"), p)
	want := "I scored 87 in just 3 attempts!\nCan you beat my score? Try now!"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}

func TestURLs(t *testing.T) {
	p := engine.SharePayload{Score: 87, Attempts: 3, Link: "https://example.com/a b"}
	urls := URLs("hi there", p)
	if len(urls) != len(Platforms) {
		t.Fatalf("expected %d urls, got %d", len(Platforms), len(urls))
	}
	if got := urls[Twitter]; got != "https://twitter.com/intent/tweet?text=hi+there&url=https%3A%2F%2Fexample.com%2Fa+b" {
		t.Fatalf("unexpected twitter url: %s", got)
	}
	if !strings.HasPrefix(urls[Telegram], "https://t.me/share/url?url=") {
		t.Fatalf("unexpected telegram url: %s", urls[Telegram])
	}
	if got := urls[WhatsApp]; got != "https://wa.me/?text=hi+there%0Ahttps%3A%2F%2Fexample.com%2Fa+b" {
		t.Fatalf("unexpected whatsapp url: %s", got)
	}
}

func TestCopyLink(t *testing.T) {
	cb := &fakeClipboard{}
	p := engine.SharePayload{Link: "https://example.com"}
	if err := CopyLink(cb, p); err != nil {
		t.Fatalf("CopyLink failed: %v", err)
	}
	if cb.text != "https://example.com" {
		t.Fatalf("expected link on clipboard, got %q", cb.text)
	}

	boom := errors.New("boom")
	err := CopyLink(&fakeClipboard{err: boom}, p)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}
