// Package share composes share text and links for a finished attempt.
package share

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"

	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
)

// Platform names a share destination.
type Platform string

const (
	Twitter  Platform = "twitter"
	Telegram Platform = "telegram"
	WhatsApp Platform = "whatsapp"
)

// Platforms lists destinations in display order.
var Platforms = []Platform{Twitter, Telegram, WhatsApp}

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Text builds the two-line share message.
func Text(l *i18n.Localizer, p engine.SharePayload) string {
	return fmt.Sprintf(l.T(i18n.KeyShareScore), p.Score, p.Attempts) + "\n" + l.T(i18n.KeyShareChallenge)
}

// URLs returns the share link for every platform.
func URLs(text string, p engine.SharePayload) map[Platform]string {
	return map[Platform]string{
		Twitter:  "https://twitter.com/intent/tweet?" + encode("text", text, "url", p.Link),
		Telegram: "https://t.me/share/url?" + encode("url", p.Link, "text", text),
		WhatsApp: "https://wa.me/?" + encode("text", text+"\n"+p.Link),
	}
}

// CopyLink writes the destination link to the clipboard.
func CopyLink(cb Clipboard, p engine.SharePayload) error {
	if cb == nil {
		cb = SystemClipboard{}
	}
	if _, system := cb.(SystemClipboard); system && clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available")
	}
	if err := cb.WriteAll(p.Link); err != nil {
		return fmt.Errorf("failed to copy link: %w", err)
	}
	return nil
}

// encode keeps parameter order, unlike url.Values.Encode.
func encode(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if out != "" {
			out += "&"
		}
		out += pairs[i] + "=" + url.QueryEscape(pairs[i+1])
	}
	return out
}
