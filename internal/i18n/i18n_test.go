package i18n

import (
	"testing"

	"github.com/verte-zerg/tuircle/internal/model"
)

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"":            "en-US",
		"en-US":       "en-US",
		"es-ES":       "es-ES",
		"es":          "es-ES",
		"es-MX":       "es-ES",
		"es_ES.UTF-8": "es-ES",
		"en-GB":       "en-US",
		"fr-FR":       "en-US",
		"not a tag!":  "en-US",
	}
	for in, want := range cases {
		if got := Match(in); got != want {
			t.Fatalf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalizerFallback(t *testing.T) {
	es := New("es-ES")
	if got := es.T(KeyTryAgain); got != "Intentar de nuevo" {
		t.Fatalf("unexpected spanish text: %q", got)
	}
	if got := es.T(KeyShareTitle); got != "Share Your Score!" {
		t.Fatalf("expected fallback to default locale, got %q", got)
	}
	if got := es.T("missingKey"); got != "missingKey" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestEveryTierHasMessage(t *testing.T) {
	tiers := []model.Tier{
		model.TierIncomplete, model.TierAbstract, model.TierRetry, model.TierOkay,
		model.TierGood, model.TierGreat, model.TierExcellent, model.TierPerfect,
	}
	for _, locale := range Locales() {
		l := New(locale)
		for _, tier := range tiers {
			key := tier.MessageKey()
			if _, ok := translations[locale][key]; !ok {
				t.Fatalf("locale %s is missing %q", locale, key)
			}
			if l.T(key) == key {
				t.Fatalf("locale %s: no text for %q", locale, key)
			}
		}
	}
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "es_ES.UTF-8")
	if got := DetectLocale(); got != "es-ES" {
		t.Fatalf("expected es-ES, got %q", got)
	}
	t.Setenv("LANG", "C")
	if got := DetectLocale(); got != DefaultLocale {
		t.Fatalf("expected default locale, got %q", got)
	}
}

func TestLocalesSorted(t *testing.T) {
	locales := Locales()
	if len(locales) != 2 || locales[0] != "en-US" || locales[1] != "es-ES" {
		t.Fatalf("unexpected locales: %v", locales)
	}
}

func TestUILabelsInEveryLocale(t *testing.T) {
	for _, key := range []string{KeyQuit, KeyClose, KeySaveSnapshot, KeyNoSnapshotDir} {
		for _, locale := range Locales() {
			if _, ok := translations[locale][key]; !ok {
				t.Fatalf("locale %s is missing %q", locale, key)
			}
		}
	}
	if got := New("en-US").T(KeyNoSnapshotDir); got != "Snapshot directory is not set" {
		t.Fatalf("unexpected text %q", got)
	}
}
