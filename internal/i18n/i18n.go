// Package i18n resolves message keys to localized text.
package i18n

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a requested locale or key is missing.
const DefaultLocale = "en-US"

// Message keys.
const (
	KeyDrawCompleteCircle = "drawCompleteCircle"
	KeyPerfectCircle      = "perfectCircle"
	KeyExcellent          = "excellent"
	KeyGreatJob           = "greatJob"
	KeyGoodEffort         = "goodEffort"
	KeyNotBad             = "notBad"
	KeyAnotherShot        = "anotherShot"
	KeyAbstractArt        = "abstractArt"
	KeyClear              = "clear"
	KeyHideGrid           = "hideGrid"
	KeyShowGrid           = "showGrid"
	KeyDrawPerfectCircle  = "drawPerfectCircle"
	KeyClickAndDrag       = "clickAndDrag"
	KeyBestScore          = "bestScore"
	KeyAttempts           = "attempts"
	KeyTryAgain           = "tryAgain"
	KeyShare              = "share"
	KeyShareTitle         = "shareTitle"
	KeyShareScore         = "shareScore"
	KeyShareChallenge     = "shareChallenge"
	KeyCopyLink           = "copyLink"
	KeyCopied             = "copied"
	KeyQuit               = "quit"
	KeyClose              = "close"
	KeySaveSnapshot       = "saveSnapshot"
	KeyNoSnapshotDir      = "noSnapshotDir"
)

var translations = map[string]map[string]string{
	"en-US": {
		KeyDrawCompleteCircle: "Draw a complete circle!",
		KeyPerfectCircle:      "Perfect circle! You're a true artist! ✨",
		KeyExcellent:          "Excellent! Almost perfect! 🎯",
		KeyGreatJob:           "Great job! Very circular! 👏",
		KeyGoodEffort:         "Good effort! Keep practicing! 💪",
		KeyNotBad:             "Not bad! Try drawing slower? 🖊️",
		KeyAnotherShot:        "Give it another shot! Practice makes perfect! 🔄",
		KeyAbstractArt:        "Hmm, that looks more like abstract art! 🎨",
		KeyClear:              "Clear",
		KeyHideGrid:           "Hide grid",
		KeyShowGrid:           "Show grid",
		KeyDrawPerfectCircle:  "Draw a perfect circle",
		KeyClickAndDrag:       "Click and drag to draw your circle",
		KeyBestScore:          "Best score",
		KeyAttempts:           "Attempts",
		KeyTryAgain:           "Try again",
		KeyShare:              "Share",
		KeyShareTitle:         "Share Your Score!",
		KeyShareScore:         "I scored %d in just %d attempts!",
		KeyShareChallenge:     "Can you beat my score? Try now!",
		KeyCopyLink:           "Copy link",
		KeyCopied:             "Copied!",
		KeyQuit:               "Quit",
		KeyClose:              "Close",
		KeySaveSnapshot:       "Save PNG",
		KeyNoSnapshotDir:      "Snapshot directory is not set",
	},
	"es-ES": {
		KeyDrawCompleteCircle: "¡Dibuja un círculo completo!",
		KeyPerfectCircle:      "¡Círculo perfecto! ¡Eres un verdadero artista! ✨",
		KeyExcellent:          "¡Excelente! ¡Casi perfecto! 🎯",
		KeyGreatJob:           "¡Buen trabajo! ¡Muy circular! 👏",
		KeyGoodEffort:         "¡Buen esfuerzo! ¡Sigue practicando! 💪",
		KeyNotBad:             "¡No está mal! ¿Intentas dibujar más lento? 🖊️",
		KeyAnotherShot:        "¡Inténtalo de nuevo! ¡La práctica hace al maestro! 🔄",
		KeyAbstractArt:        "¡Hmm, eso parece más arte abstracto! 🎨",
		KeyClear:              "Limpiar",
		KeyHideGrid:           "Ocultar cuadrícula",
		KeyShowGrid:           "Mostrar cuadrícula",
		KeyDrawPerfectCircle:  "Dibuja un círculo perfecto",
		KeyClickAndDrag:       "Haz clic y arrastra para dibujar tu círculo",
		KeyBestScore:          "Mejor puntuación",
		KeyAttempts:           "Intentos",
		KeyTryAgain:           "Intentar de nuevo",
		KeyQuit:               "Salir",
		KeyClose:              "Cerrar",
		KeySaveSnapshot:       "Guardar PNG",
		KeyNoSnapshotDir:      "No hay carpeta para capturas",
	},
}

var (
	supported = supportedLocales()
	matcher   = language.NewMatcher(supportedTags())
)

// Localizer looks up messages for one locale.
type Localizer struct {
	locale string
}

// New returns a Localizer for the best supported match of locale.
func New(locale string) *Localizer {
	return &Localizer{locale: Match(locale)}
}

// Locale returns the resolved locale.
func (l *Localizer) Locale() string {
	return l.locale
}

// T returns the text for key, falling back to the default locale and then to
// the key itself.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.locale][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Match returns the supported locale closest to the requested one.
func Match(locale string) string {
	locale = normalize(locale)
	if locale == "" {
		return DefaultLocale
	}
	if _, ok := translations[locale]; ok {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return supported[idx]
}

// Locales lists the supported locales in sorted order.
func Locales() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	sort.Strings(out)
	return out
}

// DetectLocale reads the POSIX locale environment.
func DetectLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := normalize(os.Getenv(name)); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return DefaultLocale
}

// normalize turns "es_ES.UTF-8@euro" into "es-ES".
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// supportedLocales puts the default first so the matcher falls back to it.
func supportedLocales() []string {
	out := []string{DefaultLocale}
	for locale := range translations {
		if locale != DefaultLocale {
			out = append(out, locale)
		}
	}
	sort.Strings(out[1:])
	return out
}

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, locale := range supported {
		tags[i] = language.MustParse(locale)
	}
	return tags
}
