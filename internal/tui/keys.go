package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuircle/internal/i18n"
)

type keyMap struct {
	Quit     key.Binding
	Clear    key.Binding
	Grid     key.Binding
	Share    key.Binding
	Copy     key.Binding
	Snapshot key.Binding
	Close    key.Binding
}

func newKeyMap(l *i18n.Localizer) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", l.T(i18n.KeyQuit)),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "esc", " "),
			key.WithHelp("c", l.T(i18n.KeyClear)),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", l.T(i18n.KeyHideGrid)),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", l.T(i18n.KeyShare)),
			key.WithDisabled(),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", l.T(i18n.KeyCopyLink)),
			key.WithDisabled(),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", l.T(i18n.KeySaveSnapshot)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc", l.T(i18n.KeyClose)),
			key.WithDisabled(),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Grid, k.Share, k.Copy, k.Snapshot, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
