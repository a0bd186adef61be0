package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/recite/internal/i18n"
)

type keyMap struct {
	Start       key.Binding
	Reveal      key.Binding
	Reset       key.Binding
	ToggleCase  key.Binding
	TogglePunct key.Binding
	ToggleMask  key.Binding
	CycleLang   key.Binding
	Quit        key.Binding
}

func newKeyMap(lang string) keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", i18n.T(lang, "help.start")),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T(lang, "help.reveal")),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", i18n.T(lang, "help.reset")),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", i18n.T(lang, "help.case")),
		),
		TogglePunct: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", i18n.T(lang, "help.punct")),
		),
		ToggleMask: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", i18n.T(lang, "help.mask")),
		),
		CycleLang: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", i18n.T(lang, "help.lang")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T(lang, "help.quit")),
		),
	}
}
