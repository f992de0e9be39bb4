// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Back  key.Binding
	Focus key.Binding

	// Card actions
	Add    key.Binding
	Delete key.Binding
	View   key.Binding

	// Wizard / list actions
	Begin   key.Binding
	Publish key.Binding
	Parties key.Binding
	New     key.Binding
	Export  key.Binding
	Open    key.Binding

	// General
	Search key.Binding
	Escape key.Binding
	Logs   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next step"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("b/←", "previous step"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),

		Add: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a", "add to party"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove from party"),
		),
		View: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "view details"),
		),

		Begin: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", "plan a party"),
		),
		Publish: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "publish"),
		),
		Parties: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "your parties"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new party"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export calendar"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open party"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle log tail"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Default is the shared keymap instance.
var Default = DefaultKeyMap()

// HelpLine joins the bindings' help entries into a footer line.
func HelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
