// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	// Borders
	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightColor = lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#AD58B4"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#A6E3A1"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#F38BA8"}

	// Card toggle affordances: additive picks up the accent, destructive
	// the error tone, matching add vs delete.
	AdditiveBgColor    = lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#6C3483"}
	DestructiveBgColor = lipgloss.AdaptiveColor{Light: "#E91E63", Dark: "#AD1457"}
	ButtonTextColor    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
)

var (
	// TitleStyle renders screen and step headings.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(BorderHighlightColor)

	// HintStyle renders key hints and footers.
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// ErrStyle renders inline error text.
	ErrStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// SelectedCountStyle renders selection-count badges.
	SelectedCountStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusSuccessColor)

	// AdditiveButtonStyle styles the add affordance on a card.
	AdditiveButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).Bold(true).
				Foreground(ButtonTextColor).
				Background(AdditiveBgColor)

	// DestructiveButtonStyle styles the delete affordance on a card.
	DestructiveButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).Bold(true).
				Foreground(ButtonTextColor).
				Background(DestructiveBgColor)
)

// ApplyTheme overrides the accent colors from configuration. Empty
// values keep the defaults.
func ApplyTheme(highlight, subtle, errColor, success string) {
	if highlight != "" {
		BorderHighlightColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		TitleStyle = TitleStyle.Foreground(BorderHighlightColor)
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		HintStyle = HintStyle.Foreground(TextMutedColor)
	}
	if errColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errColor, Dark: errColor}
		ErrStyle = ErrStyle.Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		SelectedCountStyle = SelectedCountStyle.Foreground(StatusSuccessColor)
	}
}
