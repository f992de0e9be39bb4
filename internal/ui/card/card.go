// Package card renders an item's search card descriptor as a terminal
// card with clickable affordances.
package card

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"fete/internal/party"
	"fete/internal/ui/styles"
)

// Zone ID helpers for mouse click detection. The presentation layer
// marks the title (view details) and the toggle button; hits map back
// to the (item, action) click contract.

// ViewZoneID returns the zone ID of the card's view-details activator.
func ViewZoneID(itemID string) string {
	return "card:" + itemID + ":view"
}

// ToggleZoneID returns the zone ID of the card's add/delete toggle.
func ToggleZoneID(itemID string) string {
	return "card:" + itemID + ":toggle"
}

// Render draws a card. focused highlights the border for keyboard
// navigation; the toggle affordance follows the descriptor's tone.
func Render(c party.Card, width int, focused bool) string {
	if width < 20 {
		width = 20
	}
	innerWidth := width - 4 // border + padding

	title := truncate.StringWithTail(c.Title, uint(innerWidth), "…")
	titleLine := zone.Mark(ViewZoneID(c.ItemID), styles.TitleStyle.Render(title))

	image := truncate.StringWithTail(c.ImageURL, uint(innerWidth), "…")
	imageLine := styles.HintStyle.Render(image)

	var button string
	if c.ToggleTone == party.ToneDestructive {
		button = styles.DestructiveButtonStyle.Render(c.ToggleLabel)
	} else {
		button = styles.AdditiveButtonStyle.Render(c.ToggleLabel)
	}
	buttonLine := zone.Mark(ToggleZoneID(c.ItemID), button)
	if c.Selected {
		buttonLine += styles.SelectedCountStyle.Render("  ✓ added")
	}

	borderColor := styles.BorderDefaultColor
	if focused {
		borderColor = styles.BorderHighlightColor
	}

	box := lipgloss.NewStyle().
		Width(width - 2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor)

	return box.Render(fmt.Sprintf("%s\n%s\n%s", titleLine, imageLine, buttonLine))
}
