// Package details renders an item's detail view as a scrollable
// overlay panel. Recipes show ingredients and instructions as styled
// markdown; videos show the external player address.
package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fete/internal/party"
	"fete/internal/ui/markdown"
	"fete/internal/ui/styles"
)

// Model is a scrollable detail panel for a single item.
type Model struct {
	detail party.DetailView
	vp     viewport.Model
	width  int
}

// New builds a detail panel sized to width x height. The item's
// kind-specific payload is rendered once with the given markdown style
// ("dark" or "light"); scrolling is handled by the viewport.
func New(detail party.DetailView, width, height int, style string) (Model, error) {
	if width < 30 {
		width = 30
	}
	if height < 8 {
		height = 8
	}

	innerWidth := width - 4
	md, err := markdown.New(innerWidth, style)
	if err != nil {
		return Model{}, err
	}

	body, err := md.Render(source(detail))
	if err != nil {
		return Model{}, err
	}

	vp := viewport.New(innerWidth, height-4)
	vp.SetContent(body)

	return Model{detail: detail, vp: vp, width: width}, nil
}

// source assembles the markdown document for the item.
func source(d party.DetailView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	if d.ImageURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", d.Title, d.ImageURL)
	}

	switch d.Kind {
	case party.KindRecipe:
		if len(d.Ingredients) > 0 {
			b.WriteString("## Ingredients\n\n")
			for _, ing := range d.Ingredients {
				fmt.Fprintf(&b, "- %s\n", ing)
			}
			b.WriteString("\n")
		}
		if d.Instructions != "" {
			b.WriteString("## Instructions\n\n")
			b.WriteString(d.Instructions)
			b.WriteString("\n")
		}
	case party.KindVideo:
		b.WriteString("## Watch\n\n")
		fmt.Fprintf(&b, "Player: <%s>\n", d.EmbedURL)
	}
	return b.String()
}

// Title returns the item's display name for the panel header.
func (m Model) Title() string { return m.detail.Title }

// Update scrolls the panel. Dismissal is the caller's concern; the
// panel only consumes navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the framed panel with a scroll hint footer.
func (m Model) View() string {
	footer := styles.HintStyle.Render(fmt.Sprintf("%3.f%% · esc to close", m.vp.ScrollPercent()*100))
	frame := lipgloss.NewStyle().
		Width(m.width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderHighlightColor)
	return frame.Render(m.vp.View() + "\n" + footer)
}
