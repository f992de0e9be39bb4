// Package parties implements the party-list mode: every planned party
// with its selection counts, plus calendar export.
package parties

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"fete/internal/calendar"
	"fete/internal/keys"
	"fete/internal/log"
	"fete/internal/mode"
	"fete/internal/party"
	"fete/internal/ui/styles"
	"fete/internal/ui/toaster"
)

const (
	newPartyZone = "parties:new"
	exportZone   = "parties:export"

	// exportFilename is written into the working directory on export.
	exportFilename = "fete.ics"
)

// OpenPartyMsg asks the app to open the party at Index in the planner.
type OpenPartyMsg struct {
	Index int
}

// NewPartyMsg asks the app to start planning a fresh party.
type NewPartyMsg struct{}

// Model holds the parties mode state.
type Model struct {
	services mode.Services
	list     list.Model

	width  int
	height int
}

// partyItem wraps a summary for the list component.
type partyItem struct {
	summary party.Summary
	index   int
}

// FilterValue implements list.Item.
func (i partyItem) FilterValue() string { return i.summary.Title }

// partyDelegate renders one summary row.
type partyDelegate struct{}

func (d partyDelegate) Height() int                             { return 2 }
func (d partyDelegate) Spacing() int                            { return 1 }
func (d partyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d partyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	s := item.(partyItem).summary

	prefix := "  "
	if index == m.Index() {
		prefix = styles.TitleStyle.Render("> ")
	}

	status := styles.HintStyle.Render("draft")
	if s.Published {
		status = styles.SelectedCountStyle.Render("published")
	}

	top := fmt.Sprintf("%s%s  %s", prefix, s.Title, status)
	counts := fmt.Sprintf("  %d cocktails · %d dishes · %d videos", s.CocktailCount, s.FoodCount, s.MusicCount)
	if s.DateRange != "" {
		counts += "  " + styles.HintStyle.Render(s.DateRange)
	}

	_, _ = fmt.Fprintf(w, "%s\n%s", top, styles.HintStyle.Render(counts))
}

// New creates a parties mode controller.
func New(services mode.Services) Model {
	l := list.New([]list.Item{}, partyDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := Model{services: services, list: l}
	return m.Reload()
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return nil
}

// Reload re-reads the registry. The app calls this when switching into
// the mode so newly published parties appear.
func (m Model) Reload() Model {
	summaries := m.services.Registry.ListSummaries()
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		items[i] = partyItem{summary: s, index: i}
	}
	m.list.SetItems(items)
	return m
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.list.SetSize(max(width-8, 20), max(height-8, 4))
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Default.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Default.New):
		return m, func() tea.Msg { return NewPartyMsg{} }
	case key.Matches(msg, keys.Default.Export):
		return m.exportCalendar()
	case key.Matches(msg, keys.Default.Open):
		if item, ok := m.list.SelectedItem().(partyItem); ok {
			idx := item.index
			return m, func() tea.Msg { return OpenPartyMsg{Index: idx} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if zone.Get(newPartyZone).InBounds(msg) {
		return m, func() tea.Msg { return NewPartyMsg{} }
	}
	if zone.Get(exportZone).InBounds(msg) {
		return m.exportCalendar()
	}
	return m, nil
}

// exportCalendar writes every dated party to an ICS file in the
// working directory.
func (m Model) exportCalendar() (Model, tea.Cmd) {
	parties := m.services.Registry.Parties()
	ics, err := calendar.ExportICS(parties, m.services.Config.Calendar.LinkBase)
	if errors.Is(err, calendar.ErrNothingToExport) {
		return m, toast("Nothing to export", toaster.StyleInfo)
	}
	if err != nil {
		return m, toast("Export failed: "+err.Error(), toaster.StyleError)
	}
	if err := os.WriteFile(exportFilename, []byte(ics), 0o644); err != nil {
		return m, toast("Export failed: "+err.Error(), toaster.StyleError)
	}
	log.Info(log.CatCalendar, "Calendar exported", "file", exportFilename, "parties", len(parties))
	return m, toast("Wrote "+exportFilename, toaster.StyleSuccess)
}

func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

// View renders the parties list.
func (m Model) View() string {
	header := styles.TitleStyle.Render("Your parties")

	var body string
	if len(m.list.Items()) == 0 {
		body = styles.HintStyle.Render("No parties yet.")
	} else {
		body = m.list.View()
	}

	actions := zone.Mark(newPartyZone, styles.AdditiveButtonStyle.Render(" new party ")) + "  " +
		zone.Mark(exportZone, styles.HintStyle.Render("[ export calendar ]"))
	help := styles.HintStyle.Render(keys.HelpLine(
		keys.Default.Open, keys.Default.New, keys.Default.Export, keys.Default.Quit,
	))

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", actions, help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
