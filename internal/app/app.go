// Package app contains the root application model. It owns mode
// switching, the shared toaster, and the debug log tail.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"fete/internal/keys"
	"fete/internal/log"
	"fete/internal/mode"
	"fete/internal/mode/parties"
	"fete/internal/mode/planner"
	"fete/internal/pubsub"
	"fete/internal/ui/styles"
	"fete/internal/ui/toaster"
)

const (
	toastDuration = 3 * time.Second
	logTailSize   = 5
)

// Model is the root application state.
type Model struct {
	currentMode mode.AppMode
	planner     planner.Model
	parties     parties.Model

	services mode.Services

	// Centralized toaster, owned by the app so toasts survive mode
	// switches.
	toaster toaster.Model

	// Debug log tail fed from the log broker.
	debugMode   bool
	showLogs    bool
	logLines    []string
	logListener *pubsub.ContinuousListener[string]
	logCancel   context.CancelFunc

	width  int
	height int
}

// New creates the root application model. With debugMode the app
// subscribes to the log broker and Ctrl+L toggles a log tail.
func New(services mode.Services, debugMode bool) Model {
	m := Model{
		currentMode: mode.ModePlanner,
		planner:     planner.New(services),
		parties:     parties.New(services),
		services:    services,
		toaster:     toaster.New(),
		debugMode:   debugMode,
	}

	if broker := log.Broker(); debugMode && broker != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.logListener = pubsub.NewContinuousListener(ctx, broker)
		m.logCancel = cancel
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.planner.Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Close releases the log subscription.
func (m Model) Close() {
	if m.logCancel != nil {
		m.logCancel()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.planner = m.planner.SetSize(msg.Width, msg.Height)
		m.parties = m.parties.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, keys.Default.Logs) {
			m.showLogs = !m.showLogs
			return m, nil
		}

	case planner.PartyPublishedMsg:
		log.Info(log.CatMode, "Switching mode", "from", "planner", "to", "parties", "party", msg.Summary.Title)
		m.currentMode = mode.ModeParties
		m.parties = m.parties.Reload()
		return m, nil

	case planner.ExitToPartiesMsg:
		log.Info(log.CatMode, "Switching mode", "from", "planner", "to", "parties")
		m.currentMode = mode.ModeParties
		m.parties = m.parties.Reload()
		return m, nil

	case parties.NewPartyMsg:
		log.Info(log.CatMode, "Switching mode", "from", "parties", "to", "planner", "reason", "new party")
		m.services.Registry.ClearCurrent()
		m.currentMode = mode.ModePlanner
		return m, m.planner.Init()

	case parties.OpenPartyMsg:
		if err := m.services.Registry.SetCurrent(msg.Index); err != nil {
			return m, func() tea.Msg {
				return mode.ShowToastMsg{Message: err.Error(), Style: toaster.StyleError}
			}
		}
		log.Info(log.CatMode, "Switching mode", "from", "parties", "to", "planner", "party", msg.Index)
		m.currentMode = mode.ModePlanner
		m.planner = m.planner.ReloadParty()
		return m, m.planner.Init()

	case pubsub.Event[string]:
		m.logLines = append(m.logLines, msg.Payload)
		if len(m.logLines) > logTailSize {
			m.logLines = m.logLines[len(m.logLines)-logTailSize:]
		}
		return m, m.logListener.Listen()

	case mode.ShowToastMsg:
		m.toaster = m.toaster.Show(msg.Message, msg.Style)
		return m, toaster.ScheduleDismiss(toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil
	}

	// Delegate all other messages to the active mode controller.
	switch m.currentMode {
	case mode.ModePlanner:
		var cmd tea.Cmd
		m.planner, cmd = m.planner.Update(msg)
		return m, cmd
	case mode.ModeParties:
		var cmd tea.Cmd
		m.parties, cmd = m.parties.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model. This is the single zone.Scan point; mode
// views only mark zones.
func (m Model) View() string {
	var body string
	switch m.currentMode {
	case mode.ModePlanner:
		body = m.planner.View()
	case mode.ModeParties:
		body = m.parties.View()
	}

	if m.showLogs && len(m.logLines) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			styles.HintStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.logLines...)),
		)
	}

	if m.toaster.Visible() {
		body = m.toaster.Overlay(body, m.width, m.height)
	}

	return zone.Scan(body)
}
