package app

import (
	"bytes"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fete/internal/config"
	"fete/internal/mode"
	"fete/internal/mode/parties"
	"fete/internal/mode/planner"
	"fete/internal/party"
	"fete/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newServices(t *testing.T) mode.Services {
	t.Helper()
	cfg := config.Defaults()
	return mode.Services{
		Registry:  party.NewRegistry(party.Providers{}),
		Providers: party.Providers{},
		Config:    &cfg,
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return updated.(Model)
}

func TestModeSwitching(t *testing.T) {
	t.Run("starts in the planner", func(t *testing.T) {
		m := sized(t, New(newServices(t), false))
		assert.Contains(t, m.View(), "plan a party")
	})

	t.Run("published party lands on the parties list", func(t *testing.T) {
		svc := newServices(t)
		m := sized(t, New(svc, false))

		p := svc.Registry.NewParty()
		require.NoError(t, svc.Registry.SetCurrent(0))
		for p.Step() != party.StepReview {
			require.NoError(t, p.Advance())
		}
		require.NoError(t, p.Publish())

		updated, _ := m.Update(planner.PartyPublishedMsg{Summary: p.Summary()})
		m = updated.(Model)

		out := m.View()
		assert.Contains(t, out, "Your parties")
		assert.Contains(t, out, "published")
	})

	t.Run("new party request returns to the landing screen", func(t *testing.T) {
		svc := newServices(t)
		m := sized(t, New(svc, false))

		updated, _ := m.Update(planner.ExitToPartiesMsg{})
		m = updated.(Model)
		assert.Contains(t, m.View(), "Your parties")

		updated, _ = m.Update(parties.NewPartyMsg{})
		m = updated.(Model)
		assert.Contains(t, m.View(), "plan a party")
	})

	t.Run("open party makes it current", func(t *testing.T) {
		svc := newServices(t)
		svc.Registry.NewParty()
		svc.Registry.NewParty()
		m := sized(t, New(svc, false))

		updated, _ := m.Update(parties.OpenPartyMsg{Index: 1})
		m = updated.(Model)

		idx, ok := svc.Registry.CurrentIndex()
		require.True(t, ok)
		assert.Equal(t, 1, idx)
		_ = m
	})

	t.Run("reopened party keeps its own details", func(t *testing.T) {
		svc := newServices(t)
		m := sized(t, New(svc, false))

		send := func(msg tea.Msg) {
			updated, _ := m.Update(msg)
			m = updated.(Model)
		}

		// Draft two parties, leaving each from its details form.
		send(tea.KeyMsg{Type: tea.KeyEnter})
		send(planner.ExitToPartiesMsg{})
		send(parties.NewPartyMsg{})
		send(tea.KeyMsg{Type: tea.KeyEnter})
		send(planner.ExitToPartiesMsg{})

		// Reopen the first and submit its form untouched; the second
		// party's values must not bleed onto it.
		send(parties.OpenPartyMsg{Index: 0})
		send(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, "Untitled Party 0", svc.Registry.Parties()[0].Title())
		assert.Equal(t, "Untitled Party 1", svc.Registry.Parties()[1].Title())
	})

	t.Run("open party with a bad index toasts", func(t *testing.T) {
		svc := newServices(t)
		m := sized(t, New(svc, false))

		_, cmd := m.Update(parties.OpenPartyMsg{Index: 7})
		require.NotNil(t, cmd)
		msg, ok := cmd().(mode.ShowToastMsg)
		require.True(t, ok)
		assert.Equal(t, toaster.StyleError, msg.Style)
	})
}

func TestToasts(t *testing.T) {
	m := sized(t, New(newServices(t), false))

	updated, cmd := m.Update(mode.ShowToastMsg{Message: "saved", Style: toaster.StyleSuccess})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "saved")

	updated, _ = m.Update(toaster.DismissMsg{})
	m = updated.(Model)
	assert.NotContains(t, m.View(), "saved")
}

func TestFullProgram(t *testing.T) {
	svc := newServices(t)
	tm := teatest.NewTestModel(t, New(svc, false), teatest.WithInitialTermSize(100, 32))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("plan a party"))
	}, teatest.WithDuration(3*time.Second))

	// Begin a party, then quit from the details form.
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Party details"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	assert.Equal(t, 1, svc.Registry.Len())
}
