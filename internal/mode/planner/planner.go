// Package planner implements the party-creation wizard mode. It walks
// one party through landing, details, the three selection steps, and
// review, driving the wizard position stored on the party itself.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"fete/internal/calendar"
	"fete/internal/keys"
	"fete/internal/log"
	"fete/internal/mode"
	"fete/internal/party"
	"fete/internal/ui/card"
	"fete/internal/ui/details"
	"fete/internal/ui/overlay"
	"fete/internal/ui/styles"
	"fete/internal/ui/toaster"
)

// FocusPane represents which pane has focus on a selection step.
type FocusPane int

const (
	FocusSearch FocusPane = iota
	FocusCards
)

// detailsField indexes the inputs on the details step.
type detailsField int

const (
	fieldTitle detailsField = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldCount
)

const (
	dateLayout     = "01/02/2006"
	debounceDelay  = 300 * time.Millisecond
	searchTimeout  = 15 * time.Second
	landingZone    = "planner:begin"
	nextStepZone   = "planner:next"
	prevStepZone   = "planner:back"
	publishZone    = "planner:publish"
	detailsGoZone  = "planner:details:continue"
	searchBarZone  = "planner:search"
	maxVisibleCard = 4
)

// Model holds the planner mode state.
type Model struct {
	services mode.Services

	// Details form state.
	fields   [fieldCount]textinput.Model
	focusIdx detailsField

	// Selection step state.
	searchInput   textinput.Model
	searchVersion int
	searching     bool
	focusedCard   int
	cardOffset    int
	focus         FocusPane

	// Detail overlay.
	detail     details.Model
	showDetail bool

	width  int
	height int
}

// debounceSearchMsg triggers a search after the debounce delay.
type debounceSearchMsg struct {
	version int
}

// searchResultsMsg carries a resolved provider search back to Update.
type searchResultsMsg struct {
	category party.Category
	seq      int
	items    []*party.Item
	err      error
}

// PartyPublishedMsg bubbles to the app when a party is finalized from
// review; the app switches to the parties list.
type PartyPublishedMsg struct {
	Summary party.Summary
}

// ExitToPartiesMsg requests switching to the parties list without
// publishing (the draft stays in the registry).
type ExitToPartiesMsg struct{}

// New creates a planner mode controller. The wizard operates on the
// registry's current party; with no current party it shows the landing
// screen and creates one on begin.
func New(services mode.Services) Model {
	m := Model{services: services}

	for i := range m.fields {
		m.fields[i] = textinput.New()
		m.fields[i].CharLimit = 64
		m.fields[i].Width = 34
	}
	m.fields[fieldTitle].Placeholder = "party title"
	m.fields[fieldDate].Placeholder = "mm/dd/yyyy"
	m.fields[fieldStart].Placeholder = "start (24h, e.g. 19:00)"
	m.fields[fieldEnd].Placeholder = "end (24h, e.g. 23:30)"
	m.fields[fieldTitle].Focus()

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search"
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 40
	m.searchInput.Focus()
	m.focus = FocusSearch

	return m
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	if width > 0 {
		w := min(width-8, 60)
		m.searchInput.Width = max(w, 20)
	}
	return m
}

// current returns the party under edit, or nil before the landing
// screen has created one.
func (m Model) current() *party.Party {
	p, err := m.services.Registry.Current()
	if err != nil {
		return nil
	}
	return p
}

// step returns the wizard position, landing when no party exists yet.
func (m Model) step() party.Step {
	if p := m.current(); p != nil {
		return p.Step()
	}
	return party.StepLanding
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case debounceSearchMsg:
		// Only execute if version matches (not stale).
		if msg.version == m.searchVersion {
			return m.startSearch()
		}
		return m, nil

	case searchResultsMsg:
		return m.handleSearchResults(msg)
	}
	return m, nil
}

// handleKey processes keyboard input by wizard step.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showDetail {
		switch msg.String() {
		case "esc", "q", "enter":
			m.showDetail = false
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch m.step() {
	case party.StepLanding:
		return m.handleLandingKey(msg)
	case party.StepDetails:
		return m.handleDetailsKey(msg)
	case party.StepReview:
		return m.handleReviewKey(msg)
	default:
		return m.handleSelectionKey(msg)
	}
}

func (m Model) handleLandingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Default.Begin):
		return m.beginParty()
	case key.Matches(msg, keys.Default.Parties):
		if m.services.Registry.Len() > 0 {
			return m, func() tea.Msg { return ExitToPartiesMsg{} }
		}
	}
	return m, nil
}

// beginParty creates a draft, makes it current, and moves to details.
func (m Model) beginParty() (Model, tea.Cmd) {
	p := m.services.Registry.NewParty()
	_ = m.services.Registry.SetCurrent(m.services.Registry.Len() - 1)
	if err := p.Advance(); err != nil {
		return m, toastErr(err)
	}
	log.Info(log.CatParty, "Draft created", "title", p.Title(), "eventKey", p.EventKey())
	m = m.resetDetailsForm(p)
	return m, textinput.Blink
}

// resetDetailsForm loads the form inputs from the party.
func (m Model) resetDetailsForm(p *party.Party) Model {
	m.fields[fieldTitle].SetValue(p.Title())
	if d, ok := p.Date(); ok {
		m.fields[fieldDate].SetValue(d.Format(dateLayout))
	} else {
		m.fields[fieldDate].SetValue("")
	}
	if s, ok := p.StartTime(); ok {
		m.fields[fieldStart].SetValue(s.String())
	} else {
		m.fields[fieldStart].SetValue("")
	}
	if e, ok := p.EndTime(); ok {
		m.fields[fieldEnd].SetValue(e.String())
	} else {
		m.fields[fieldEnd].SetValue("")
	}
	m.focusIdx = fieldTitle
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.fields[fieldTitle].Focus()
	return m
}

// ReloadParty refreshes step-local state from the registry's current
// party. The app calls this when a party is opened from the list so
// the details form and search pane do not carry another party's values.
func (m Model) ReloadParty() Model {
	m.showDetail = false
	p := m.current()
	if p == nil {
		return m
	}
	if p.Step() == party.StepDetails {
		return m.resetDetailsForm(p)
	}
	if _, ok := p.Step().SelectionCategory(); ok {
		return m.enterSelectionStep()
	}
	return m
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.focusField((m.focusIdx + 1) % fieldCount), nil
	case "shift+tab", "up":
		return m.focusField((m.focusIdx + fieldCount - 1) % fieldCount), nil
	case "esc":
		return m, func() tea.Msg { return ExitToPartiesMsg{} }
	case "enter":
		return m.submitDetails()
	}

	var cmd tea.Cmd
	m.fields[m.focusIdx], cmd = m.fields[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) focusField(idx detailsField) Model {
	m.fields[m.focusIdx].Blur()
	m.focusIdx = idx
	m.fields[m.focusIdx].Focus()
	return m
}

// submitDetails validates and applies the form, then advances to the
// first selection step. Any invalid field keeps the wizard in place
// with a toast naming the problem.
func (m Model) submitDetails() (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}

	if title := strings.TrimSpace(m.fields[fieldTitle].Value()); title != "" {
		if err := p.SetTitle(title); err != nil {
			return m, toastErr(err)
		}
	}

	if raw := strings.TrimSpace(m.fields[fieldDate].Value()); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return m, toast("Date must be mm/dd/yyyy", toaster.StyleError)
		}
		p.SetDate(d)
	}

	if raw := strings.TrimSpace(m.fields[fieldStart].Value()); raw != "" {
		if err := p.SetStartTime(raw); err != nil {
			return m, toastErr(err)
		}
	}

	if raw := strings.TrimSpace(m.fields[fieldEnd].Value()); raw != "" {
		if err := p.SetEndTime(raw); err != nil {
			return m, toastErr(err)
		}
	}

	if err := p.Advance(); err != nil {
		return m, toastErr(err)
	}
	m = m.enterSelectionStep()
	log.Debug(log.CatUI, "Details accepted", "step", p.Step().String())
	return m, textinput.Blink
}

// enterSelectionStep resets transient search state when the wizard
// lands on a selection step.
func (m Model) enterSelectionStep() Model {
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	m.focus = FocusSearch
	m.focusedCard = 0
	m.cardOffset = 0
	m.searching = false
	m.searchVersion++ // invalidate any in-flight debounce
	return m
}

func (m Model) handleSelectionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.current()
	cat, ok := p.Step().SelectionCategory()
	if !ok {
		return m, nil
	}
	col := p.Collection(cat)

	// The search input owns printable keys while focused, so this
	// branch matches control keys literally instead of using bindings
	// that carry letter keys.
	if m.focus == FocusSearch {
		switch msg.String() {
		case "esc":
			m.searchInput.Blur()
			m.focus = FocusCards
			return m, nil
		case "tab", "down":
			m.searchInput.Blur()
			m.focus = FocusCards
			return m, nil
		case "enter":
			m.searchInput.Blur()
			m.focus = FocusCards
			return m.startSearch()
		default:
			oldValue := m.searchInput.Value()
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			if m.searchInput.Value() != oldValue {
				m.searchVersion++
				return m, tea.Batch(cmd, debounceSearch(m.searchVersion, debounceDelay))
			}
			return m, cmd
		}
	}

	cards := col.Cards()
	switch {
	case key.Matches(msg, keys.Default.Search), key.Matches(msg, keys.Default.Focus):
		m.focus = FocusSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Default.Down):
		if m.focusedCard < len(cards)-1 {
			m.focusedCard++
			if m.focusedCard >= m.cardOffset+maxVisibleCard {
				m.cardOffset++
			}
		}
		return m, nil
	case key.Matches(msg, keys.Default.Up):
		if m.focusedCard > 0 {
			m.focusedCard--
			if m.focusedCard < m.cardOffset {
				m.cardOffset--
			}
		} else {
			m.focus = FocusSearch
			m.searchInput.Focus()
		}
		return m, nil
	case key.Matches(msg, keys.Default.Add):
		return m.clickFocusedCard(col, cards, party.ActionAdd)
	case key.Matches(msg, keys.Default.Delete):
		return m.clickFocusedCard(col, cards, party.ActionDelete)
	case key.Matches(msg, keys.Default.View):
		return m.clickFocusedCard(col, cards, party.ActionView)
	case key.Matches(msg, keys.Default.Next):
		return m.advanceStep()
	case key.Matches(msg, keys.Default.Back), key.Matches(msg, keys.Default.Escape):
		return m.retreatStep()
	}
	return m, nil
}

// clickFocusedCard routes the keyboard affordance through the same
// click handler mouse hits use.
func (m Model) clickFocusedCard(col *party.Collection, cards []party.Card, action party.Action) (Model, tea.Cmd) {
	if m.focusedCard < 0 || m.focusedCard >= len(cards) {
		return m, nil
	}
	return m.clickCard(col, cards[m.focusedCard].ItemID, action)
}

// clickCard resolves an item id and applies the click to the
// collection, mapping the effect to UI changes.
func (m Model) clickCard(col *party.Collection, itemID string, action party.Action) (Model, tea.Cmd) {
	var target *party.Item
	for _, it := range col.Candidates() {
		if it.ID() == itemID {
			target = it
			break
		}
	}
	if target == nil {
		return m, nil
	}

	// A card shows one toggle affordance; the keyboard can ask for the
	// wrong half of the pair, which is a no-op rather than an error.
	if action == party.ActionAdd && col.IsSelected(itemID) {
		return m, nil
	}
	if action == party.ActionDelete && !col.IsSelected(itemID) {
		return m, nil
	}

	effect, err := col.HandleItemClick(target, action)
	if err != nil {
		return m, toastErr(err)
	}

	switch effect {
	case party.EffectShowDetails:
		d, err := details.New(target.RenderDetails(), m.overlayWidth(), m.overlayHeight(),
			m.services.Config.UI.MarkdownStyle)
		if err != nil {
			return m, toastErr(err)
		}
		m.detail = d
		m.showDetail = true
		return m, nil
	case party.EffectRenderSelected:
		return m, toast(fmt.Sprintf("Added %q", target.Name()), toaster.StyleSuccess)
	case party.EffectRenderUnselected:
		return m, toast(fmt.Sprintf("Removed %q", target.Name()), toaster.StyleInfo)
	}
	return m, nil
}

func (m Model) overlayWidth() int {
	return min(max(m.width-10, 40), 90)
}

func (m Model) overlayHeight() int {
	return min(max(m.height-6, 10), 28)
}

// advanceStep moves to the next wizard step.
func (m Model) advanceStep() (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}
	if err := p.Advance(); err != nil {
		return m, toastErr(err)
	}
	if _, ok := p.Step().SelectionCategory(); ok {
		m = m.enterSelectionStep()
		return m, textinput.Blink
	}
	return m, nil
}

// retreatStep moves back one wizard step, reloading its state.
func (m Model) retreatStep() (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}
	if err := p.Retreat(); err != nil {
		return m, toastErr(err)
	}
	if _, ok := p.Step().SelectionCategory(); ok {
		m = m.enterSelectionStep()
		return m, textinput.Blink
	}
	if p.Step() == party.StepDetails {
		m = m.resetDetailsForm(p)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Default.Publish):
		return m.publish()
	case key.Matches(msg, keys.Default.Back):
		return m.retreatStep()
	case key.Matches(msg, keys.Default.Escape):
		return m, func() tea.Msg { return ExitToPartiesMsg{} }
	}
	return m, nil
}

// publish finalizes the party and hands off to the parties list.
func (m Model) publish() (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}
	if p.Published() {
		return m, toast("Already published", toaster.StyleInfo)
	}
	if err := p.Publish(); err != nil {
		return m, toastErr(err)
	}
	summary := p.Summary()
	m.services.Registry.ClearCurrent()
	log.Info(log.CatParty, "Party published",
		"title", summary.Title,
		"cocktails", summary.CocktailCount,
		"food", summary.FoodCount,
		"music", summary.MusicCount,
	)
	return m, tea.Batch(
		func() tea.Msg { return PartyPublishedMsg{Summary: summary} },
		toast(fmt.Sprintf("Published %q", summary.Title), toaster.StyleSuccess),
	)
}

// handleMouse maps clicks onto marked zones.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.showDetail {
		m.showDetail = false
		return m, nil
	}

	switch m.step() {
	case party.StepLanding:
		if zone.Get(landingZone).InBounds(msg) {
			return m.beginParty()
		}
	case party.StepDetails:
		if zone.Get(detailsGoZone).InBounds(msg) {
			return m.submitDetails()
		}
	case party.StepReview:
		if zone.Get(publishZone).InBounds(msg) {
			return m.publish()
		}
		if zone.Get(prevStepZone).InBounds(msg) {
			return m.retreatStep()
		}
	default:
		return m.handleSelectionMouse(msg)
	}
	return m, nil
}

func (m Model) handleSelectionMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := m.current()
	cat, ok := p.Step().SelectionCategory()
	if !ok {
		return m, nil
	}
	col := p.Collection(cat)

	if zone.Get(searchBarZone).InBounds(msg) {
		m.focus = FocusSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	}
	if zone.Get(nextStepZone).InBounds(msg) {
		return m.advanceStep()
	}
	if zone.Get(prevStepZone).InBounds(msg) {
		return m.retreatStep()
	}

	for _, c := range col.Cards() {
		if zone.Get(card.ToggleZoneID(c.ItemID)).InBounds(msg) {
			return m.clickCard(col, c.ItemID, c.ToggleAction)
		}
		if zone.Get(card.ViewZoneID(c.ItemID)).InBounds(msg) {
			return m.clickCard(col, c.ItemID, c.ViewAction)
		}
	}
	return m, nil
}

// startSearch kicks off an asynchronous provider search for the
// current step's category. The sequence from BeginSearch rides along
// so a stale resolution is discarded on arrival.
func (m Model) startSearch() (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}
	cat, ok := p.Step().SelectionCategory()
	if !ok {
		return m, nil
	}

	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return m, nil
	}

	col := p.Collection(cat)
	seq := col.BeginSearch()
	provider := m.services.Providers.For(cat)
	maxResults := m.services.Config.Search.MaxResults

	m.searching = true
	m.focusedCard = 0
	m.cardOffset = 0
	log.Debug(log.CatSearch, "Search started", "category", cat.String(), "query", query, "seq", seq)

	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		items, err := provider.Search(ctx, query, maxResults)
		return searchResultsMsg{category: cat, seq: seq, items: items, err: err}
	}
}

// handleSearchResults installs a resolved search. Results for a step
// the user already left, and stale sequences, are dropped without
// touching the visible candidates.
func (m Model) handleSearchResults(msg searchResultsMsg) (Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}
	cat, ok := p.Step().SelectionCategory()
	if !ok || cat != msg.category {
		return m, nil
	}

	m.searching = false
	col := p.Collection(cat)

	if msg.err != nil {
		log.ErrorErr(log.CatSearch, "Search failed", msg.err, "category", cat.String())
		return m, toast("Search failed: "+msg.err.Error(), toaster.StyleError)
	}

	if err := col.ApplyResults(msg.seq, msg.items); err != nil {
		if errors.Is(err, party.ErrStaleSearch) {
			log.Debug(log.CatSearch, "Stale search discarded", "category", cat.String(), "seq", msg.seq)
			return m, nil
		}
		return m, toastErr(err)
	}

	m.focusedCard = 0
	m.cardOffset = 0
	if len(msg.items) == 0 {
		return m, toast("No results", toaster.StyleInfo)
	}
	return m, nil
}

// debounceSearch creates a command that waits then triggers a search.
func debounceSearch(version int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceSearchMsg{version: version}
	})
}

func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

func toastErr(err error) tea.Cmd {
	return toast(err.Error(), toaster.StyleError)
}

// View renders the wizard.
func (m Model) View() string {
	var body string
	switch m.step() {
	case party.StepLanding:
		body = m.viewLanding()
	case party.StepDetails:
		body = m.viewDetails()
	case party.StepReview:
		body = m.viewReview()
	default:
		body = m.viewSelection()
	}

	if m.showDetail {
		cfg := overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}
		return overlay.Place(cfg, m.detail.View(), body)
	}
	return body
}

func (m Model) viewLanding() string {
	title := styles.TitleStyle.Render("fete")
	tag := styles.HintStyle.Render("plan the party, pick the menu, queue the music")
	begin := zone.Mark(landingZone, styles.AdditiveButtonStyle.Render(" plan a party "))
	hint := styles.HintStyle.Render(keys.HelpLine(keys.Default.Begin))
	if m.services.Registry.Len() > 0 {
		hint = styles.HintStyle.Render(keys.HelpLine(keys.Default.Begin, keys.Default.Parties))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", tag, "", begin, "", hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewDetails() string {
	labels := [fieldCount]string{"Title", "Date", "Start", "End"}

	var rows []string
	rows = append(rows, styles.TitleStyle.Render("Party details"), "")
	for i := range m.fields {
		label := styles.HintStyle.Render(fmt.Sprintf("%-6s", labels[i]))
		rows = append(rows, label+m.fields[i].View())
	}
	rows = append(rows, "", zone.Mark(detailsGoZone, styles.AdditiveButtonStyle.Render(" continue ")))
	rows = append(rows, "", styles.HintStyle.Render("tab next field · enter continue · esc parties"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewSelection() string {
	p := m.current()
	cat, _ := p.Step().SelectionCategory()
	col := p.Collection(cat)

	header := styles.TitleStyle.Render(stepHeading(cat))
	if m.services.Config.UI.ShowCounts {
		header += styles.SelectedCountStyle.Render(fmt.Sprintf("  %d added", col.Count()))
	}

	searchView := zone.Mark(searchBarZone, m.searchInput.View())

	var cardViews []string
	cards := col.Cards()
	cardWidth := min(max(m.width-6, 30), 80)
	end := min(m.cardOffset+maxVisibleCard, len(cards))
	for i := m.cardOffset; i < end; i++ {
		focused := m.focus == FocusCards && i == m.focusedCard
		cardViews = append(cardViews, card.Render(cards[i], cardWidth, focused))
	}

	var results string
	switch {
	case m.searching:
		results = styles.HintStyle.Render("searching...")
	case len(cards) == 0:
		results = styles.HintStyle.Render("type a search to find " + cat.String())
	default:
		results = lipgloss.JoinVertical(lipgloss.Left, cardViews...)
		if len(cards) > maxVisibleCard {
			results += "\n" + styles.HintStyle.Render(fmt.Sprintf("%d-%d of %d", m.cardOffset+1, end, len(cards)))
		}
	}

	nav := zone.Mark(prevStepZone, styles.HintStyle.Render("[ back ]")) + "  " +
		zone.Mark(nextStepZone, styles.AdditiveButtonStyle.Render(" next "))
	help := styles.HintStyle.Render(keys.HelpLine(
		keys.Default.Add, keys.Default.Delete, keys.Default.View,
		keys.Default.Next, keys.Default.Back, keys.Default.Search,
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header, "", searchView, "", results, "", nav, help,
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func stepHeading(cat party.Category) string {
	switch cat {
	case party.CategoryCocktail:
		return "Pick the cocktails"
	case party.CategoryFood:
		return "Pick the food"
	case party.CategoryMusic:
		return "Pick the music"
	default:
		return "Pick items"
	}
}

func (m Model) viewReview() string {
	p := m.current()
	s := p.Summary()

	var rows []string
	rows = append(rows, styles.TitleStyle.Render("Review: "+s.Title), "")
	if s.DateRange != "" {
		rows = append(rows, styles.HintStyle.Render("When   ")+s.DateRange)
	}
	rows = append(rows,
		styles.HintStyle.Render("Drinks ")+fmt.Sprintf("%d cocktail(s)", s.CocktailCount),
		styles.HintStyle.Render("Food   ")+fmt.Sprintf("%d dish(es)", s.FoodCount),
		styles.HintStyle.Render("Music  ")+fmt.Sprintf("%d video(s)", s.MusicCount),
		"",
	)

	for _, cat := range party.Categories() {
		for _, it := range p.Collection(cat).SelectedItems() {
			rows = append(rows, "  · "+it.Name())
		}
	}

	link := calendar.Link(m.services.Config.Calendar.LinkBase, s.EventKey)
	rows = append(rows, "", styles.HintStyle.Render("Share  ")+link)

	rows = append(rows, "",
		zone.Mark(prevStepZone, styles.HintStyle.Render("[ back ]"))+"  "+
			zone.Mark(publishZone, styles.AdditiveButtonStyle.Render(" publish ")),
		styles.HintStyle.Render(keys.HelpLine(keys.Default.Publish, keys.Default.Back)+" · esc parties"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
