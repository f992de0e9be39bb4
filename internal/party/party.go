package party

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// dateLayout formats party dates in summaries, matching the planner's
// date input format.
const dateLayout = "01/02/2006"

// Providers bundles the category-specific search backends a party's
// collections delegate to. Any entry may be nil.
type Providers struct {
	Music    Provider
	Food     Provider
	Cocktail Provider
}

// For returns the provider for the category.
func (p Providers) For(cat Category) Provider {
	switch cat {
	case CategoryMusic:
		return p.Music
	case CategoryFood:
		return p.Food
	case CategoryCocktail:
		return p.Cocktail
	default:
		return nil
	}
}

// Party is a user-authored event: schedule metadata plus one item
// collection per category. Parties are session-scoped and never
// explicitly destroyed.
type Party struct {
	title string
	date  time.Time // zero when unset; date component only
	start *TimeOfDay
	end   *TimeOfDay

	collections map[Category]*Collection

	// eventKey is generated once at creation and stable for the
	// party's lifetime; it addresses the external calendar link.
	eventKey string

	step      Step
	published bool
}

// New creates a party with empty collections for every category and a
// freshly generated event key. The wizard starts at the landing step.
func New(title string, providers Providers) *Party {
	cols := make(map[Category]*Collection, len(Categories()))
	for _, cat := range Categories() {
		cols[cat] = NewCollection(cat, providers.For(cat))
	}
	return &Party{
		title:       title,
		collections: cols,
		eventKey:    uuid.NewString(),
	}
}

// Title returns the party's display title.
func (p *Party) Title() string { return p.title }

// SetTitle replaces the title. Whitespace-only titles are rejected.
func (p *Party) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	p.title = title
	return nil
}

// Date returns the calendar date and whether one has been set.
func (p *Party) Date() (time.Time, bool) {
	return p.date, !p.date.IsZero()
}

// SetDate sets the calendar date, dropping any time-of-day component.
func (p *Party) SetDate(d time.Time) {
	p.date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// StartTime returns the start time and whether one has been set.
func (p *Party) StartTime() (TimeOfDay, bool) {
	if p.start == nil {
		return TimeOfDay{}, false
	}
	return *p.start, true
}

// EndTime returns the end time and whether one has been set.
func (p *Party) EndTime() (TimeOfDay, bool) {
	if p.end == nil {
		return TimeOfDay{}, false
	}
	return *p.end, true
}

// SetStartTime parses and sets the start time. When an end time is
// already set, a start after it fails with ErrInvalidTimeRange and the
// previous start is kept.
func (p *Party) SetStartTime(s string) error {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	if p.end != nil && p.end.Before(t) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidTimeRange, t, p.end)
	}
	p.start = &t
	return nil
}

// SetEndTime parses and sets the end time. When a start time is already
// set, an end before it fails with ErrInvalidTimeRange and the previous
// end is kept.
func (p *Party) SetEndTime(s string) error {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	if p.start != nil && t.Before(*p.start) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidTimeRange, p.start, t)
	}
	p.end = &t
	return nil
}

// EventKey returns the opaque key used to build the external calendar
// link for this party.
func (p *Party) EventKey() string { return p.eventKey }

// Collection returns the item collection for the category.
func (p *Party) Collection(cat Category) *Collection {
	return p.collections[cat]
}

// Music returns the music collection.
func (p *Party) Music() *Collection { return p.collections[CategoryMusic] }

// Food returns the food collection.
func (p *Party) Food() *Collection { return p.collections[CategoryFood] }

// Cocktails returns the cocktail collection.
func (p *Party) Cocktails() *Collection { return p.collections[CategoryCocktail] }

// Summary is a read-only projection of a party for list and review
// rendering.
type Summary struct {
	Title         string
	DateRange     string
	CocktailCount int
	FoodCount     int
	MusicCount    int
	EventKey      string
	Published     bool
}

// Summary projects the party's current state. It never mutates.
func (p *Party) Summary() Summary {
	return Summary{
		Title:         p.title,
		DateRange:     p.dateRange(),
		CocktailCount: p.Cocktails().Count(),
		FoodCount:     p.Food().Count(),
		MusicCount:    p.Music().Count(),
		EventKey:      p.eventKey,
		Published:     p.published,
	}
}

// dateRange formats "date start - date end" the way the parties list
// displays it, degrading gracefully when pieces are unset.
func (p *Party) dateRange() string {
	date := ""
	if !p.date.IsZero() {
		date = p.date.Format(dateLayout)
	}
	part := func(t *TimeOfDay) string {
		switch {
		case date != "" && t != nil:
			return date + " " + t.String()
		case t != nil:
			return t.String()
		default:
			return date
		}
	}
	left, right := part(p.start), part(p.end)
	if left == "" && right == "" {
		return ""
	}
	return left + " - " + right
}
