package party

import "fmt"

// noCurrent marks a registry with no party being edited.
const noCurrent = -1

// Registry is the session-level container of parties: insertion order
// is creation order, which drives default titles and list display. It
// also indexes the party currently being edited.
type Registry struct {
	providers Providers
	parties   []*Party
	current   int
}

// NewRegistry creates a registry, optionally seeded with pre-existing
// parties. The current index starts unset.
func NewRegistry(providers Providers, existing ...*Party) *Registry {
	r := &Registry{
		providers: providers,
		current:   noCurrent,
	}
	r.parties = append(r.parties, existing...)
	return r
}

// NewParty creates a party titled "Untitled Party {n}" where n is the
// number of existing parties, appends it, makes it current, and returns
// it. Always succeeds.
func (r *Registry) NewParty() *Party {
	p := New(fmt.Sprintf("Untitled Party %d", len(r.parties)), r.providers)
	r.parties = append(r.parties, p)
	r.current = len(r.parties) - 1
	return p
}

// Len returns the number of parties.
func (r *Registry) Len() int { return len(r.parties) }

// Parties returns the parties in creation order.
func (r *Registry) Parties() []*Party {
	out := make([]*Party, len(r.parties))
	copy(out, r.parties)
	return out
}

// ListSummaries projects every party in creation order.
func (r *Registry) ListSummaries() []Summary {
	out := make([]Summary, 0, len(r.parties))
	for _, p := range r.parties {
		out = append(out, p.Summary())
	}
	return out
}

// Current returns the party being edited, or ErrNoCurrentParty when the
// index is unset.
func (r *Registry) Current() (*Party, error) {
	if r.current == noCurrent {
		return nil, ErrNoCurrentParty
	}
	return r.parties[r.current], nil
}

// CurrentIndex returns the index of the current party and whether one
// is set.
func (r *Registry) CurrentIndex() (int, bool) {
	if r.current == noCurrent {
		return 0, false
	}
	return r.current, true
}

// SetCurrent selects the party at index i for editing.
func (r *Registry) SetCurrent(i int) error {
	if i < 0 || i >= len(r.parties) {
		return fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, i, len(r.parties))
	}
	r.current = i
	return nil
}

// ClearCurrent unsets the current party, returning to list context.
func (r *Registry) ClearCurrent() {
	r.current = noCurrent
}
