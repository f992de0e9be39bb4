package party

import (
	"context"
	"fmt"
)

// Category identifies which slice of a party a collection selects for.
type Category int

const (
	CategoryMusic Category = iota
	CategoryFood
	CategoryCocktail
)

func (c Category) String() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategoryFood:
		return "food"
	case CategoryCocktail:
		return "cocktail"
	default:
		return "unknown"
	}
}

// Categories lists every category in wizard order.
func Categories() []Category {
	return []Category{CategoryCocktail, CategoryFood, CategoryMusic}
}

// Provider performs an asynchronous lookup against an external search
// backend for one category. Implementations live outside the domain.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]*Item, error)
}

// ClickEffect tells the presentation layer what to do after a card
// click was handled.
type ClickEffect int

const (
	// EffectShowDetails requests the item's detail view be shown.
	EffectShowDetails ClickEffect = iota
	// EffectRenderSelected requests the card re-render as selected.
	EffectRenderSelected
	// EffectRenderUnselected requests the card re-render as unselected
	// (or drop out of the added-items view).
	EffectRenderUnselected
)

// Collection holds the candidate and selected items for one category of
// one party. Candidates are the results of the most recent successful
// search, ordered and deduplicated by id. The selected set is always a
// subset of ids the collection has seen.
type Collection struct {
	category Category
	provider Provider

	candidates []*Item
	seen       map[string]*Item
	selected   map[string]struct{}
	selOrder   []string

	// searchSeq tags in-flight searches so stale resolutions are
	// discarded (last-search-wins).
	searchSeq int
}

// NewCollection creates an empty collection for the category. provider
// may be nil for collections populated only via AddCandidate.
func NewCollection(category Category, provider Provider) *Collection {
	return &Collection{
		category: category,
		provider: provider,
		seen:     make(map[string]*Item),
		selected: make(map[string]struct{}),
	}
}

// Category returns the category this collection selects for.
func (c *Collection) Category() Category { return c.category }

// Candidates returns the currently displayed search results in order.
func (c *Collection) Candidates() []*Item {
	out := make([]*Item, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// BeginSearch registers a new in-flight search and returns its sequence
// number. A later ApplyResults call with a stale sequence is discarded.
func (c *Collection) BeginSearch() int {
	c.searchSeq++
	return c.searchSeq
}

// ApplyResults installs a search resolution tagged with seq. Results
// replace the current candidates; repeat ids within one resolution are
// dropped. Returns ErrStaleSearch when a newer search has started since
// seq was issued, leaving all state untouched.
func (c *Collection) ApplyResults(seq int, items []*Item) error {
	if seq != c.searchSeq {
		return ErrStaleSearch
	}

	next := make([]*Item, 0, len(items))
	inNext := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if _, dup := inNext[it.ID()]; dup {
			continue
		}
		inNext[it.ID()] = struct{}{}
		c.seen[it.ID()] = it
		next = append(next, it)
	}
	c.candidates = next
	return nil
}

// Search runs a blocking search against the provider and applies the
// results. A provider failure is wrapped in ErrSearchFailed and leaves
// the previous candidates and selection intact.
func (c *Collection) Search(ctx context.Context, query string, maxResults int) error {
	if c.provider == nil {
		return fmt.Errorf("%w: no provider for %s", ErrSearchFailed, c.category)
	}
	seq := c.BeginSearch()
	items, err := c.provider.Search(ctx, query, maxResults)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	return c.ApplyResults(seq, items)
}

// AddCandidate appends a manually authored item to the candidates.
// Ids already seen are ignored.
func (c *Collection) AddCandidate(it *Item) {
	if it == nil {
		return
	}
	if _, ok := c.seen[it.ID()]; ok {
		return
	}
	c.seen[it.ID()] = it
	c.candidates = append(c.candidates, it)
}

// HandleItemClick is the collection's card-event handler. It mutates
// selection state for add/delete, leaves state alone for view, and
// rejects anything else with ErrUnknownItemAction.
func (c *Collection) HandleItemClick(it *Item, action Action) (ClickEffect, error) {
	if it == nil {
		return 0, fmt.Errorf("%w: nil item", ErrUnknownItemAction)
	}
	switch action {
	case ActionView:
		return EffectShowDetails, nil
	case ActionAdd:
		// A click proves the item was materialized in front of the
		// user, so register it even if it arrived outside a search.
		if _, ok := c.seen[it.ID()]; !ok {
			c.seen[it.ID()] = it
		}
		if _, ok := c.selected[it.ID()]; !ok {
			c.selected[it.ID()] = struct{}{}
			c.selOrder = append(c.selOrder, it.ID())
		}
		return EffectRenderSelected, nil
	case ActionDelete:
		if _, ok := c.selected[it.ID()]; ok {
			delete(c.selected, it.ID())
			for i, id := range c.selOrder {
				if id == it.ID() {
					c.selOrder = append(c.selOrder[:i], c.selOrder[i+1:]...)
					break
				}
			}
		}
		return EffectRenderUnselected, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownItemAction, string(action))
	}
}

// IsSelected reports whether the id is in the selected set.
func (c *Collection) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// Count returns the number of selected items.
func (c *Collection) Count() int { return len(c.selected) }

// SelectedItems returns the selected items in selection order.
func (c *Collection) SelectedItems() []*Item {
	out := make([]*Item, 0, len(c.selOrder))
	for _, id := range c.selOrder {
		if it, ok := c.seen[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Cards renders the current candidates as search cards, reflecting the
// selection state of each.
func (c *Collection) Cards() []Card {
	cards := make([]Card, 0, len(c.candidates))
	for _, it := range c.candidates {
		cards = append(cards, it.RenderSearchCard(c.IsSelected(it.ID())))
	}
	return cards
}
