package party

import "fmt"

// Kind discriminates how an item's detail view is assembled.
type Kind int

const (
	// KindVideo is a music video addressed by its source id.
	KindVideo Kind = iota
	// KindRecipe is a food or cocktail recipe with ingredients and
	// instructions.
	KindRecipe
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// Action identifies an interactive affordance on a search card.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)

// IsValid returns true if the action is one a card can emit.
func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionAdd, ActionDelete:
		return true
	default:
		return false
	}
}

// videoEmbedBase is the external player address a video detail view
// points at, keyed by the item's source id.
const videoEmbedBase = "https://www.youtube.com/embed/"

// Item is a single selectable entity: a music video or a recipe.
// Items are immutable after creation; selection state lives in the
// owning Collection, never on the item itself.
type Item struct {
	id       string
	name     string
	imageURL string
	kind     Kind

	// Recipe payload. Empty for videos.
	ingredients  []string
	instructions string
}

// NewVideoItem creates a video item. The id is the source API's stable
// video identifier and also addresses the embedded player.
func NewVideoItem(id, name, imageURL string) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	return &Item{id: id, name: name, imageURL: imageURL, kind: KindVideo}, nil
}

// NewRecipeItem creates a recipe item (food or cocktail).
func NewRecipeItem(id, name, imageURL string, ingredients []string, instructions string) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	ing := make([]string, len(ingredients))
	copy(ing, ingredients)
	return &Item{
		id:           id,
		name:         name,
		imageURL:     imageURL,
		kind:         KindRecipe,
		ingredients:  ing,
		instructions: instructions,
	}, nil
}

// ID returns the item's stable source identifier.
func (it *Item) ID() string { return it.id }

// Name returns the display name.
func (it *Item) Name() string { return it.name }

// ImageURL returns the thumbnail image address.
func (it *Item) ImageURL() string { return it.imageURL }

// Kind returns the item's kind discriminator.
func (it *Item) Kind() Kind { return it.kind }

// Ingredients returns a copy of the recipe's ingredient lines.
// Empty for videos.
func (it *Item) Ingredients() []string {
	out := make([]string, len(it.ingredients))
	copy(out, it.ingredients)
	return out
}

// Instructions returns the recipe's instructions text. Empty for videos.
func (it *Item) Instructions() string { return it.instructions }

// Tone hints how a card affordance should be styled.
type Tone int

const (
	// ToneAdditive styles the toggle as an additive action.
	ToneAdditive Tone = iota
	// ToneDestructive styles the toggle as a destructive action.
	ToneDestructive
)

// Card is a pure view descriptor for an item's search card. The
// presentation layer mounts it and routes the affordances back through
// Collection.HandleItemClick as (item, action) pairs.
type Card struct {
	ItemID   string
	Title    string
	ImageURL string
	Selected bool

	// ToggleAction is the action the toggle affordance emits when
	// activated: ActionAdd when unselected, ActionDelete when selected.
	ToggleAction Action
	ToggleLabel  string
	ToggleTone   Tone

	// ViewAction is always ActionView; carried so the presentation
	// layer wires the activator without knowing action names.
	ViewAction Action
}

// RenderSearchCard produces the card descriptor for this item. Pure;
// the same shared rendering serves every kind.
func (it *Item) RenderSearchCard(selected bool) Card {
	c := Card{
		ItemID:     it.id,
		Title:      it.name,
		ImageURL:   it.imageURL,
		Selected:   selected,
		ViewAction: ActionView,
	}
	if selected {
		c.ToggleAction = ActionDelete
		c.ToggleLabel = "delete"
		c.ToggleTone = ToneDestructive
	} else {
		c.ToggleAction = ActionAdd
		c.ToggleLabel = "add"
		c.ToggleTone = ToneAdditive
	}
	return c
}

// DetailView is a pure view descriptor for an item's detail screen.
// Exactly one of the kind payloads is populated.
type DetailView struct {
	Kind     Kind
	Title    string
	ImageURL string

	// Recipe payload.
	Ingredients  []string
	Instructions string

	// Video payload: the external player address, sized by the
	// presentation layer to fill its container.
	EmbedURL string
}

// RenderDetails assembles the kind-specific detail view. This is the
// one place the kinds diverge: recipes list ingredients and
// instructions, videos embed the external player by id.
func (it *Item) RenderDetails() DetailView {
	v := DetailView{
		Kind:     it.kind,
		Title:    it.name,
		ImageURL: it.imageURL,
	}
	switch it.kind {
	case KindRecipe:
		v.Ingredients = it.Ingredients()
		v.Instructions = it.instructions
	case KindVideo:
		v.EmbedURL = videoEmbedBase + it.id
	}
	return v
}
