package party

import "fmt"

// Step is the party-creation wizard position. Transitions are strictly
// sequential in both directions; Review is terminal.
type Step int

const (
	StepLanding Step = iota
	StepDetails
	StepSelectingCocktail
	StepSelectingFood
	StepSelectingMusic
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepLanding:
		return "landing"
	case StepDetails:
		return "details"
	case StepSelectingCocktail:
		return "selecting cocktails"
	case StepSelectingFood:
		return "selecting food"
	case StepSelectingMusic:
		return "selecting music"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// SelectionCategory returns the category a selection step edits, and
// whether the step is a selection step at all.
func (s Step) SelectionCategory() (Category, bool) {
	switch s {
	case StepSelectingCocktail:
		return CategoryCocktail, true
	case StepSelectingFood:
		return CategoryFood, true
	case StepSelectingMusic:
		return CategoryMusic, true
	default:
		return 0, false
	}
}

// Step returns the party's current wizard position.
func (p *Party) Step() Step { return p.step }

// Advance moves the wizard one step forward. Review is terminal.
func (p *Party) Advance() error {
	if p.step >= StepReview {
		return fmt.Errorf("cannot advance past %s", StepReview)
	}
	p.step++
	return nil
}

// Retreat moves the wizard one step back, stopping at the details step.
// The landing screen is only shown before a party exists.
func (p *Party) Retreat() error {
	if p.step <= StepDetails {
		return fmt.Errorf("cannot retreat past %s", StepDetails)
	}
	p.step--
	return nil
}

// Publish finalizes the party from the review step. The party was in
// the registry since creation; publishing marks it done so list views
// can distinguish drafts.
func (p *Party) Publish() error {
	if p.step != StepReview {
		return fmt.Errorf("cannot publish from %s", p.step)
	}
	p.published = true
	return nil
}

// Published reports whether the party was finalized from review.
func (p *Party) Published() bool { return p.published }
