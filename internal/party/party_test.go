package party

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New("Untitled Party 0", Providers{})

	assert.Equal(t, "Untitled Party 0", p.Title())
	assert.Equal(t, StepLanding, p.Step())
	assert.NotEmpty(t, p.EventKey())
	for _, cat := range Categories() {
		require.NotNil(t, p.Collection(cat))
		assert.Equal(t, cat, p.Collection(cat).Category())
		assert.Equal(t, 0, p.Collection(cat).Count())
	}

	// Event keys are unique per party and stable for its lifetime.
	other := New("Untitled Party 1", Providers{})
	assert.NotEqual(t, p.EventKey(), other.EventKey())
	assert.Equal(t, p.EventKey(), p.Summary().EventKey)
}

func TestParty_SetTitle(t *testing.T) {
	p := New("Untitled Party 0", Providers{})

	require.NoError(t, p.SetTitle("Warehouse Rave"))
	assert.Equal(t, "Warehouse Rave", p.Title())

	assert.Error(t, p.SetTitle("   "))
	assert.Equal(t, "Warehouse Rave", p.Title(), "rejected title leaves prior value")
}

func TestParty_TimeSetters(t *testing.T) {
	t.Run("valid times round-trip", func(t *testing.T) {
		p := New("p", Providers{})
		require.NoError(t, p.SetStartTime("18:30"))
		require.NoError(t, p.SetEndTime("23:00"))

		start, ok := p.StartTime()
		require.True(t, ok)
		assert.Equal(t, "18:30", start.String())
		end, ok := p.EndTime()
		require.True(t, ok)
		assert.Equal(t, "23:00", end.String())
	})

	t.Run("unparseable time is rejected", func(t *testing.T) {
		p := New("p", Providers{})
		assert.ErrorIs(t, p.SetStartTime("quarter past"), ErrInvalidTime)
		assert.ErrorIs(t, p.SetEndTime("25:99"), ErrInvalidTime)
		_, ok := p.StartTime()
		assert.False(t, ok)
	})

	t.Run("start after end is rejected and prior times kept", func(t *testing.T) {
		p := New("p", Providers{})
		require.NoError(t, p.SetStartTime("12:00"))
		require.NoError(t, p.SetEndTime("13:00"))

		err := p.SetStartTime("14:00")
		require.ErrorIs(t, err, ErrInvalidTimeRange)

		start, _ := p.StartTime()
		assert.Equal(t, "12:00", start.String())
	})

	t.Run("end before start is rejected and prior times kept", func(t *testing.T) {
		p := New("p", Providers{})
		require.NoError(t, p.SetStartTime("14:00"))

		err := p.SetEndTime("13:00")
		require.ErrorIs(t, err, ErrInvalidTimeRange)

		_, ok := p.EndTime()
		assert.False(t, ok)
	})

	t.Run("equal start and end is allowed", func(t *testing.T) {
		p := New("p", Providers{})
		require.NoError(t, p.SetStartTime("14:00"))
		require.NoError(t, p.SetEndTime("14:00"))
	})
}

func TestParty_Summary(t *testing.T) {
	p := New("Housewarming", Providers{})
	p.SetDate(time.Date(2026, time.October, 31, 15, 30, 0, 0, time.UTC))
	require.NoError(t, p.SetStartTime("19:00"))
	require.NoError(t, p.SetEndTime("23:30"))

	_, err := p.Music().HandleItemClick(mustVideo(t, "a"), ActionAdd)
	require.NoError(t, err)
	_, err = p.Food().HandleItemClick(mustRecipe(t, "b"), ActionAdd)
	require.NoError(t, err)
	_, err = p.Cocktails().HandleItemClick(mustRecipe(t, "c"), ActionAdd)
	require.NoError(t, err)

	s := p.Summary()
	assert.Equal(t, "Housewarming", s.Title)
	assert.Equal(t, "10/31/2026 19:00 - 10/31/2026 23:30", s.DateRange)
	assert.Equal(t, 1, s.MusicCount)
	assert.Equal(t, 1, s.FoodCount)
	assert.Equal(t, 1, s.CocktailCount)
	assert.False(t, s.Published)
}

func TestParty_SummaryPartialSchedule(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Party)
		want  string
	}{
		{"nothing set", func(*Party) {}, ""},
		{
			"date only",
			func(p *Party) { p.SetDate(time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)) },
			"10/31/2026 - 10/31/2026",
		},
		{
			"times only",
			func(p *Party) {
				require.NoError(t, p.SetStartTime("19:00"))
				require.NoError(t, p.SetEndTime("23:00"))
			},
			"19:00 - 23:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("p", Providers{})
			tt.setup(p)
			assert.Equal(t, tt.want, p.Summary().DateRange)
		})
	}
}

func TestParty_StepMachine(t *testing.T) {
	t.Run("advances strictly forward to review", func(t *testing.T) {
		p := New("p", Providers{})
		want := []Step{
			StepDetails, StepSelectingCocktail, StepSelectingFood,
			StepSelectingMusic, StepReview,
		}
		for _, step := range want {
			require.NoError(t, p.Advance())
			assert.Equal(t, step, p.Step())
		}
		assert.Error(t, p.Advance(), "review is terminal")
	})

	t.Run("retreats stop at details", func(t *testing.T) {
		p := New("p", Providers{})
		for p.Step() != StepReview {
			require.NoError(t, p.Advance())
		}
		for p.Step() != StepDetails {
			require.NoError(t, p.Retreat())
		}
		assert.Error(t, p.Retreat())
	})

	t.Run("publish only legal from review", func(t *testing.T) {
		p := New("p", Providers{})
		assert.Error(t, p.Publish())
		for p.Step() != StepReview {
			require.NoError(t, p.Advance())
		}
		require.NoError(t, p.Publish())
		assert.True(t, p.Published())
	})
}

func TestStep_SelectionCategory(t *testing.T) {
	tests := []struct {
		step    Step
		wantCat Category
		wantOK  bool
	}{
		{StepLanding, 0, false},
		{StepDetails, 0, false},
		{StepSelectingCocktail, CategoryCocktail, true},
		{StepSelectingFood, CategoryFood, true},
		{StepSelectingMusic, CategoryMusic, true},
		{StepReview, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			cat, ok := tt.step.SelectionCategory()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantCat, cat)
			}
		})
	}
}

func mustVideo(t *testing.T, id string) *Item {
	t.Helper()
	it, err := NewVideoItem(id, "video "+id, "")
	require.NoError(t, err)
	return it
}

func mustRecipe(t *testing.T, id string) *Item {
	t.Helper()
	it, err := NewRecipeItem(id, "recipe "+id, "", []string{"one thing"}, "Combine.")
	require.NoError(t, err)
	return it
}
