package session

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from          View
		action        Action
		hasCategories bool
		want          View
		wantErr       bool
	}{
		{ViewLanding, ActionStart, false, ViewModeSelection, false},
		{ViewModeSelection, ActionChooseChat, false, ViewChat, false},
		{ViewModeSelection, ActionChooseQuiz, false, ViewQuizStep1, false},
		{ViewModeSelection, ActionBack, false, ViewLanding, false},
		{ViewChat, ActionBack, false, ViewLanding, false},
		{ViewQuizStep1, ActionNext, false, ViewQuizStep2, false},
		{ViewQuizStep2, ActionNext, false, ViewQuizStep3, false},
		{ViewQuizStep3, ActionNext, false, ViewQuizStep4, false},
		{ViewQuizStep4, ActionFinish, true, ViewResults, false},
		{ViewQuizStep4, ActionBack, false, ViewQuizStep3, false},
		{ViewResults, ActionBack, false, ViewQuizStep4, false},
		{ViewResults, ActionOpenDetail, false, ViewPlantDetail, false},
		{ViewResults, ActionOpenFavorites, false, ViewFavorites, false},
		{ViewResults, ActionOpenCart, false, ViewCart, false},
		{ViewPlantDetail, ActionCloseSubView, false, ViewResults, false},
		{ViewFavorites, ActionBack, false, ViewResults, false},
		{ViewCart, ActionCloseSubView, false, ViewResults, false},
		{ViewResults, ActionStartOver, false, ViewLanding, false},
		{ViewFavorites, ActionStartOver, false, ViewLanding, false},

		// Historical alias resolves before dispatch.
		{ViewQuiz, ActionNext, false, ViewQuizStep2, false},
		{ViewQuiz, ActionBack, false, ViewLanding, false},

		// Illegal moves.
		{ViewLanding, ActionNext, false, ViewLanding, true},
		{ViewLanding, ActionChooseChat, false, ViewLanding, true},
		{ViewChat, ActionNext, false, ViewChat, true},
		{ViewQuizStep4, ActionNext, false, ViewQuizStep4, true},
		{ViewModeSelection, ActionFinish, true, ViewModeSelection, true},
		{ViewQuizStep1, ActionOpenCart, false, ViewQuizStep1, true},
		{ViewLanding, ActionStartOver, false, ViewLanding, true},
	}
	for _, c := range cases {
		got, err := Transition(c.from, c.action, c.hasCategories)
		if c.wantErr {
			if err == nil {
				t.Errorf("Transition(%s, %s): expected error", c.from, c.action)
			}
			var te ErrTransition
			if !errors.As(err, &te) {
				t.Errorf("Transition(%s, %s): error %v is not ErrTransition", c.from, c.action, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Transition(%s, %s): unexpected error: %v", c.from, c.action, err)
			continue
		}
		if got != c.want {
			t.Errorf("Transition(%s, %s) = %s, want %s", c.from, c.action, got, c.want)
		}
	}
}

func TestFinishRequiresCategory(t *testing.T) {
	got, err := Transition(ViewQuizStep4, ActionFinish, false)
	if err == nil {
		t.Fatal("finish without categories: expected error")
	}
	if got != ViewQuizStep4 {
		t.Errorf("view moved to %s, want quiz-step-4", got)
	}

	if got, err = Transition(ViewQuizStep4, ActionFinish, true); err != nil || got != ViewResults {
		t.Errorf("finish with categories = (%s, %v), want (results, nil)", got, err)
	}
}

// Walking forward through the wizard and all the way back always lands on the
// same steps in reverse.
func TestWizardBackMirrorsForward(t *testing.T) {
	forward := []View{ViewQuizStep1}
	v := ViewQuizStep1
	for i := 0; i < 3; i++ {
		next, err := Transition(v, ActionNext, false)
		if err != nil {
			t.Fatalf("next from %s: %v", v, err)
		}
		forward = append(forward, next)
		v = next
	}

	for i := len(forward) - 1; i > 0; i-- {
		prev, err := Transition(forward[i], ActionBack, false)
		if err != nil {
			t.Fatalf("back from %s: %v", forward[i], err)
		}
		if prev != forward[i-1] {
			t.Errorf("back from %s = %s, want %s", forward[i], prev, forward[i-1])
		}
	}
}
