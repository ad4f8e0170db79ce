package session

import "fmt"

// View is the top-level screen the client renders. plant-detail, favorites
// and cart are sub-views of the results region.
type View string

const (
	ViewLanding       View = "landing"
	ViewModeSelection View = "mode-selection"
	ViewChat          View = "chat"
	ViewQuiz          View = "quiz" // historical alias for quiz-step-1
	ViewQuizStep1     View = "quiz-step-1"
	ViewQuizStep2     View = "quiz-step-2"
	ViewQuizStep3     View = "quiz-step-3"
	ViewQuizStep4     View = "quiz-step-4"
	ViewResults       View = "results"
	ViewPlantDetail   View = "plant-detail"
	ViewFavorites     View = "favorites"
	ViewCart          View = "cart"
)

// Action is a user interaction that may move the state machine.
type Action string

const (
	ActionStart         Action = "start"
	ActionChooseChat    Action = "choose-chat"
	ActionChooseQuiz    Action = "choose-quiz"
	ActionBack          Action = "back"
	ActionNext          Action = "next"
	ActionFinish        Action = "finish"
	ActionStartOver     Action = "start-over"
	ActionOpenDetail    Action = "open-detail"
	ActionOpenFavorites Action = "open-favorites"
	ActionOpenCart      Action = "open-cart"
	ActionCloseSubView  Action = "close"
)

// ErrTransition reports an action that is not legal from the current view.
type ErrTransition struct {
	From   View
	Action Action
}

func (e ErrTransition) Error() string {
	return fmt.Sprintf("session: action %q not allowed from view %q", e.Action, e.From)
}

// inResultsRegion reports whether v renders inside the results region.
func inResultsRegion(v View) bool {
	switch v {
	case ViewResults, ViewPlantDetail, ViewFavorites, ViewCart:
		return true
	}
	return false
}

// Transition resolves the next view for an action. hasCategories gates the
// quiz finish: results are only reachable from step 4 once at least one
// category is selected.
func Transition(from View, action Action, hasCategories bool) (View, error) {
	if from == ViewQuiz {
		from = ViewQuizStep1
	}

	switch action {
	case ActionStart:
		if from == ViewLanding {
			return ViewModeSelection, nil
		}
	case ActionChooseChat:
		if from == ViewModeSelection {
			return ViewChat, nil
		}
	case ActionChooseQuiz:
		if from == ViewModeSelection {
			return ViewQuizStep1, nil
		}
	case ActionNext:
		switch from {
		case ViewQuizStep1:
			return ViewQuizStep2, nil
		case ViewQuizStep2:
			return ViewQuizStep3, nil
		case ViewQuizStep3:
			return ViewQuizStep4, nil
		}
	case ActionFinish:
		if from == ViewQuizStep4 {
			if !hasCategories {
				return from, fmt.Errorf("session: finish requires at least one selected category")
			}
			return ViewResults, nil
		}
	case ActionBack:
		switch from {
		case ViewModeSelection, ViewChat, ViewQuizStep1:
			return ViewLanding, nil
		case ViewQuizStep2:
			return ViewQuizStep1, nil
		case ViewQuizStep3:
			return ViewQuizStep2, nil
		case ViewQuizStep4:
			return ViewQuizStep3, nil
		case ViewResults:
			return ViewQuizStep4, nil
		case ViewPlantDetail, ViewFavorites, ViewCart:
			return ViewResults, nil
		}
	case ActionStartOver:
		if inResultsRegion(from) {
			return ViewLanding, nil
		}
	case ActionOpenDetail:
		if inResultsRegion(from) {
			return ViewPlantDetail, nil
		}
	case ActionOpenFavorites:
		if inResultsRegion(from) {
			return ViewFavorites, nil
		}
	case ActionOpenCart:
		if inResultsRegion(from) {
			return ViewCart, nil
		}
	case ActionCloseSubView:
		switch from {
		case ViewPlantDetail, ViewFavorites, ViewCart:
			return ViewResults, nil
		}
	}
	return from, ErrTransition{From: from, Action: action}
}
