package submit

// UIState is the discrete state of the submission surface. Exactly one state
// is active at a time; Idle is the initial state and there is no terminal
// state.
type UIState int

const (
	StateIdle UIState = iota
	StateSubmitting
	StateResultsVisible
	StateErrorVisible
)

func (s UIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateResultsVisible:
		return "results"
	case StateErrorVisible:
		return "error"
	default:
		return "unknown"
	}
}

// EventKind identifies what happened.
type EventKind int

const (
	// EventSubmitValid fires when a submission passed all local checks.
	EventSubmitValid EventKind = iota
	// EventSubmitInvalid fires when a local check rejected the submission;
	// no request is made.
	EventSubmitInvalid
	// EventSucceeded fires when the in-flight request returned a result.
	EventSucceeded
	// EventFailed fires when the in-flight request ended in a service or
	// transport error.
	EventFailed
	// EventErrorDismissed fires when the user dismisses the error banner.
	EventErrorDismissed
	// EventResultsClosed fires when the user closes the results view.
	EventResultsClosed
)

// Event is one input to the state machine. Message carries the error text for
// EventSubmitInvalid and EventFailed.
type Event struct {
	Kind    EventKind
	Message string
}

// EffectKind identifies a UI side effect requested by a transition.
type EffectKind int

const (
	// EffectDisableSubmit disables the submit control and swaps its label
	// to the busy indicator.
	EffectDisableSubmit EffectKind = iota
	// EffectRestoreSubmit re-enables the submit control and restores its
	// original label. Emitted last on every path that leaves Submitting, so
	// the control can never remain stuck disabled.
	EffectRestoreSubmit
	// EffectShowBusy hides the form and shows the busy region.
	EffectShowBusy
	// EffectHideBusy hides the busy region and shows the form again.
	EffectHideBusy
	// EffectShowError shows the error banner with Message. The banner stays
	// until dismissed or replaced; it is never auto-cleared.
	EffectShowError
	// EffectHideError hides the error banner.
	EffectHideError
	// EffectOpenResults opens the results view.
	EffectOpenResults
	// EffectCloseResults closes the results view.
	EffectCloseResults
)

// Effect is one UI side effect. Effects are applied in order by a View; the
// state machine itself never touches widgets.
type Effect struct {
	Kind    EffectKind
	Message string
}

// View applies effects to the actual UI. The GUI implements it with a thin
// adapter; tests implement it with a recorder.
type View interface {
	Apply(effect Effect)
}

// Transition is the pure transition function: given the current state and an
// event it returns the next state and the effects to apply. Event/state
// combinations outside the machine leave the state unchanged with no effects.
func Transition(state UIState, event Event) (UIState, []Effect) {
	switch event.Kind {
	case EventSubmitValid:
		switch state {
		case StateIdle, StateErrorVisible:
			return StateSubmitting, []Effect{
				{Kind: EffectHideError},
				{Kind: EffectDisableSubmit},
				{Kind: EffectShowBusy},
			}
		case StateResultsVisible:
			return StateSubmitting, []Effect{
				{Kind: EffectCloseResults},
				{Kind: EffectHideError},
				{Kind: EffectDisableSubmit},
				{Kind: EffectShowBusy},
			}
		}

	case EventSubmitInvalid:
		switch state {
		case StateIdle, StateErrorVisible, StateResultsVisible:
			return StateErrorVisible, []Effect{
				{Kind: EffectShowError, Message: event.Message},
			}
		}

	case EventSucceeded:
		if state == StateSubmitting {
			return StateResultsVisible, []Effect{
				{Kind: EffectHideError},
				{Kind: EffectHideBusy},
				{Kind: EffectOpenResults},
				{Kind: EffectRestoreSubmit},
			}
		}

	case EventFailed:
		if state == StateSubmitting {
			return StateErrorVisible, []Effect{
				{Kind: EffectShowError, Message: event.Message},
				{Kind: EffectHideBusy},
				{Kind: EffectRestoreSubmit},
			}
		}

	case EventErrorDismissed:
		if state == StateErrorVisible {
			return StateIdle, []Effect{
				{Kind: EffectHideError},
			}
		}

	case EventResultsClosed:
		if state == StateResultsVisible {
			return StateIdle, []Effect{
				{Kind: EffectCloseResults},
			}
		}
	}

	return state, nil
}
