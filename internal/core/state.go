package core

import "github.com/Rorical/sentinel/internal/models"

// ConnectivityMessage is reported for every transport failure, whatever
// the underlying cause.
const ConnectivityMessage = "Could not connect to server. Make sure the classification service is running."

// Event drives the submission state machine
type Event interface {
	event()
}

// ClearEvent resets to Idle from any phase
type ClearEvent struct{}

// ValidateEvent starts a new submission
type ValidateEvent struct{}

// RejectEvent ends validation with a failure
type RejectEvent struct {
	Reason string
}

// RequestEvent marks validated text as sent to the classifier
type RequestEvent struct {
	SubmissionID string
}

// ResolveEvent carries the classifier outcome for one submission
type ResolveEvent struct {
	SubmissionID string
	Verdict      models.Verdict
	Err          error
}

func (ClearEvent) event()    {}
func (ValidateEvent) event() {}
func (RejectEvent) event()   {}
func (RequestEvent) event()  {}
func (ResolveEvent) event()  {}

// Transition is the pure transition function of the submission state machine.
// It returns the next state and whether anything changed. Events that are not
// valid for the current phase leave the state untouched.
func Transition(s models.State, ev Event) (models.State, bool) {
	var next models.State

	switch e := ev.(type) {
	case ClearEvent:
		next = models.State{Phase: models.Idle}

	case ValidateEvent:
		// Single flight: nothing starts while a request is outstanding
		if s.Phase == models.Requesting {
			return s, false
		}
		next = models.State{Phase: models.Validating}

	case RejectEvent:
		if s.Phase != models.Validating {
			return s, false
		}
		next = models.State{
			Phase: models.Failed,
			Err:   &models.ErrorInfo{Kind: models.ValidationFailure, Message: e.Reason},
		}

	case RequestEvent:
		if s.Phase != models.Validating {
			return s, false
		}
		next = models.State{Phase: models.Requesting, SubmissionID: e.SubmissionID}

	case ResolveEvent:
		// Stale: the submission was cleared or superseded
		if s.Phase != models.Requesting || s.SubmissionID != e.SubmissionID {
			return s, false
		}
		if _, known := models.ParseVerdict(e.Verdict.String()); e.Err != nil || !known {
			next = models.State{
				Phase:        models.Failed,
				SubmissionID: e.SubmissionID,
				Err:          &models.ErrorInfo{Kind: models.ConnectivityFailure, Message: ConnectivityMessage},
			}
		} else {
			next = models.State{Phase: models.Succeeded, SubmissionID: e.SubmissionID, Result: e.Verdict}
		}

	default:
		return s, false
	}

	return next, !sameState(s, next)
}

func sameState(a, b models.State) bool {
	if a.Phase != b.Phase || a.SubmissionID != b.SubmissionID || a.Result != b.Result {
		return false
	}
	if a.Err == nil || b.Err == nil {
		return a.Err == b.Err
	}
	return *a.Err == *b.Err
}
