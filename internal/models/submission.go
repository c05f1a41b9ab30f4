package models

// Phase is the lifecycle position of a submission
type Phase int

const (
	Idle Phase = iota
	Validating
	Requesting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Requesting:
		return "requesting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Verdict is the two-valued answer of the classification service.
// The zero value is not a verdict.
type Verdict int

const (
	Genuine Verdict = iota + 1
	Fake
)

func (v Verdict) String() string {
	switch v {
	case Genuine:
		return "Genuine"
	case Fake:
		return "Fake"
	}
	return ""
}

// ParseVerdict maps the service's wire value to a Verdict. Matching is exact.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "Genuine":
		return Genuine, true
	case "Fake":
		return Fake, true
	}
	return 0, false
}

type ErrorKind int

const (
	ValidationFailure ErrorKind = iota + 1
	ConnectivityFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationFailure:
		return "validation"
	case ConnectivityFailure:
		return "connectivity"
	}
	return "unknown"
}

// ErrorInfo is the user-visible failure of the latest attempt
type ErrorInfo struct {
	Kind    ErrorKind
	Message string
}

func (e *ErrorInfo) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// State is a snapshot of the submission state machine.
// Result is set only in Succeeded, Err only in Failed.
type State struct {
	Phase        Phase
	SubmissionID string
	Result       Verdict
	Err          *ErrorInfo
}

func (s State) IsRequesting() bool {
	return s.Phase == Requesting
}
