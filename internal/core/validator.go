package core

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinChars is the advisory length below which the UI hints that more
// text gives a better verdict. It never blocks a submission.
const DefaultMinChars = 100

// ReasonEmpty is the rejection reason for blank input
const ReasonEmpty = "empty input"

// Validator decides whether text is eligible for analysis
type Validator struct {
	MinChars int
}

// Validation is the outcome of Validate
type Validation struct {
	OK       bool
	Reason   string
	Chars    int
	Advisory bool // below MinChars; informational only
}

func NewValidator(minChars int) Validator {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	return Validator{MinChars: minChars}
}

func (v Validator) Validate(text string) Validation {
	chars := utf8.RuneCountInString(text)
	if strings.TrimSpace(text) == "" {
		return Validation{Reason: ReasonEmpty, Chars: chars}
	}
	return Validation{
		OK:       true,
		Chars:    chars,
		Advisory: chars < v.MinChars,
	}
}
