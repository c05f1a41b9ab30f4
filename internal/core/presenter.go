package core

import "github.com/Rorical/sentinel/internal/models"

// Tone tells the renderer which palette a verdict uses
type Tone int

const (
	Neutral Tone = iota
	Positive
	Negative
)

// ConfidenceNarrative accompanies every verdict
const ConfidenceNarrative = "Confidence Score: High | Based on linguistic analysis using Logistic Regression & NLP"

// Presentation holds the display attributes of a verdict
type Presentation struct {
	Label       string
	Tone        Tone
	Icon        string
	Explanation string
	Confidence  string
}

var (
	genuinePresentation = Presentation{
		Label:       "Genuine Article",
		Tone:        Positive,
		Icon:        "✓",
		Explanation: "This article displays authentic linguistic patterns and passes our authenticity checks. However, always cross-reference with trusted news sources.",
		Confidence:  ConfidenceNarrative,
	}
	fakePresentation = Presentation{
		Label:       "Likely Fake News",
		Tone:        Negative,
		Icon:        "✗",
		Explanation: "This article exhibits patterns commonly found in misinformation. We recommend verifying the claims with multiple trusted sources before sharing.",
		Confidence:  ConfidenceNarrative,
	}
)

// Present maps a verdict to its display attributes. Anything that is not a
// verdict yields the zero Presentation.
func Present(v models.Verdict) Presentation {
	switch v {
	case models.Genuine:
		return genuinePresentation
	case models.Fake:
		return fakePresentation
	}
	return Presentation{}
}
