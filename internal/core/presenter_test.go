package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/sentinel/internal/models"
)

func TestPresent(t *testing.T) {
	genuine := Present(models.Genuine)
	assert.Equal(t, "Genuine Article", genuine.Label)
	assert.Equal(t, Positive, genuine.Tone)
	assert.Equal(t, ConfidenceNarrative, genuine.Confidence)
	assert.NotEmpty(t, genuine.Explanation)

	fake := Present(models.Fake)
	assert.Equal(t, "Likely Fake News", fake.Label)
	assert.Equal(t, Negative, fake.Tone)
	assert.NotEqual(t, genuine.Explanation, fake.Explanation)
}

func TestPresent_Deterministic(t *testing.T) {
	assert.Equal(t, Present(models.Fake), Present(models.Fake))
	assert.Equal(t, Presentation{}, Present(models.Verdict(0)))
}
