package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/sentinel/internal/config"
)

func TestNew(t *testing.T) {
	c, err := New(config.DefaultProfile(), nil)
	require.NoError(t, err)
	assert.IsType(t, &PredictClient{}, c)

	c, err = New(config.Profile{Provider: config.ProviderOpenAI, APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LLMClient{}, c)
}

func TestNew_InvalidProfiles(t *testing.T) {
	for _, p := range []config.Profile{
		{Provider: config.ProviderPredict},
		{Provider: config.ProviderOpenAI},
		{Provider: "carrier-pigeon", Endpoint: "http://localhost"},
	} {
		_, err := New(p, nil)
		assert.Error(t, err, "%+v", p)
	}
}
