// Package transport implements the classifiers the submission core talks to.
package transport

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/config"
	"github.com/Rorical/sentinel/internal/core"
)

// UserAgent is sent with every request
const UserAgent = "sentinel/1.0"

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformedBody    = errors.New("malformed response body")
	ErrUnknownVerdict   = errors.New("unrecognized prediction")
)

// New builds the classifier selected by the profile's provider
func New(p config.Profile, logger *zap.Logger) (core.Classifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(p.TimeoutSeconds) * time.Second

	switch p.Provider {
	case "", config.ProviderPredict:
		if p.Endpoint == "" {
			return nil, fmt.Errorf("predict provider requires an endpoint")
		}
		return NewPredictClient(p.Endpoint, timeout, logger), nil
	case config.ProviderOpenAI:
		if p.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewLLMClient(p.APIKey, p.BaseURL, p.Model, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", p.Provider)
	}
}
