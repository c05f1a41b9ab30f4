package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/models"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

type predictRequest struct {
	Text string `json:"text"`
}

// PredictClient talks to a classification service exposing POST /predict
type PredictClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewPredictClient creates a client for the service rooted at endpoint.
// A zero timeout means no client-side limit.
func NewPredictClient(endpoint string, timeout time.Duration, logger *zap.Logger) *PredictClient {
	return &PredictClient{
		url:    strings.TrimRight(endpoint, "/") + "/predict",
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *PredictClient) Classify(ctx context.Context, text string) (models.Verdict, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("Predict request failed", zap.String("url", c.url), zap.Error(err))
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Predict response",
		zap.String("url", c.url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return parsePrediction(respBody)
}

func parsePrediction(body []byte) (models.Verdict, error) {
	if !gjson.ValidBytes(body) {
		return 0, ErrMalformedBody
	}
	prediction := gjson.GetBytes(body, "prediction")
	if prediction.Type != gjson.String {
		return 0, fmt.Errorf("%w: missing prediction field", ErrMalformedBody)
	}
	verdict, ok := models.ParseVerdict(prediction.Str)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVerdict, prediction.Str)
	}
	return verdict, nil
}
