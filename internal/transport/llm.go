package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/models"
)

// DefaultModel is used when a profile leaves the model empty
const DefaultModel = "gpt-4o-mini"

const classifyPrompt = `You judge whether a news article is genuine or fabricated.
Reply with exactly one word: Genuine or Fake.`

// LLMClient classifies articles with an OpenAI-compatible chat model
type LLMClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewLLMClient(apiKey, baseURL, model string, timeout time.Duration, logger *zap.Logger) *LLMClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}
	if model == "" {
		model = DefaultModel
	}

	return &LLMClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}
}

func (c *LLMClient) Classify(ctx context.Context, text string) (models.Verdict, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifyPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		MaxTokens:   4,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Debug("Chat completion failed", zap.String("model", c.model), zap.Error(err))
		return 0, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("%w: no choices", ErrMalformedBody)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	answer = strings.TrimRight(answer, ".")
	verdict, ok := models.ParseVerdict(answer)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVerdict, answer)
	}
	return verdict, nil
}
