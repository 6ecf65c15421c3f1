package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/healthbot/backend/pkg/circuitbreaker"
	"github.com/healthbot/backend/pkg/logger"
)

// Outcome is the result of one generation attempt: either the generated
// text, or an unavailability reason. Callers branch on Available instead of
// inspecting errors.
type Outcome struct {
	text      string
	reason    string
	available bool
}

func Success(text string) Outcome {
	return Outcome{text: text, available: true}
}

func Unavailable(reason string) Outcome {
	return Outcome{reason: reason}
}

func (o Outcome) Available() bool {
	return o.available
}

func (o Outcome) Text() string {
	return o.text
}

func (o Outcome) Reason() string {
	return o.reason
}

// Client talks to the text-generation provider. A client constructed without
// an API key is a permanent "unconfigured" marker: every Generate call
// reports Unavailable without touching the network.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	cb          *circuitbreaker.CircuitBreaker
}

func NewClient(apiKey, model string, temperature float32, maxTokens, timeoutSec int) *Client {
	c := &Client{
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     time.Duration(timeoutSec) * time.Second,
	}

	if apiKey == "" {
		logger.Warn("Generation provider not configured, all chats will use the fallback response")
		return c
	}

	c.client = openai.NewClient(apiKey)
	c.cb = circuitbreaker.NewCircuitBreaker("generation", circuitbreaker.Config{
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Logger:           logger.GetLogger(),
	})

	logger.Info("Generation client initialized", zap.String("model", model))

	return c
}

// Configured reports whether a provider credential was supplied at startup.
func (c *Client) Configured() bool {
	return c.client != nil
}

// Generate makes exactly one attempt against the provider. Provider errors,
// timeouts and an open circuit all come back as Unavailable; they are never
// surfaced as errors.
func (c *Client) Generate(ctx context.Context, prompt string) Outcome {
	if c.client == nil {
		return Unavailable("not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var text string

	err := c.cb.Execute(ctx, func() error {
		resp, err := c.client.CreateChatCompletion(
			ctx,
			openai.ChatCompletionRequest{
				Model: c.model,
				Messages: []openai.ChatCompletionMessage{
					{
						Role:    openai.ChatMessageRoleUser,
						Content: prompt,
					},
				},
				Temperature: c.temperature,
				MaxTokens:   c.maxTokens,
			},
		)

		if err != nil {
			return fmt.Errorf("failed to create completion: %w", err)
		}

		if len(resp.Choices) == 0 {
			return errors.New("provider returned no choices")
		}

		logger.Debug("Completion generated",
			zap.Int("prompt_tokens", resp.Usage.PromptTokens),
			zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		)

		text = resp.Choices[0].Message.Content
		return nil
	})

	if err != nil {
		logger.Warn("Generation attempt failed", zap.Error(err))
		return Unavailable(err.Error())
	}

	return Success(text)
}
