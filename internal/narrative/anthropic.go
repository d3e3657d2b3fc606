package narrative

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/mbkold/scoutline/internal/analytics"
)

// AnthropicGenerator generates narratives with the Anthropic Messages
// API. Failures are marked ErrNarrative so callers can degrade to a
// numbers-only report instead of failing the request.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicGenerator creates a generator bound to one model.
func NewAnthropicGenerator(apiKey, model string) *AnthropicGenerator {
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

var _ Generator = (*AnthropicGenerator)(nil)

func (g *AnthropicGenerator) Summarize(ctx context.Context, profile *analytics.TeamProfile, kind Kind) (string, error) {
	return g.complete(ctx, buildPrompt(profile, kind))
}

func (g *AnthropicGenerator) SummarizeMatchup(ctx context.Context, opponent, ours *analytics.TeamProfile) (string, error) {
	return g.complete(ctx, buildMatchupPrompt(opponent, ours))
}

func (g *AnthropicGenerator) complete(ctx context.Context, prompt string) (string, error) {
	log.Debug("Requesting narrative completion", "model", g.model, "prompt_len", len(prompt))
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "anthropic messages request"), analytics.ErrNarrative)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.Mark(errors.New("empty completion"), analytics.ErrNarrative)
	}
	return text, nil
}
