package assistant

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

const anthropicModel = "claude-3-5-haiku-20241022"

// AnthropicProvider generates replies through the Anthropic messages API.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates an Anthropic-backed provider.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}
	return &AnthropicProvider{client: anthropic.NewClient(option.WithAPIKey(apiKey))}, nil
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Reply generates a reply in the session's display language. Generated
// text is stored under all four language slots; per-language generation
// is not attempted.
func (p *AnthropicProvider) Reply(ctx context.Context, lang model.Language, history []model.Message) (model.Localized, error) {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	messages = append(messages, anthropic.MessageParam{
		Role: anthropic.F(anthropic.MessageParamRoleUser),
		Content: anthropic.F([]anthropic.MessageParamContentUnion{
			anthropic.TextBlockParam{
				Type: anthropic.F(anthropic.TextBlockParamTypeText),
				Text: anthropic.F(systemPrompt[lang]),
			},
		}),
	})
	for _, msg := range history {
		role := anthropic.MessageParamRoleUser
		if msg.Type == model.MessageTypeAI {
			role = anthropic.MessageParamRoleAssistant
		}
		messages = append(messages, anthropic.MessageParam{
			Role: anthropic.F(role),
			Content: anthropic.F([]anthropic.MessageParamContentUnion{
				anthropic.TextBlockParam{
					Type: anthropic.F(anthropic.TextBlockParamTypeText),
					Text: anthropic.F(msg.Content.Get(lang)),
				},
			}),
		})
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(anthropicModel),
		MaxTokens: anthropic.F(int64(1024)),
		Messages:  anthropic.F(messages),
	})
	if err != nil {
		return model.Localized{}, err
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			content += block.Text
		}
	}
	if content == "" {
		return model.Localized{}, errors.New("empty completion")
	}

	return model.Fill(content), nil
}
