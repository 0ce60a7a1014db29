package assistant

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

const openAIModel = "gpt-4o-mini"

var systemPrompt = map[model.Language]string{
	model.LanguageHindi:   "You are Krishimitra, a farming assistant. Answer in Hindi.",
	model.LanguageKannada: "You are Krishimitra, a farming assistant. Answer in Kannada.",
	model.LanguageTamil:   "You are Krishimitra, a farming assistant. Answer in Tamil.",
	model.LanguageEnglish: "You are Krishimitra, a farming assistant. Answer in English.",
}

// OpenAIProvider generates replies through the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey)}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Reply generates a reply in the session's display language. Generated
// text is stored under all four language slots; per-language generation
// is not attempted.
func (p *OpenAIProvider) Reply(ctx context.Context, lang model.Language, history []model.Message) (model.Localized, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt[lang],
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Type == model.MessageTypeAI {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content.Get(lang),
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openAIModel,
		Messages:  messages,
		MaxTokens: 1024,
	})
	if err != nil {
		return model.Localized{}, err
	}
	if len(resp.Choices) == 0 {
		return model.Localized{}, errors.New("empty completion")
	}

	return model.Fill(resp.Choices[0].Message.Content), nil
}
