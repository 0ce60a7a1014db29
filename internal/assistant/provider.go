// Package assistant provides reply generation for the chat assistant.
// The default provider returns the fixed multilingual reply; OpenAI- and
// Anthropic-backed providers are available for deployments that want
// generated replies.
package assistant

import (
	"context"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// Provider generates one assistant reply given the conversation so far.
type Provider interface {
	// Reply returns a reply with all four language slots populated. The
	// lang hint is the session's active display language.
	Reply(ctx context.Context, lang model.Language, history []model.Message) (model.Localized, error)

	// Name returns the provider name.
	Name() string
}

// Kind selects a provider implementation.
type Kind string

const (
	KindCanned    Kind = "canned"
	KindOpenAI    Kind = "openai"
	KindAnthropic Kind = "anthropic"
)

// New creates a provider of the given kind. An empty kind or an empty API
// key falls back to the canned provider.
func New(kind Kind, apiKey string) (Provider, error) {
	switch kind {
	case KindOpenAI:
		return NewOpenAIProvider(apiKey)
	case KindAnthropic:
		return NewAnthropicProvider(apiKey)
	default:
		return NewCannedProvider(), nil
	}
}

// CannedReply is the fixed multilingual assistant acknowledgement used by
// the default provider and as the fallback when generation fails.
func CannedReply() model.Localized {
	return model.Localized{
		Hindi:   "मैं आपकी समस्या समझ गया हूं। क्या आप मुझे और विस्तार से बता सकते हैं?",
		Kannada: "ನಾನು ನಿಮ್ಮ ಸಮಸ್ಯೆ ಅರ್ಥಮಾಡಿಕೊಂಡಿದ್ದೇನೆ. ನೀವು ನನಗೆ ಹೆಚ್ಚು ವಿವರವಾಗಿ ಹೇಳಬಹುದೇ?",
		Tamil:   "உங்கள் பிரச்சனையை நான் புரிந்துகொண்டேன். நீங்கள் எனக்கு மேலும் விரிவாகச் சொல்ல முடியுமா?",
		English: "I understand your problem. Can you tell me more details about it?",
	}
}

// CannedProvider always answers with the fixed multilingual reply.
type CannedProvider struct{}

// NewCannedProvider creates the default provider.
func NewCannedProvider() *CannedProvider {
	return &CannedProvider{}
}

// Name returns the provider name.
func (p *CannedProvider) Name() string {
	return "canned"
}

// Reply returns the fixed multilingual acknowledgement.
func (p *CannedProvider) Reply(ctx context.Context, lang model.Language, history []model.Message) (model.Localized, error) {
	return CannedReply(), nil
}
