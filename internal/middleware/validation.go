package middleware

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// ValidateMessageContent validates message content.
func ValidateMessageContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateSessionID validates a chat session ID.
func ValidateSessionID(id string) error {
	if id == "" {
		return errors.New("session ID cannot be empty")
	}
	if len(id) > 64 {
		return errors.New("session ID exceeds maximum length")
	}
	return nil
}

// ValidateLanguage validates an app language code.
func ValidateLanguage(lang string) error {
	switch model.Language(lang) {
	case model.LanguageHindi, model.LanguageKannada, model.LanguageTamil, model.LanguageEnglish:
		return nil
	}
	return errors.New("unsupported language")
}

// ValidateImageName validates an uploaded image file name.
func ValidateImageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("image name cannot be empty")
	}
	if len(name) > 256 {
		return errors.New("image name exceeds maximum length")
	}
	if !utf8.ValidString(name) {
		return errors.New("image name must be valid UTF-8")
	}
	return nil
}
