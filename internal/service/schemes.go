package service

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

//go:embed schemes.yaml
var schemesYAML []byte

// SchemeService serves the government scheme directory loaded from the
// embedded catalog.
type SchemeService struct {
	schemes []model.Scheme
}

// NewSchemeService parses the embedded catalog.
func NewSchemeService() (*SchemeService, error) {
	var catalog struct {
		Schemes []model.Scheme `yaml:"schemes"`
	}
	if err := yaml.Unmarshal(schemesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse scheme catalog: %w", err)
	}
	return &SchemeService{schemes: catalog.Schemes}, nil
}

// List returns all schemes, optionally filtered by category.
func (s *SchemeService) List(category model.SchemeCategory) []model.Scheme {
	if category == "" {
		return append([]model.Scheme(nil), s.schemes...)
	}
	var out []model.Scheme
	for _, scheme := range s.schemes {
		if scheme.Category == category {
			out = append(out, scheme)
		}
	}
	return out
}

// Search returns schemes whose title or description in the given language
// contains the query, case-insensitively.
func (s *SchemeService) Search(query string, lang model.Language) []model.Scheme {
	q := strings.ToLower(query)
	var out []model.Scheme
	for _, scheme := range s.schemes {
		if strings.Contains(strings.ToLower(scheme.Title.Get(lang)), q) ||
			strings.Contains(strings.ToLower(scheme.Description.Get(lang)), q) {
			out = append(out, scheme)
		}
	}
	return out
}
