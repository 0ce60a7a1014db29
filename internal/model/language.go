// Package model defines data structures for the assistant platform.
package model

// Language identifies one of the supported display languages.
type Language string

const (
	LanguageHindi   Language = "hindi"
	LanguageKannada Language = "kannada"
	LanguageTamil   Language = "tamil"
	LanguageEnglish Language = "english"
)

// Languages lists all supported languages.
var Languages = []Language{LanguageHindi, LanguageKannada, LanguageTamil, LanguageEnglish}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case LanguageHindi, LanguageKannada, LanguageTamil, LanguageEnglish:
		return true
	}
	return false
}

// Localized holds one string per supported language.
type Localized struct {
	Hindi   string `json:"hindi"`
	Kannada string `json:"kannada"`
	Tamil   string `json:"tamil"`
	English string `json:"english"`
}

// Get returns the string for the given language. Unknown languages fall
// back to English.
func (t Localized) Get(lang Language) string {
	switch lang {
	case LanguageHindi:
		return t.Hindi
	case LanguageKannada:
		return t.Kannada
	case LanguageTamil:
		return t.Tamil
	default:
		return t.English
	}
}

// Fill returns a Localized with every language slot set to the same text.
// User input is stored verbatim under all four keys; no translation happens.
func Fill(text string) Localized {
	return Localized{Hindi: text, Kannada: text, Tamil: text, English: text}
}

// Complete reports whether all four language slots are populated.
func (t Localized) Complete() bool {
	return t.Hindi != "" && t.Kannada != "" && t.Tamil != "" && t.English != ""
}

// LocalizedList holds one string list per supported language.
type LocalizedList struct {
	Hindi   []string `json:"hindi"`
	Kannada []string `json:"kannada"`
	Tamil   []string `json:"tamil"`
	English []string `json:"english"`
}

// Get returns the list for the given language, falling back to English.
func (t LocalizedList) Get(lang Language) []string {
	switch lang {
	case LanguageHindi:
		return t.Hindi
	case LanguageKannada:
		return t.Kannada
	case LanguageTamil:
		return t.Tamil
	default:
		return t.English
	}
}
