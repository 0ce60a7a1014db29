package speech

import (
	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// localeTags maps supported languages to speech recognition locales.
var localeTags = map[model.Language]string{
	model.LanguageHindi:   "hi-IN",
	model.LanguageKannada: "kn-IN",
	model.LanguageTamil:   "ta-IN",
	model.LanguageEnglish: "en-US",
}

// LocaleFor returns the recognition locale tag for a language. Unknown
// languages resolve to the English locale.
func LocaleFor(lang model.Language) string {
	if tag, ok := localeTags[lang]; ok {
		return tag
	}
	return localeTags[model.LanguageEnglish]
}

// Locales returns the full language-to-locale table.
func Locales() map[model.Language]string {
	out := make(map[model.Language]string, len(localeTags))
	for lang, tag := range localeTags {
		out[lang] = tag
	}
	return out
}
