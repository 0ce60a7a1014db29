package model

import (
	"encoding/json"
	"testing"
)

func TestLocalizedGet(t *testing.T) {
	l := Localized{Hindi: "ह", Kannada: "ಕ", Tamil: "த", English: "e"}

	tests := []struct {
		lang Language
		want string
	}{
		{LanguageHindi, "ह"},
		{LanguageKannada, "ಕ"},
		{LanguageTamil, "த"},
		{LanguageEnglish, "e"},
		{Language("unknown"), "e"}, // falls back to English
	}

	for _, tt := range tests {
		if got := l.Get(tt.lang); got != tt.want {
			t.Errorf("Get(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestFill(t *testing.T) {
	l := Fill("same everywhere")
	if !l.Complete() {
		t.Fatal("Fill result not complete")
	}
	for _, lang := range Languages {
		if l.Get(lang) != "same everywhere" {
			t.Errorf("Get(%s) = %q", lang, l.Get(lang))
		}
	}
}

func TestLanguageValid(t *testing.T) {
	for _, lang := range Languages {
		if !lang.Valid() {
			t.Errorf("%s should be valid", lang)
		}
	}
	if Language("english ").Valid() || Language("EN").Valid() {
		t.Error("invalid languages accepted")
	}
}

func TestLocalizedJSONKeys(t *testing.T) {
	data, err := json.Marshal(Localized{Hindi: "a", Kannada: "b", Tamil: "c", English: "d"})
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"hindi", "kannada", "tamil", "english"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing json key %q in %s", key, data)
		}
	}
}
