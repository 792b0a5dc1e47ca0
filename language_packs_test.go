package tinymce

import (
	"io/fs"
	"strings"
	"testing"
)

func TestLanguagePacksFSContainsEnglish(t *testing.T) {
	data, err := fs.ReadFile(LanguagePacksFS(), "en.js")
	if err != nil {
		t.Fatalf("expected english pack to be readable: %v", err)
	}
	if !strings.Contains(string(data), "addI18n") {
		t.Fatalf("expected english pack to register translations")
	}
}

func TestAvailableLanguagesIncludesPirate(t *testing.T) {
	codes, err := AvailableLanguages()
	if err != nil {
		t.Fatalf("available languages: %v", err)
	}
	found := false
	for _, code := range codes {
		if code == "pirate" {
			found = true
		}
		if code == "missing" {
			t.Fatalf("unexpected code %q", code)
		}
	}
	if !found {
		t.Fatalf("expected pirate in %v", codes)
	}
}
