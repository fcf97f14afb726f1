package settings

import (
	"KeepEat-Backend/domain"
	"testing"
)

func TestDecodeSettingsEmptyBlob(t *testing.T) {
	got := DecodeSettings("")
	want := domain.DefaultSettings()

	if got != want {
		t.Errorf("DecodeSettings(\"\") = %+v, want %+v", got, want)
	}
}

func TestDecodeSettingsMalformedBlob(t *testing.T) {
	for _, blob := range []string{"not json", "{", "[1,2,3"} {
		got := DecodeSettings(blob)
		if got != domain.DefaultSettings() {
			t.Errorf("DecodeSettings(%q) = %+v, want defaults", blob, got)
		}
	}
}

func TestDecodeSettingsValidBlob(t *testing.T) {
	blob := `{"enabled":false,"days":5,"apiKey":"secret","language":"en"}`

	got := DecodeSettings(blob)

	if got.Enabled {
		t.Error("Enabled = true, want false")
	}
	if got.Days != 5 {
		t.Errorf("Days = %d, want 5", got.Days)
	}
	if got.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", got.APIKey, "secret")
	}
	if got.Language != domain.LanguageEnglish {
		t.Errorf("Language = %q, want %q", got.Language, domain.LanguageEnglish)
	}
}

func TestDecodeSettingsClampsNegativeDays(t *testing.T) {
	got := DecodeSettings(`{"enabled":true,"days":-2,"language":"en"}`)

	if got.Days != 0 {
		t.Errorf("Days = %d, want 0", got.Days)
	}
}

func TestDecodeSettingsUnknownLanguage(t *testing.T) {
	got := DecodeSettings(`{"enabled":true,"days":3,"language":"fr"}`)

	if got.Language != domain.LanguageTraditional {
		t.Errorf("Language = %q, want default %q", got.Language, domain.LanguageTraditional)
	}
}
