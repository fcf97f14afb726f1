package locales

import (
	"strings"
	"testing"
)

func TestGetKnownLanguages(t *testing.T) {
	en := Get("en")
	if en.DigestSubject == "" {
		t.Error("English digest subject is empty")
	}

	tw := Get("zh-TW")
	if tw.DigestSubject == "" {
		t.Error("Traditional Chinese digest subject is empty")
	}
	if tw.DigestSubject == en.DigestSubject {
		t.Error("zh-TW table matches English table")
	}
}

func TestGetUnknownLanguageFallsBackToEnglish(t *testing.T) {
	if Get("fr") != Get("en") {
		t.Error("unknown language did not fall back to English")
	}
}

func TestFormat(t *testing.T) {
	got := Format("{name} expires on {date}", map[string]string{
		"name": "Milk",
		"date": "2025-03-15",
	})
	want := "Milk expires on 2025-03-15"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	got := Format("{name} and {other}", map[string]string{"name": "Milk"})
	if !strings.Contains(got, "{other}") {
		t.Errorf("Format = %q, expected untouched {other}", got)
	}
}
