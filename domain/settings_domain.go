package domain

import (
	"errors"
)

const (
	LanguageEnglish     = "en"
	LanguageTraditional = "zh-TW"

	DefaultReminderDays = 3
)

var (
	MessageSuccessGetSettings  = "settings retrieved successfully"
	MessageSuccessSaveSettings = "settings saved successfully"

	MessageFailedGetSettings  = "failed to retrieve settings"
	MessageFailedSaveSettings = "failed to save settings"

	ErrInvalidLanguage = errors.New("unsupported language")
)

type (
	// AppSettings is persisted wholesale as one JSON blob. A missing or
	// malformed blob silently falls back to DefaultSettings().
	AppSettings struct {
		Enabled  bool   `json:"enabled"`
		Days     int    `json:"days"`
		APIKey   string `json:"apiKey,omitempty"`
		Language string `json:"language,omitempty"`
	}

	SaveSettingsRequest struct {
		Enabled  bool   `json:"enabled"`
		Days     int    `json:"days" validate:"min=0"`
		APIKey   string `json:"api_key"`
		Language string `json:"language" validate:"omitempty,oneof=en zh-TW"`
	}
)

func DefaultSettings() AppSettings {
	return AppSettings{
		Enabled:  true,
		Days:     DefaultReminderDays,
		Language: LanguageTraditional,
	}
}
