package settings

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

type (
	SettingsService interface {
		// GetSettings never fails: a missing or malformed blob silently
		// falls back to the defaults.
		GetSettings(ctx context.Context, userID string) domain.AppSettings

		// SaveSettings overwrites the stored blob wholesale. Persistence is
		// best effort: a write failure is logged and the applied settings
		// are still returned.
		SaveSettings(ctx context.Context, req domain.SaveSettingsRequest, userID string) domain.AppSettings
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) domain.AppSettings {
	setting, err := s.settingsRepository.GetByUserID(ctx, userID)
	if err != nil {
		return domain.DefaultSettings()
	}
	return DecodeSettings(setting.Data)
}

func (s *settingsService) SaveSettings(ctx context.Context, req domain.SaveSettingsRequest, userID string) domain.AppSettings {
	applied := domain.AppSettings{
		Enabled:  req.Enabled,
		Days:     req.Days,
		APIKey:   req.APIKey,
		Language: req.Language,
	}
	if applied.Days < 0 {
		applied.Days = 0
	}
	if applied.Language == "" {
		applied.Language = domain.DefaultSettings().Language
	}

	blob, err := json.Marshal(applied)
	if err != nil {
		log.Printf("Error encoding settings for user %s: %v", userID, err)
		return applied
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		log.Printf("Error parsing user id %s: %v", userID, err)
		return applied
	}

	setting := &entities.UserSetting{
		UserID: userUUID,
		Data:   string(blob),
	}
	if err := s.settingsRepository.Upsert(ctx, setting); err != nil {
		log.Printf("Error saving settings for user %s: %v", userID, err)
	}

	return applied
}

// DecodeSettings parses a stored settings blob. Malformed or incomplete
// data falls back to the defaults rather than erroring.
func DecodeSettings(blob string) domain.AppSettings {
	defaults := domain.DefaultSettings()
	if blob == "" {
		return defaults
	}

	var decoded domain.AppSettings
	if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
		return defaults
	}

	if decoded.Days < 0 {
		decoded.Days = 0
	}
	if decoded.Language != domain.LanguageEnglish && decoded.Language != domain.LanguageTraditional {
		decoded.Language = defaults.Language
	}
	return decoded
}
