package settings

import (
	"KeepEat-Backend/entities"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SettingsRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.UserSetting, error)
		Upsert(ctx context.Context, setting *entities.UserSetting) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (*entities.UserSetting, error) {
	var setting entities.UserSetting
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, setting *entities.UserSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(setting).Error
}
