package service

import (
	"dragondex/database"
	"dragondex/database/model"

	"gorm.io/gorm/clause"
)

const keyCatalogSeeded = "catalog_seeded"

// SettingService reads and writes persisted key/value application state.
type SettingService struct{}

func (s *SettingService) getSetting(key string) (string, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Where("key = ?", key).First(setting).Error
	if database.IsNotFound(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setSetting(key, value string) error {
	db := database.GetDB()
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

// IsCatalogSeeded reports whether a full catalog import has completed at
// least once.
func (s *SettingService) IsCatalogSeeded() (bool, error) {
	value, err := s.getSetting(keyCatalogSeeded)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (s *SettingService) SetCatalogSeeded(seeded bool) error {
	value := "false"
	if seeded {
		value = "true"
	}
	return s.setSetting(keyCatalogSeeded, value)
}
