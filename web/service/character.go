package service

import (
	"context"
	"fmt"
	"strings"

	"dragondex/config"
	"dragondex/database"
	"dragondex/database/model"
	"dragondex/dragonapi"
	"dragondex/logger"

	"gorm.io/gorm/clause"
)

// CharacterService serves catalog reads and owns the import from the
// external Dragon Ball API.
type CharacterService struct {
	settingService SettingService
}

// GetAll returns the full catalog. The first read after a fresh install
// (or after an aborted import) runs the import before returning.
func (s *CharacterService) GetAll() ([]model.Character, error) {
	seeded, err := s.settingService.IsCatalogSeeded()
	if err != nil {
		return nil, err
	}
	if !seeded {
		if err := s.ImportCatalog(context.Background()); err != nil {
			return nil, err
		}
	}

	db := database.GetDB()
	var characters []model.Character
	if err := db.Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// GetByID returns a single character or ErrCharacterNotFound.
func (s *CharacterService) GetByID(id int) (*model.Character, error) {
	db := database.GetDB()
	character := &model.Character{}
	err := db.First(character, id).Error
	if database.IsNotFound(err) {
		return nil, ErrCharacterNotFound
	} else if err != nil {
		return nil, err
	}
	return character, nil
}

// SearchByName filters the full catalog by a case-insensitive name
// substring. The filter runs in memory over GetAll.
func (s *CharacterService) SearchByName(name string) ([]model.Character, error) {
	return s.search(func(c model.Character) string { return c.Name }, name)
}

// SearchByRace filters the full catalog by a case-insensitive race
// substring.
func (s *CharacterService) SearchByRace(race string) ([]model.Character, error) {
	return s.search(func(c model.Character) string { return c.Race }, race)
}

func (s *CharacterService) search(field func(model.Character) string, sub string) ([]model.Character, error) {
	characters, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	sub = strings.ToLower(sub)
	matches := make([]model.Character, 0)
	for _, c := range characters {
		if strings.Contains(strings.ToLower(field(c)), sub) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// ImportCatalog walks the external API page by page and upserts every
// character by its upstream id. The seeded marker is written only after a
// complete pass, so an aborted import is retried on the next catalog read
// instead of leaving a partial catalog behind for good.
func (s *CharacterService) ImportCatalog(ctx context.Context) error {
	client := dragonapi.NewClient(config.GetCatalogAPIURL())
	db := database.GetDB()

	total := 0
	err := client.ForEachPage(ctx, func(items []dragonapi.Character) error {
		for _, item := range items {
			character := &model.Character{
				Id:          item.Id,
				Name:        item.Name,
				Ki:          item.Ki,
				MaxKi:       item.MaxKi,
				Race:        item.Race,
				Gender:      item.Gender,
				Description: item.Description,
				Image:       item.Image,
				Affiliation: item.Affiliation,
				DeletedAt:   item.DeletedAt,
			}
			if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(character).Error; err != nil {
				return err
			}
			total++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("catalog import: %w", err)
	}

	if err := s.settingService.SetCatalogSeeded(true); err != nil {
		return err
	}
	logger.Infof("catalog import finished, %d characters", total)
	return nil
}
