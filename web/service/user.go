package service

import (
	"errors"

	"dragondex/database"
	"dragondex/database/model"
	"dragondex/logger"
	"dragondex/util/crypto"

	"gorm.io/gorm"
)

// Credentials is the minimal view handed to the login check: the stored
// hash, never the raw password.
type Credentials struct {
	Username     string
	PasswordHash string
}

// UserService handles registration, credential checks, and the favorites
// set of a user.
type UserService struct{}

// Register creates a new account. The raw password is bcrypt-hashed before
// it ever reaches the database.
func (s *UserService) Register(username, password, confirm string) error {
	db := database.GetDB()

	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Create(&model.User{Username: username, Password: hash}).Error
}

// GetCredentials returns the credential view for a username.
func (s *UserService) GetCredentials(username string) (*Credentials, error) {
	user, err := s.findByUsername(database.GetDB(), username)
	if err != nil {
		return nil, err
	}
	return &Credentials{Username: user.Username, PasswordHash: user.Password}, nil
}

// CheckUser verifies a submitted password. Unknown user and wrong password
// collapse into the same nil result so login failures don't reveal which
// usernames exist.
func (s *UserService) CheckUser(username, password string) *model.User {
	user, err := s.findByUsername(database.GetDB(), username)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	creds := Credentials{Username: user.Username, PasswordHash: user.Password}
	if !crypto.CheckPasswordHash(creds.PasswordHash, password) {
		return nil
	}
	return user
}

// IsFavorite reports whether the character is in the user's favorites.
func (s *UserService) IsFavorite(username string, characterId int) (bool, error) {
	user, err := s.findWithFavorites(database.GetDB(), username)
	if err != nil {
		return false, err
	}
	for _, c := range user.Favorites {
		if c.Id == characterId {
			return true, nil
		}
	}
	return false, nil
}

// AddFavorite puts a character into the user's favorites set. The user is
// loaded together with the full favorites collection and mutated inside one
// transaction so the stored set and the loaded snapshot cannot diverge.
// Adding an already-present favorite is a no-op.
func (s *UserService) AddFavorite(username string, characterId int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := s.findWithFavorites(tx, username)
		if err != nil {
			return err
		}

		character := &model.Character{}
		if err := tx.First(character, characterId).Error; err != nil {
			if database.IsNotFound(err) {
				return ErrCharacterNotFound
			}
			return err
		}

		return tx.Model(user).Association("Favorites").Append(character)
	})
}

// RemoveFavorite drops a character from the user's favorites set, a no-op
// when it was never favorited.
func (s *UserService) RemoveFavorite(username string, characterId int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := s.findWithFavorites(tx, username)
		if err != nil {
			return err
		}
		return tx.Model(user).Association("Favorites").Delete(&model.Character{Id: characterId})
	})
}

// GetFavorites returns the user's current favorites. Iteration order is
// not guaranteed. Join rows whose character no longer exists yield no
// entry.
func (s *UserService) GetFavorites(username string) ([]model.Character, error) {
	user, err := s.findWithFavorites(database.GetDB(), username)
	if err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (s *UserService) findByUsername(db *gorm.DB, username string) (*model.User, error) {
	user := &model.User{}
	err := db.Where("username = ?", username).First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) findWithFavorites(db *gorm.DB, username string) (*model.User, error) {
	user := &model.User{}
	err := db.Preload("Favorites").Where("username = ?", username).First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}
