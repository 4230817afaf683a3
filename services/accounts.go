package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"memory-game-system/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

// ErrDuplicateAccount reports a username or email already in use.
var ErrDuplicateAccount = errors.New("username or email already exists")

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

// Register creates a user plus their zero-valued statistics summary in one
// transaction, so every account has a summary row from the start.
func (s *AccountService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("username must be 3-50 characters (letters, digits, underscore)")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateAccount
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		summary := &models.StatisticsSummary{
			UserID:          user.ID,
			MostPlayedLevel: models.MostPlayedNone,
		}
		return tx.Create(summary).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the account on success.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	return &user, nil
}
