package services

import (
	"memory-game-system/models"

	"gorm.io/gorm"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

// Record appends one immutable GameRecord for the user. Numeric inputs are
// coerced rather than rejected: a negative time or attempt count clamps to
// zero. Max attempts is resolved from the submitted difficulty; the caller is
// responsible for validating difficulty and result membership beforehand.
func (s *GameService) Record(userID uint, difficulty models.Difficulty, result models.Result, timeTaken float64, attemptsUsed int) (*models.GameRecord, error) {
	if timeTaken < 0 {
		timeTaken = 0
	}
	if attemptsUsed < 0 {
		attemptsUsed = 0
	}

	rules := models.DifficultyConfig(difficulty)

	record := &models.GameRecord{
		UserID:       userID,
		Difficulty:   difficulty,
		Result:       result,
		TimeTaken:    timeTaken,
		AttemptsUsed: attemptsUsed,
		MaxAttempts:  rules.MaxAttempts,
	}
	if err := s.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// RecentGames returns the user's latest records, newest first.
func (s *GameService) RecentGames(userID uint, limit int) ([]models.GameRecord, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var records []models.GameRecord
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// GameHistory returns one page of the user's full history plus paging totals.
func (s *GameService) GameHistory(userID uint, page, size int) ([]models.GameRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	if err := s.DB.Model(&models.GameRecord{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.GameRecord
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(size).Offset(offset).
		Find(&records).Error
	return records, total, err
}
