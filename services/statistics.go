package services

import (
	"errors"
	"log"
	"math"

	"memory-game-system/models"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// ComputedStats is the derived view of a user's game log. It carries the same
// fields as the cached models.StatisticsSummary row but is never persisted
// itself; Persist copies it into the cache.
type ComputedStats struct {
	TotalGames      int64   `json:"total_games"`
	TotalWins       int64   `json:"total_wins"`
	TotalLosses     int64   `json:"total_losses"`
	AverageTime     float64 `json:"average_time"`
	MostPlayedLevel string  `json:"most_played_level"`
	WinRate         float64 `json:"win_rate"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute rebuilds the user's statistics from the GameRecord log. Average
// time covers winning games only and is 0 when there are no wins; win rate is
// 0 when there are no games. Most-played ties break on difficulty name so the
// result is stable across recomputes.
func (s *StatsService) Compute(userID uint) (*ComputedStats, error) {
	stats := &ComputedStats{MostPlayedLevel: models.MostPlayedNone}

	games := s.DB.Model(&models.GameRecord{}).Where("user_id = ?", userID)

	if err := games.Count(&stats.TotalGames).Error; err != nil {
		return nil, err
	}
	if stats.TotalGames == 0 {
		return stats, nil
	}

	if err := s.DB.Model(&models.GameRecord{}).
		Where("user_id = ? AND result = ?", userID, models.ResultWin).
		Count(&stats.TotalWins).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.GameRecord{}).
		Where("user_id = ? AND result = ?", userID, models.ResultLoss).
		Count(&stats.TotalLosses).Error; err != nil {
		return nil, err
	}

	if stats.TotalWins > 0 {
		var avg float64
		if err := s.DB.Model(&models.GameRecord{}).
			Where("user_id = ? AND result = ?", userID, models.ResultWin).
			Select("COALESCE(AVG(time_taken), 0)").
			Scan(&avg).Error; err != nil {
			return nil, err
		}
		stats.AverageTime = round2(avg)
	}

	var mostPlayed struct {
		Difficulty string
		PlayCount  int64
	}
	if err := s.DB.Model(&models.GameRecord{}).
		Select("difficulty, COUNT(*) AS play_count").
		Where("user_id = ?", userID).
		Group("difficulty").
		Order("play_count DESC, difficulty ASC").
		Limit(1).
		Scan(&mostPlayed).Error; err != nil {
		return nil, err
	}
	if mostPlayed.Difficulty != "" {
		stats.MostPlayedLevel = mostPlayed.Difficulty
	}

	stats.WinRate = round2(float64(stats.TotalWins) / float64(stats.TotalGames) * 100)

	return stats, nil
}

// Persist recomputes the user's statistics and overwrites the cached summary
// row. A user without a summary row is skipped, not an error: summaries are
// provisioned at registration, and the log stays authoritative either way.
func (s *StatsService) Persist(userID uint) error {
	var summary models.StatisticsSummary
	err := s.DB.Where("user_id = ?", userID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	stats, err := s.Compute(userID)
	if err != nil {
		return err
	}

	summary.TotalGames = stats.TotalGames
	summary.TotalWins = stats.TotalWins
	summary.TotalLosses = stats.TotalLosses
	summary.AverageTime = stats.AverageTime
	summary.MostPlayedLevel = stats.MostPlayedLevel
	summary.WinRate = stats.WinRate

	return s.DB.Save(&summary).Error
}

// ReconcileAll rebuilds every user's cached summary from the log. Used by the
// scheduler; failures for one user do not stop the sweep.
func (s *StatsService) ReconcileAll() {
	var userIDs []uint
	if err := s.DB.Model(&models.StatisticsSummary{}).Pluck("user_id", &userIDs).Error; err != nil {
		log.Printf("[Reconcile] failed to list summaries: %v", err)
		return
	}
	for _, id := range userIDs {
		if err := s.Persist(id); err != nil {
			log.Printf("[Reconcile] failed to rebuild stats for user %d: %v", id, err)
		}
	}
}
