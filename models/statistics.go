package models

import "time"

// MostPlayedNone is the sentinel for a user with no games yet.
const MostPlayedNone = "N/A"

// StatisticsSummary caches per-user aggregates derived from the GameRecord
// log. It is never authoritative: every field can be rebuilt from the log,
// and a full recompute overwrites the row after each new record.
type StatisticsSummary struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	TotalGames      int64   `gorm:"default:0" json:"total_games"`
	TotalWins       int64   `gorm:"default:0" json:"total_wins"`
	TotalLosses     int64   `gorm:"default:0" json:"total_losses"`
	AverageTime     float64 `gorm:"default:0" json:"average_time"` // wins only, seconds
	MostPlayedLevel string  `gorm:"type:varchar(16);default:'N/A'" json:"most_played_level"`
	WinRate         float64 `gorm:"default:0" json:"win_rate"` // percentage

	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}
