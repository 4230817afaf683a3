package models

import "time"

// Difficulty identifies one of the fixed board configurations.
type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

// IsValid reports whether d is one of the playable difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBasic, DifficultyMedium, DifficultyAdvanced:
		return true
	}
	return false
}

// Result is the self-reported outcome of a finished game.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
)

func (r Result) IsValid() bool {
	return r == ResultWin || r == ResultLoss
}

// GameRecord is one immutable row per finished game attempt. Rows are only
// ever inserted; history and statistics are both derived from this log.
type GameRecord struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Difficulty   Difficulty `gorm:"type:varchar(16);not null" json:"difficulty"`
	Result       Result     `gorm:"type:varchar(16);not null;check:result IN ('win','loss')" json:"result"`
	TimeTaken    float64    `gorm:"not null" json:"time_taken"`    // seconds
	AttemptsUsed int        `gorm:"not null" json:"attempts_used"` // failed attempts
	MaxAttempts  int        `gorm:"not null" json:"max_attempts"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DifficultyRules are the play limits for one difficulty.
type DifficultyRules struct {
	MaxAttempts      int `json:"max_attempts"`
	TimeLimitSeconds int `json:"time_limit_seconds"`
}

var difficultyRules = map[Difficulty]DifficultyRules{
	DifficultyBasic:    {MaxAttempts: 6, TimeLimitSeconds: 60},
	DifficultyMedium:   {MaxAttempts: 4, TimeLimitSeconds: 60},
	DifficultyAdvanced: {MaxAttempts: 2, TimeLimitSeconds: 60},
}

// DifficultyConfig resolves a difficulty key to its rules. Unknown keys fall
// back to the basic rules so client-forged values never fail the lookup.
func DifficultyConfig(d Difficulty) DifficultyRules {
	if rules, ok := difficultyRules[d]; ok {
		return rules
	}
	return difficultyRules[DifficultyBasic]
}
