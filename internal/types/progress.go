package types

import (
  "time"
  "github.com/google/uuid"
)

// Progress is the per-user-per-language rollup. current_streak is bumped on
// every completed session regardless of elapsed time since last_practice.
type Progress struct {
  ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  UserID         uuid.UUID   `gorm:"type:uuid;not null;index:idx_user_language,unique" json:"user_id"`
  User           *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Language       string      `gorm:"column:language;not null;index:idx_user_language,unique" json:"language"`
  WordsLearned   int         `gorm:"column:words_learned;not null;default:0" json:"words_learned"`
  TotalScore     int         `gorm:"column:total_score;not null;default:0" json:"total_score"`
  CurrentStreak  int         `gorm:"column:current_streak;not null;default:0" json:"current_streak"`
  LastPractice   *time.Time  `gorm:"column:last_practice" json:"last_practice,omitempty"`
  CreatedAt      time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt      time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Progress) TableName() string {
  return "progress"
}
