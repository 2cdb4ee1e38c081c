package types

import (
  "time"
  "github.com/google/uuid"
)

// WordHistory is the per-user-per-word review ledger. review_count,
// correct_count and mastery_level only ever grow; mastery is not
// decremented on a failed review.
type WordHistory struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  UserID        uuid.UUID   `gorm:"type:uuid;not null;index:idx_user_word,unique" json:"user_id"`
  User          *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  WordID        uuid.UUID   `gorm:"type:uuid;not null;index:idx_user_word,unique" json:"word_id"`
  Word          *Word       `gorm:"constraint:OnDelete:CASCADE;foreignKey:WordID;references:ID" json:"word,omitempty"`
  ReviewCount   int         `gorm:"column:review_count;not null;default:0" json:"review_count"`
  CorrectCount  int         `gorm:"column:correct_count;not null;default:0" json:"correct_count"`
  MasteryLevel  int         `gorm:"column:mastery_level;not null;default:0" json:"mastery_level"`
  LastReview    time.Time   `gorm:"column:last_review" json:"last_review"`
  NextReview    time.Time   `gorm:"column:next_review;index" json:"next_review"`
  CreatedAt     time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (WordHistory) TableName() string {
  return "word_history"
}
