package types

import (
  "time"
  "github.com/google/uuid"
)

type Example struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  WordID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"word_id"`
  Word          *Word       `gorm:"constraint:OnDelete:CASCADE;foreignKey:WordID;references:ID" json:"word,omitempty"`
  Sentence      string      `gorm:"column:sentence;not null" json:"sentence"`
  Translation   string      `gorm:"column:translation" json:"translation,omitempty"`
  CreatedAt     time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Example) TableName() string {
  return "example"
}
