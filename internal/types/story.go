package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type Story struct {
  ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User        *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Title       string          `gorm:"column:title;not null" json:"title"`
  Topic       string          `gorm:"column:topic" json:"topic"`
  Content     string          `gorm:"column:content;type:text;not null" json:"content"`
  Language    string          `gorm:"column:language;not null;index" json:"language"`
  Level       string          `gorm:"column:level" json:"level"`
  WordCount   int             `gorm:"column:word_count;not null;default:0" json:"word_count"`
  Summary     string          `gorm:"column:summary;type:text" json:"summary"`
  Keywords    datatypes.JSON  `gorm:"type:jsonb;column:keywords" json:"keywords"`
  CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Story) TableName() string {
  return "story"
}
