package types

import (
  "time"
  "github.com/google/uuid"
)

type Word struct {
  ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Language        string      `gorm:"column:language;not null;index:idx_word_lang_level" json:"language"`
  Level           string      `gorm:"column:level;not null;index:idx_word_lang_level" json:"level"`
  Topic           string      `gorm:"column:topic;index" json:"topic"`
  L2              string      `gorm:"column:l2;not null" json:"l2"`
  L1              string      `gorm:"column:l1;not null" json:"l1"`
  Pos             string      `gorm:"column:pos" json:"pos,omitempty"`
  Gender          string      `gorm:"column:gender" json:"gender,omitempty"`
  FrequencyRank   int         `gorm:"column:frequency_rank;not null;default:0" json:"frequency_rank"`
  Difficulty      int         `gorm:"column:difficulty;not null;default:0" json:"difficulty"`
  Examples        []*Example  `gorm:"foreignKey:WordID;references:ID" json:"examples,omitempty"`
  CreatedAt       time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt       time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Word) TableName() string {
  return "word"
}
