package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

type VocabularySet struct {
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User          *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Name          string          `gorm:"column:name;not null" json:"name"`
  Description   string          `gorm:"column:description" json:"description,omitempty"`
  Language      string          `gorm:"column:language;index" json:"language"`
  IsPublic      bool            `gorm:"column:is_public;not null;default:false" json:"is_public"`
  Data          datatypes.JSON  `gorm:"type:jsonb;column:data" json:"data"`
  CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (VocabularySet) TableName() string {
  return "vocabulary_set"
}
