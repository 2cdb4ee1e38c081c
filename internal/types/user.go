package types

import (
  "time"
  "github.com/google/uuid"
)

type User struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Email             string          `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password          string          `gorm:"not null;column:password" json:"-"`
  Name              string          `gorm:"column:name" json:"name"`
  CurrentLanguage   string          `gorm:"column:current_language;not null;default:'de'" json:"current_language"`
  DailyGoal         int             `gorm:"column:daily_goal;not null;default:10" json:"daily_goal"`
  CreatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}
