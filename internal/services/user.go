package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

type UserSettingsUpdate struct {
  CurrentLanguage   *string   `json:"currentLanguage,omitempty"`
  DailyGoal         *int      `json:"dailyGoal,omitempty"`
  Name              *string   `json:"name,omitempty"`
}

type UserService interface {
  GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
  UpdateSettings(ctx context.Context, userID uuid.UUID, update UserSettingsUpdate) (*types.User, error)
}

type userService struct {
  db               *gorm.DB
  log              *logger.Logger
  userRepo         repos.UserRepo
  progressService  ProgressService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, progressService ProgressService) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo, progressService: progressService}
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load user: %w", err)
  }
  if len(users) == 0 {
    return nil, pkgerrors.ErrNotFound
  }
  return users[0], nil
}

// UpdateSettings patches the user's preferences. Switching the target
// language also seeds the zeroed progress rollup for that language.
func (us *userService) UpdateSettings(ctx context.Context, userID uuid.UUID, update UserSettingsUpdate) (*types.User, error) {
  fields := map[string]interface{}{}
  if update.CurrentLanguage != nil && *update.CurrentLanguage != "" {
    fields["current_language"] = *update.CurrentLanguage
  }
  if update.DailyGoal != nil && *update.DailyGoal > 0 {
    fields["daily_goal"] = *update.DailyGoal
  }
  if update.Name != nil && *update.Name != "" {
    fields["name"] = *update.Name
  }
  if len(fields) == 0 {
    return nil, pkgerrors.ErrInvalidArgument
  }

  if err := us.userRepo.UpdateSettings(ctx, nil, userID, fields); err != nil {
    us.log.Warn("Failed to update user settings", "user_id", userID, "error", err)
    return nil, fmt.Errorf("Failed to update settings: %w", err)
  }

  if lang, ok := fields["current_language"].(string); ok {
    if pErr := us.progressService.EnsureProgress(ctx, userID, lang); pErr != nil {
      us.log.Warn("Failed to ensure progress after language change", "user_id", userID, "language", lang, "error", pErr)
    }
  }

  return us.GetByID(ctx, userID)
}
