package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
)

type ProgressRepo interface {
  EnsureRow(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string) error
  ApplyDeltas(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string, wordsLearned, score int, now time.Time) error
  GetByUserAndLanguage(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string) (*types.Progress, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Progress, error)
}

type progressRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
  repoLog := baseLog.With("repo", "ProgressRepo")
  return &progressRepo{db: db, log: repoLog}
}

// EnsureRow creates a zeroed progress row for (userID, language) if none
// exists. Existing totals are left untouched.
func (r *progressRepo) EnsureRow(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if userID == uuid.Nil || language == "" {
    return nil
  }

  row := &types.Progress{
    ID:       uuid.New(),
    UserID:   userID,
    Language: language,
  }
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "language"}},
      DoNothing: true,
    }).
    Create(row).Error; err != nil {
    return err
  }
  return nil
}

// ApplyDeltas bumps the rollup counters in one UPDATE so that concurrent
// sessions for the same (userID, language) both land. The streak increments
// on every call, with no date-gap check.
func (r *progressRepo) ApplyDeltas(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string, wordsLearned, score int, now time.Time) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Progress{}).
    Where("user_id = ? AND language = ?", userID, language).
    Updates(map[string]interface{}{
      "words_learned":   gorm.Expr("words_learned + ?", wordsLearned),
      "total_score":     gorm.Expr("total_score + ?", score),
      "current_streak":  gorm.Expr("current_streak + 1"),
      "last_practice":   now,
      "updated_at":      now,
    }).Error; err != nil {
    return err
  }
  return nil
}

func (r *progressRepo) GetByUserAndLanguage(ctx context.Context, tx *gorm.DB, userID uuid.UUID, language string) (*types.Progress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Progress
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND language = ?", userID, language).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *progressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Progress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Progress
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("language ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
