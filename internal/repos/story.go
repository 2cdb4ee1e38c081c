package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
)

type StoryRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Story) ([]*types.Story, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Story, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Story, error)
  Update(ctx context.Context, tx *gorm.DB, row *types.Story) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type storyRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStoryRepo(db *gorm.DB, baseLog *logger.Logger) StoryRepo {
  repoLog := baseLog.With("repo", "StoryRepo")
  return &storyRepo{db: db, log: repoLog}
}

func (r *storyRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Story) ([]*types.Story, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Story{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *storyRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Story, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Story
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *storyRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Story, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Story
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *storyRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Story) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil || row.ID == uuid.Nil {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Story{}).
    Where("id = ?", row.ID).
    Updates(row).Error; err != nil {
    return err
  }
  return nil
}

func (r *storyRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.Story{}).Error; err != nil {
    return err
  }
  return nil
}
