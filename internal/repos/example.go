package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
)

type ExampleRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Example) ([]*types.Example, error)
  GetByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uuid.UUID) ([]*types.Example, error)
  FullDeleteByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uuid.UUID) error
}

type exampleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewExampleRepo(db *gorm.DB, baseLog *logger.Logger) ExampleRepo {
  repoLog := baseLog.With("repo", "ExampleRepo")
  return &exampleRepo{db: db, log: repoLog}
}

func (r *exampleRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Example) ([]*types.Example, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Example{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *exampleRepo) GetByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uuid.UUID) ([]*types.Example, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Example
  if len(wordIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("word_id IN ?", wordIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *exampleRepo) FullDeleteByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(wordIDs) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("word_id IN ?", wordIDs).
    Delete(&types.Example{}).Error; err != nil {
    return err
  }
  return nil
}
