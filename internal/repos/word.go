package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
)

type WordFilter struct {
  Language  string
  Level     string
  Topic     string
}

type WordRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Word) ([]*types.Word, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Word, error)
  List(ctx context.Context, tx *gorm.DB, filter WordFilter) ([]*types.Word, error)
  Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type wordRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewWordRepo(db *gorm.DB, baseLog *logger.Logger) WordRepo {
  repoLog := baseLog.With("repo", "WordRepo")
  return &wordRepo{db: db, log: repoLog}
}

func (r *wordRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Word) ([]*types.Word, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Word{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *wordRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Word, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Word
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("Examples").
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wordRepo) List(ctx context.Context, tx *gorm.DB, filter WordFilter) ([]*types.Word, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).Preload("Examples")
  if filter.Language != "" {
    query = query.Where("language = ?", filter.Language)
  }
  if filter.Level != "" {
    query = query.Where("level = ?", filter.Level)
  }
  if filter.Topic != "" {
    query = query.Where("topic = ?", filter.Topic)
  }

  var results []*types.Word
  if err := query.Order("frequency_rank ASC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wordRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if id == uuid.Nil {
    return false, nil
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Word{}).
    Where("id = ?", id).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *wordRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.Word{}).Error; err != nil {
    return err
  }
  return nil
}
