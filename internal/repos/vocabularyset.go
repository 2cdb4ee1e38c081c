package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
)

type VocabularySetRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.VocabularySet) ([]*types.VocabularySet, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.VocabularySet, error)
  GetVisibleToUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.VocabularySet, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type vocabularySetRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewVocabularySetRepo(db *gorm.DB, baseLog *logger.Logger) VocabularySetRepo {
  repoLog := baseLog.With("repo", "VocabularySetRepo")
  return &vocabularySetRepo{db: db, log: repoLog}
}

func (r *vocabularySetRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.VocabularySet) ([]*types.VocabularySet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.VocabularySet{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *vocabularySetRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.VocabularySet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.VocabularySet
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

// GetVisibleToUser returns the user's own sets plus public ones.
func (r *vocabularySetRepo) GetVisibleToUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.VocabularySet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.VocabularySet
  if err := transaction.WithContext(ctx).
    Where("user_id = ? OR is_public = ?", userID, true).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *vocabularySetRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.VocabularySet{}).Error; err != nil {
    return err
  }
  return nil
}
