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

type WordHistoryRepo interface {
  UpsertReview(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, correct bool, now, nextReview time.Time) (*types.WordHistory, error)
  GetByUserAndWordIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID) ([]*types.WordHistory, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WordHistory, error)
  GetDueByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, now time.Time) ([]*types.WordHistory, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type wordHistoryRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewWordHistoryRepo(db *gorm.DB, baseLog *logger.Logger) WordHistoryRepo {
  repoLog := baseLog.With("repo", "WordHistoryRepo")
  return &wordHistoryRepo{db: db, log: repoLog}
}

// UpsertReview records one review outcome for (userID, wordID) in a single
// statement. The increments run inside the conflict clause so concurrent
// reviews of the same pair cannot lose updates. mastery_level and
// correct_count only move on a correct answer; review_count always moves.
func (r *wordHistoryRepo) UpsertReview(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, correct bool, now, nextReview time.Time) (*types.WordHistory, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  correctDelta := 0
  if correct {
    correctDelta = 1
  }

  row := &types.WordHistory{
    ID:             uuid.New(),
    UserID:         userID,
    WordID:         wordID,
    ReviewCount:    1,
    CorrectCount:   correctDelta,
    MasteryLevel:   correctDelta,
    LastReview:     now,
    NextReview:     nextReview,
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
      DoUpdates: clause.Assignments(map[string]interface{}{
        "review_count":   gorm.Expr("review_count + 1"),
        "correct_count":  gorm.Expr("correct_count + ?", correctDelta),
        "mastery_level":  gorm.Expr("mastery_level + ?", correctDelta),
        "last_review":    now,
        "next_review":    nextReview,
        "updated_at":     now,
      }),
    }).
    Create(row).Error; err != nil {
    return nil, err
  }

  var result types.WordHistory
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND word_id = ?", userID, wordID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *wordHistoryRepo) GetByUserAndWordIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, wordIDs []uuid.UUID) ([]*types.WordHistory, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.WordHistory
  if userID == uuid.Nil || len(wordIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND word_id IN ?", userID, wordIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wordHistoryRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WordHistory, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.WordHistory
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wordHistoryRepo) GetDueByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, now time.Time) ([]*types.WordHistory, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.WordHistory
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Preload("Word").
    Preload("Word.Examples").
    Where("user_id = ? AND next_review <= ?", userID, now).
    Order("next_review ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *wordHistoryRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(ids) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Delete(&types.WordHistory{}).Error; err != nil {
    return err
  }
  return nil
}
