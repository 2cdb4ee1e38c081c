package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

// ExtractedIDPrefix marks word identifiers that were pulled out of story
// text on the client but never persisted. They cannot be tracked and are
// filtered out of batch requests.
const ExtractedIDPrefix = "extracted-"

// BatchReviewItem is one entry of a track-batch request.
type BatchReviewItem struct {
  ID            string    `json:"id"`
  IsExtracted   bool      `json:"isExtracted,omitempty"`
}

type TrackerService interface {
  RecordReview(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*types.WordHistory, error)
  RecordReviewBatch(ctx context.Context, userID uuid.UUID, items []BatchReviewItem, correct bool) (int, error)
  DueWords(ctx context.Context, userID uuid.UUID) ([]*types.WordHistory, error)
}

type trackerService struct {
  db               *gorm.DB
  log              *logger.Logger
  wordHistoryRepo  repos.WordHistoryRepo
  now              func() time.Time
}

func NewTrackerService(db *gorm.DB, log *logger.Logger, wordHistoryRepo repos.WordHistoryRepo) TrackerService {
  serviceLog := log.With("service", "TrackerService")
  return &trackerService{
    db:              db,
    log:             serviceLog,
    wordHistoryRepo: wordHistoryRepo,
    now:             time.Now,
  }
}

// RecordReview upserts the (userID, wordID) ledger entry. A first review
// seeds the counters, later reviews increment them; the next due date always
// comes from the fixed-interval scheduler. A review of a word that does not
// exist fails on the word FK and is surfaced as a plain error.
func (ts *trackerService) RecordReview(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*types.WordHistory, error) {
  if userID == uuid.Nil || wordID == uuid.Nil {
    return nil, fmt.Errorf("A user id and word id are required to track a review")
  }
  now := ts.now()
  nextReview := ComputeNextReview(correct, now)
  row, err := ts.wordHistoryRepo.UpsertReview(ctx, nil, userID, wordID, correct, now, nextReview)
  if err != nil {
    ts.log.Warn("Failed to upsert word review", "user_id", userID, "word_id", wordID, "error", err)
    return nil, fmt.Errorf("Failed to record review: %w", err)
  }
  return row, nil
}

// RecordReviewBatch applies one outcome to every reviewable item in a single
// transaction. Extracted (unpersisted) identifiers are dropped before any
// write and do not count toward the returned total.
func (ts *trackerService) RecordReviewBatch(ctx context.Context, userID uuid.UUID, items []BatchReviewItem, correct bool) (int, error) {
  if userID == uuid.Nil {
    return 0, fmt.Errorf("A user id is required to track reviews")
  }

  wordIDs := make([]uuid.UUID, 0, len(items))
  for _, item := range items {
    if item.IsExtracted || strings.HasPrefix(item.ID, ExtractedIDPrefix) {
      continue
    }
    wordID, err := uuid.Parse(item.ID)
    if err != nil {
      continue
    }
    wordIDs = append(wordIDs, wordID)
  }
  if len(wordIDs) == 0 {
    return 0, nil
  }

  now := ts.now()
  nextReview := ComputeNextReview(correct, now)
  tracked := 0
  err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    for _, wordID := range wordIDs {
      if _, uErr := ts.wordHistoryRepo.UpsertReview(ctx, tx, userID, wordID, correct, now, nextReview); uErr != nil {
        return fmt.Errorf("Failed to record review for word %s: %w", wordID, uErr)
      }
      tracked++
    }
    return nil
  })
  if err != nil {
    ts.log.Warn("Failed to record review batch", "user_id", userID, "error", err)
    return 0, err
  }
  return tracked, nil
}

func (ts *trackerService) DueWords(ctx context.Context, userID uuid.UUID) ([]*types.WordHistory, error) {
  rows, err := ts.wordHistoryRepo.GetDueByUserID(ctx, nil, userID, ts.now())
  if err != nil {
    return nil, fmt.Errorf("Failed to load due words: %w", err)
  }
  return rows, nil
}
