package services

import (
  "context"
  "errors"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/clients/rediscache"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

type ProgressService interface {
  EnsureProgress(ctx context.Context, userID uuid.UUID, language string) error
  ApplySessionResult(ctx context.Context, userID uuid.UUID, language string, wordsLearned, score int) (*types.Progress, error)
  GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Progress, error)
}

type progressService struct {
  db            *gorm.DB
  log           *logger.Logger
  progressRepo  repos.ProgressRepo
  cache         *rediscache.Cache
  now           func() time.Time
}

func NewProgressService(db *gorm.DB, log *logger.Logger, progressRepo repos.ProgressRepo, cache *rediscache.Cache) ProgressService {
  serviceLog := log.With("service", "ProgressService")
  return &progressService{
    db:           db,
    log:          serviceLog,
    progressRepo: progressRepo,
    cache:        cache,
    now:          time.Now,
  }
}

func progressCacheKey(userID uuid.UUID) string {
  return "progress:" + userID.String()
}

// EnsureProgress creates the zeroed (userID, language) rollup if it is
// missing. Re-running it for an existing pair never touches the totals.
func (ps *progressService) EnsureProgress(ctx context.Context, userID uuid.UUID, language string) error {
  if userID == uuid.Nil || language == "" {
    return fmt.Errorf("A user id and language are required to ensure progress")
  }
  if err := ps.progressRepo.EnsureRow(ctx, nil, userID, language); err != nil {
    ps.log.Warn("Failed to ensure progress row", "user_id", userID, "language", language, "error", err)
    return fmt.Errorf("Failed to ensure progress: %w", err)
  }
  ps.cache.Delete(ctx, progressCacheKey(userID))
  return nil
}

// ApplySessionResult bumps the rollup for one finished practice session. The
// increments run as one UPDATE at the storage layer so two concurrent
// sessions both land. The streak is a plain per-session counter.
func (ps *progressService) ApplySessionResult(ctx context.Context, userID uuid.UUID, language string, wordsLearned, score int) (*types.Progress, error) {
  if userID == uuid.Nil || language == "" {
    return nil, fmt.Errorf("A user id and language are required to update progress")
  }
  now := ps.now()
  var result *types.Progress
  err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := ps.progressRepo.EnsureRow(ctx, tx, userID, language); err != nil {
      return fmt.Errorf("Failed to ensure progress row: %w", err)
    }
    if err := ps.progressRepo.ApplyDeltas(ctx, tx, userID, language, wordsLearned, score, now); err != nil {
      return fmt.Errorf("Failed to apply progress deltas: %w", err)
    }
    row, err := ps.progressRepo.GetByUserAndLanguage(ctx, tx, userID, language)
    if err != nil {
      return fmt.Errorf("Failed to reload progress: %w", err)
    }
    result = row
    return nil
  })
  if err != nil {
    ps.log.Warn("Failed to apply session result", "user_id", userID, "language", language, "error", err)
    return nil, err
  }
  ps.cache.Delete(ctx, progressCacheKey(userID))
  return result, nil
}

func (ps *progressService) GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Progress, error) {
  if userID == uuid.Nil {
    return nil, fmt.Errorf("A user id is required to load progress")
  }
  key := progressCacheKey(userID)
  var cached []*types.Progress
  if ps.cache.GetJSON(ctx, key, &cached) {
    return cached, nil
  }
  rows, err := ps.progressRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return []*types.Progress{}, nil
    }
    return nil, fmt.Errorf("Failed to load progress: %w", err)
  }
  ps.cache.SetJSON(ctx, key, rows)
  return rows, nil
}
