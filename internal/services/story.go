package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/highlight"
  "github.com/langfu/langfu-backend/internal/logger"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

type StoryInput struct {
  Title      string            `json:"title"`
  Topic      string            `json:"topic"`
  Content    string            `json:"content"`
  Language   string            `json:"language"`
  Level      string            `json:"level"`
  Summary    string            `json:"summary"`
  Keywords   []types.Keyword   `json:"keywords"`
}

type StoryService interface {
  ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Story, error)
  Create(ctx context.Context, userID uuid.UUID, input StoryInput) (*types.Story, error)
  GetOwned(ctx context.Context, userID, storyID uuid.UUID) (*types.Story, error)
  Update(ctx context.Context, userID, storyID uuid.UUID, input StoryInput) (*types.Story, error)
  Delete(ctx context.Context, userID, storyID uuid.UUID) error
  Duplicate(ctx context.Context, userID, storyID uuid.UUID) (*types.Story, error)
  Highlighted(ctx context.Context, userID, storyID uuid.UUID) (string, error)
}

type storyService struct {
  db         *gorm.DB
  log        *logger.Logger
  storyRepo  repos.StoryRepo
}

func NewStoryService(db *gorm.DB, log *logger.Logger, storyRepo repos.StoryRepo) StoryService {
  serviceLog := log.With("service", "StoryService")
  return &storyService{db: db, log: serviceLog, storyRepo: storyRepo}
}

func (ss *storyService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Story, error) {
  rows, err := ss.storyRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list stories: %w", err)
  }
  return rows, nil
}

func (ss *storyService) Create(ctx context.Context, userID uuid.UUID, input StoryInput) (*types.Story, error) {
  if input.Title == "" || input.Content == "" || input.Language == "" {
    return nil, pkgerrors.ErrInvalidArgument
  }
  row, err := buildStory(userID, input)
  if err != nil {
    return nil, err
  }
  if _, cErr := ss.storyRepo.Create(ctx, nil, []*types.Story{row}); cErr != nil {
    ss.log.Warn("Failed to create story", "user_id", userID, "error", cErr)
    return nil, fmt.Errorf("Failed to create story: %w", cErr)
  }
  return row, nil
}

// GetOwned loads a story and checks ownership. A missing story and someone
// else's story both come back as ErrNotFound.
func (ss *storyService) GetOwned(ctx context.Context, userID, storyID uuid.UUID) (*types.Story, error) {
  rows, err := ss.storyRepo.GetByIDs(ctx, nil, []uuid.UUID{storyID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load story: %w", err)
  }
  if len(rows) == 0 || rows[0].UserID != userID {
    return nil, pkgerrors.ErrNotFound
  }
  return rows[0], nil
}

func (ss *storyService) Update(ctx context.Context, userID, storyID uuid.UUID, input StoryInput) (*types.Story, error) {
  existing, err := ss.GetOwned(ctx, userID, storyID)
  if err != nil {
    return nil, err
  }
  updated, err := buildStory(userID, input)
  if err != nil {
    return nil, err
  }
  updated.ID = existing.ID
  if uErr := ss.storyRepo.Update(ctx, nil, updated); uErr != nil {
    ss.log.Warn("Failed to update story", "story_id", storyID, "error", uErr)
    return nil, fmt.Errorf("Failed to update story: %w", uErr)
  }
  return ss.GetOwned(ctx, userID, storyID)
}

func (ss *storyService) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
  if _, err := ss.GetOwned(ctx, userID, storyID); err != nil {
    return err
  }
  if err := ss.storyRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{storyID}); err != nil {
    ss.log.Warn("Failed to delete story", "story_id", storyID, "error", err)
    return fmt.Errorf("Failed to delete story: %w", err)
  }
  return nil
}

// Duplicate copies a story together with its vocabulary list in one
// transaction; a failure leaves no partial copy behind.
func (ss *storyService) Duplicate(ctx context.Context, userID, storyID uuid.UUID) (*types.Story, error) {
  original, err := ss.GetOwned(ctx, userID, storyID)
  if err != nil {
    return nil, err
  }
  copyRow := &types.Story{
    ID:         uuid.New(),
    UserID:     userID,
    Title:      original.Title + " (copy)",
    Topic:      original.Topic,
    Content:    original.Content,
    Language:   original.Language,
    Level:      original.Level,
    WordCount:  original.WordCount,
    Summary:    original.Summary,
    Keywords:   original.Keywords,
  }
  err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := ss.storyRepo.Create(ctx, tx, []*types.Story{copyRow}); cErr != nil {
      return fmt.Errorf("Failed to duplicate story: %w", cErr)
    }
    return nil
  })
  if err != nil {
    ss.log.Warn("Failed to duplicate story", "story_id", storyID, "error", err)
    return nil, err
  }
  return copyRow, nil
}

// Highlighted renders the story content with each keyword's occurrences
// wrapped in hover-translation markup.
func (ss *storyService) Highlighted(ctx context.Context, userID, storyID uuid.UUID) (string, error) {
  story, err := ss.GetOwned(ctx, userID, storyID)
  if err != nil {
    return "", err
  }
  kws, err := types.ParseKeywords(story.Keywords)
  if err != nil {
    ss.log.Warn("Story keywords column undecodable, highlighting skipped", "story_id", storyID, "error", err)
    return story.Content, nil
  }
  hkws := make([]highlight.Keyword, 0, len(kws))
  for _, kw := range kws {
    hkws = append(hkws, highlight.Keyword{L2: kw.L2, L1: kw.L1})
  }
  return highlight.Keywords(story.Content, hkws), nil
}

func buildStory(userID uuid.UUID, input StoryInput) (*types.Story, error) {
  rawKeywords, err := json.Marshal(input.Keywords)
  if err != nil {
    return nil, fmt.Errorf("Failed to encode keywords: %w", err)
  }
  return &types.Story{
    ID:         uuid.New(),
    UserID:     userID,
    Title:      input.Title,
    Topic:      input.Topic,
    Content:    input.Content,
    Language:   input.Language,
    Level:      input.Level,
    WordCount:  len(strings.Fields(input.Content)),
    Summary:    input.Summary,
    Keywords:   datatypes.JSON(rawKeywords),
  }, nil
}
