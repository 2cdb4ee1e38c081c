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

type NewWordInput struct {
  Language    string      `json:"language"`
  Level       string      `json:"level"`
  Topic       string      `json:"topic"`
  L2          string      `json:"l2"`
  L1          string      `json:"l1"`
  Pos         string      `json:"pos"`
  Gender      string      `json:"gender"`
  Examples    []struct {
    Sentence      string    `json:"sentence"`
    Translation   string    `json:"translation"`
  } `json:"examples"`
}

type WordService interface {
  List(ctx context.Context, filter repos.WordFilter) ([]*types.Word, error)
  Create(ctx context.Context, input NewWordInput) (*types.Word, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Word, error)
}

type wordService struct {
  db           *gorm.DB
  log          *logger.Logger
  wordRepo     repos.WordRepo
  exampleRepo  repos.ExampleRepo
}

func NewWordService(db *gorm.DB, log *logger.Logger, wordRepo repos.WordRepo, exampleRepo repos.ExampleRepo) WordService {
  serviceLog := log.With("service", "WordService")
  return &wordService{db: db, log: serviceLog, wordRepo: wordRepo, exampleRepo: exampleRepo}
}

func (ws *wordService) List(ctx context.Context, filter repos.WordFilter) ([]*types.Word, error) {
  rows, err := ws.wordRepo.List(ctx, nil, filter)
  if err != nil {
    return nil, fmt.Errorf("Failed to list words: %w", err)
  }
  return rows, nil
}

// Create persists a word together with its example sentences in one
// transaction.
func (ws *wordService) Create(ctx context.Context, input NewWordInput) (*types.Word, error) {
  if input.Language == "" || input.L2 == "" || input.L1 == "" {
    return nil, pkgerrors.ErrInvalidArgument
  }

  word := &types.Word{
    ID:        uuid.New(),
    Language:  input.Language,
    Level:     input.Level,
    Topic:     input.Topic,
    L2:        input.L2,
    L1:        input.L1,
    Pos:       input.Pos,
    Gender:    input.Gender,
  }
  err := ws.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := ws.wordRepo.Create(ctx, tx, []*types.Word{word}); cErr != nil {
      return fmt.Errorf("Failed to create word: %w", cErr)
    }
    examples := make([]*types.Example, 0, len(input.Examples))
    for _, ex := range input.Examples {
      if ex.Sentence == "" {
        continue
      }
      examples = append(examples, &types.Example{
        ID:          uuid.New(),
        WordID:      word.ID,
        Sentence:    ex.Sentence,
        Translation: ex.Translation,
      })
    }
    if _, eErr := ws.exampleRepo.Create(ctx, tx, examples); eErr != nil {
      return fmt.Errorf("Failed to create examples: %w", eErr)
    }
    return nil
  })
  if err != nil {
    ws.log.Warn("Failed to create word", "l2", input.L2, "error", err)
    return nil, err
  }
  return ws.GetByID(ctx, word.ID)
}

func (ws *wordService) GetByID(ctx context.Context, id uuid.UUID) (*types.Word, error) {
  rows, err := ws.wordRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
  if err != nil {
    return nil, fmt.Errorf("Failed to load word: %w", err)
  }
  if len(rows) == 0 {
    return nil, pkgerrors.ErrNotFound
  }
  return rows[0], nil
}
