package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

// VocabularySetPayload is the nested structure stored in a set's data
// column. Older rows hold it double-encoded as a JSON string, so reads go
// through types.DecodeJSONColumn.
type VocabularySetPayload struct {
  Words []struct {
    L2          string      `json:"l2"`
    L1          string      `json:"l1"`
    Level       string      `json:"level"`
    Topic       string      `json:"topic"`
    Pos         string      `json:"pos"`
    Examples    []string    `json:"examples"`
  } `json:"words"`
}

type VocabularySetInput struct {
  Name          string            `json:"name"`
  Description   string            `json:"description"`
  Language      string            `json:"language"`
  IsPublic      bool              `json:"isPublic"`
  Data          json.RawMessage   `json:"data"`
}

type VocabularyService interface {
  ListVisible(ctx context.Context, userID uuid.UUID) ([]*types.VocabularySet, error)
  Create(ctx context.Context, userID uuid.UUID, input VocabularySetInput) (*types.VocabularySet, error)
  GetVisible(ctx context.Context, userID, setID uuid.UUID) (*types.VocabularySet, error)
  Import(ctx context.Context, userID, setID uuid.UUID) (int, error)
}

type vocabularyService struct {
  db        *gorm.DB
  log       *logger.Logger
  setRepo   repos.VocabularySetRepo
  wordRepo  repos.WordRepo
  exampleRepo repos.ExampleRepo
}

func NewVocabularyService(db *gorm.DB, log *logger.Logger, setRepo repos.VocabularySetRepo, wordRepo repos.WordRepo, exampleRepo repos.ExampleRepo) VocabularyService {
  serviceLog := log.With("service", "VocabularyService")
  return &vocabularyService{db: db, log: serviceLog, setRepo: setRepo, wordRepo: wordRepo, exampleRepo: exampleRepo}
}

func (vs *vocabularyService) ListVisible(ctx context.Context, userID uuid.UUID) ([]*types.VocabularySet, error) {
  rows, err := vs.setRepo.GetVisibleToUser(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list vocabulary sets: %w", err)
  }
  return rows, nil
}

func (vs *vocabularyService) Create(ctx context.Context, userID uuid.UUID, input VocabularySetInput) (*types.VocabularySet, error) {
  if input.Name == "" {
    return nil, pkgerrors.ErrInvalidArgument
  }
  row := &types.VocabularySet{
    ID:           uuid.New(),
    UserID:       userID,
    Name:         input.Name,
    Description:  input.Description,
    Language:     input.Language,
    IsPublic:     input.IsPublic,
    Data:         datatypes.JSON(input.Data),
  }
  if _, err := vs.setRepo.Create(ctx, nil, []*types.VocabularySet{row}); err != nil {
    vs.log.Warn("Failed to create vocabulary set", "user_id", userID, "error", err)
    return nil, fmt.Errorf("Failed to create vocabulary set: %w", err)
  }
  return row, nil
}

// GetVisible loads a set if it belongs to the user or is public; anything
// else is a not-found.
func (vs *vocabularyService) GetVisible(ctx context.Context, userID, setID uuid.UUID) (*types.VocabularySet, error) {
  rows, err := vs.setRepo.GetByIDs(ctx, nil, []uuid.UUID{setID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load vocabulary set: %w", err)
  }
  if len(rows) == 0 {
    return nil, pkgerrors.ErrNotFound
  }
  set := rows[0]
  if set.UserID != userID && !set.IsPublic {
    return nil, pkgerrors.ErrNotFound
  }
  return set, nil
}

// Import materializes a set's payload into word and example rows, all inside
// one transaction.
func (vs *vocabularyService) Import(ctx context.Context, userID, setID uuid.UUID) (int, error) {
  set, err := vs.GetVisible(ctx, userID, setID)
  if err != nil {
    return 0, err
  }

  var payload VocabularySetPayload
  if err := types.DecodeJSONColumn(set.Data, &payload); err != nil {
    vs.log.Warn("Vocabulary set data undecodable", "set_id", setID, "error", err)
    return 0, pkgerrors.ErrInvalidArgument
  }
  if len(payload.Words) == 0 {
    return 0, nil
  }

  words := make([]*types.Word, 0, len(payload.Words))
  examples := make([]*types.Example, 0)
  for _, entry := range payload.Words {
    if entry.L2 == "" || entry.L1 == "" {
      continue
    }
    word := &types.Word{
      ID:        uuid.New(),
      Language:  set.Language,
      Level:     entry.Level,
      Topic:     entry.Topic,
      L2:        entry.L2,
      L1:        entry.L1,
      Pos:       entry.Pos,
    }
    words = append(words, word)
    for _, sentence := range entry.Examples {
      if sentence == "" {
        continue
      }
      examples = append(examples, &types.Example{
        ID:       uuid.New(),
        WordID:   word.ID,
        Sentence: sentence,
      })
    }
  }

  err = vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, wErr := vs.wordRepo.Create(ctx, tx, words); wErr != nil {
      return fmt.Errorf("Failed to import words: %w", wErr)
    }
    if _, eErr := vs.exampleRepo.Create(ctx, tx, examples); eErr != nil {
      return fmt.Errorf("Failed to import examples: %w", eErr)
    }
    return nil
  })
  if err != nil {
    vs.log.Warn("Failed to import vocabulary set", "set_id", setID, "error", err)
    return 0, err
  }
  return len(words), nil
}
