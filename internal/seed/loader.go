package seed

import (
  "context"
  "fmt"
  "os"
  "github.com/google/uuid"
  "gopkg.in/yaml.v3"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

// File is the on-disk layout of a vocabulary seed file.
type File struct {
  Language  string      `yaml:"language"`
  Words     []struct {
    L2          string      `yaml:"l2"`
    L1          string      `yaml:"l1"`
    Level       string      `yaml:"level"`
    Topic       string      `yaml:"topic"`
    Pos         string      `yaml:"pos"`
    Gender      string      `yaml:"gender"`
    Examples    []struct {
      Sentence      string    `yaml:"sentence"`
      Translation   string    `yaml:"translation"`
    } `yaml:"examples"`
  } `yaml:"words"`
}

// Load reads a YAML vocabulary file and inserts any words not already
// present for that language. Intended for bootstrap on a fresh database.
func Load(ctx context.Context, path string, log *logger.Logger, wordRepo repos.WordRepo, exampleRepo repos.ExampleRepo) (int, error) {
  raw, err := os.ReadFile(path)
  if err != nil {
    return 0, fmt.Errorf("Failed to read seed file: %w", err)
  }
  var file File
  if err := yaml.Unmarshal(raw, &file); err != nil {
    return 0, fmt.Errorf("Failed to parse seed file: %w", err)
  }
  if file.Language == "" {
    return 0, fmt.Errorf("Seed file missing language")
  }

  existing, err := wordRepo.List(ctx, nil, repos.WordFilter{Language: file.Language})
  if err != nil {
    return 0, fmt.Errorf("Failed to check existing words: %w", err)
  }
  present := make(map[string]struct{}, len(existing))
  for _, word := range existing {
    present[word.L2] = struct{}{}
  }

  words := make([]*types.Word, 0, len(file.Words))
  examples := make([]*types.Example, 0)
  for _, entry := range file.Words {
    if entry.L2 == "" || entry.L1 == "" {
      continue
    }
    if _, ok := present[entry.L2]; ok {
      continue
    }
    word := &types.Word{
      ID:        uuid.New(),
      Language:  file.Language,
      Level:     entry.Level,
      Topic:     entry.Topic,
      L2:        entry.L2,
      L1:        entry.L1,
      Pos:       entry.Pos,
      Gender:    entry.Gender,
    }
    words = append(words, word)
    for _, ex := range entry.Examples {
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
  }

  if len(words) == 0 {
    log.Info("Seed file contained no new words", "path", path)
    return 0, nil
  }
  if _, err := wordRepo.Create(ctx, nil, words); err != nil {
    return 0, fmt.Errorf("Failed to insert seed words: %w", err)
  }
  if _, err := exampleRepo.Create(ctx, nil, examples); err != nil {
    return 0, fmt.Errorf("Failed to insert seed examples: %w", err)
  }
  log.Info("Seeded vocabulary", "path", path, "words", len(words))
  return len(words), nil
}
