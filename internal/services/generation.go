package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/logger"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/types"
)

const exampleGenConcurrency = 4

type GenerationService interface {
  GenerateStory(ctx context.Context, userID uuid.UUID, topic, language, level string) (*types.Story, error)
  GenerateExamples(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]*types.Example, error)
}

type generationService struct {
  db            *gorm.DB
  log           *logger.Logger
  textGen       TextGenClient
  storyService  StoryService
  wordRepo      repos.WordRepo
  exampleRepo   repos.ExampleRepo
}

func NewGenerationService(
  db *gorm.DB,
  log *logger.Logger,
  textGen TextGenClient,
  storyService StoryService,
  wordRepo repos.WordRepo,
  exampleRepo repos.ExampleRepo,
) GenerationService {
  serviceLog := log.With("service", "GenerationService")
  return &generationService{
    db:           db,
    log:          serviceLog,
    textGen:      textGen,
    storyService: storyService,
    wordRepo:     wordRepo,
    exampleRepo:  exampleRepo,
  }
}

// GenerateStory asks the upstream generator for a short narrative with a
// vocabulary list and stores it for the user. Upstream failures are absorbed:
// the caller always receives a story, template-built if need be.
func (gs *generationService) GenerateStory(ctx context.Context, userID uuid.UUID, topic, language, level string) (*types.Story, error) {
  if topic == "" || language == "" {
    return nil, pkgerrors.ErrInvalidArgument
  }

  input := gs.storyFromUpstream(ctx, topic, language, level)
  story, err := gs.storyService.Create(ctx, userID, input)
  if err != nil {
    return nil, fmt.Errorf("Failed to store generated story: %w", err)
  }
  return story, nil
}

func (gs *generationService) storyFromUpstream(ctx context.Context, topic, language, level string) StoryInput {
  fallback := FallbackStory(topic, language, level)
  if gs.textGen == nil {
    return fallback
  }

  system := fmt.Sprintf("You write short stories for %s learners at CEFR level %s. Reply with a JSON object holding title, content, summary and keywords (array of {l2, l1, pos}).", language, level)
  user := fmt.Sprintf("Write a story about %q.", topic)
  parsed, err := gs.textGen.GenerateJSON(ctx, system, user)
  if err != nil {
    gs.log.Warn("Story generation failed upstream, using fallback", "topic", topic, "error", err)
    return fallback
  }

  input := fallback
  if title, ok := parsed["title"].(string); ok && title != "" {
    input.Title = title
  }
  if content, ok := parsed["content"].(string); ok && content != "" {
    input.Content = content
  }
  if summary, ok := parsed["summary"].(string); ok && summary != "" {
    input.Summary = summary
  }
  if rawKws, ok := parsed["keywords"].([]any); ok {
    kws := make([]types.Keyword, 0, len(rawKws))
    for _, rawKw := range rawKws {
      obj, ok := rawKw.(map[string]any)
      if !ok {
        continue
      }
      kw := types.Keyword{}
      if v, ok := obj["l2"].(string); ok {
        kw.L2 = v
      }
      if v, ok := obj["l1"].(string); ok {
        kw.L1 = v
      }
      if v, ok := obj["pos"].(string); ok {
        kw.Pos = v
      }
      if kw.L2 != "" {
        kws = append(kws, kw)
      }
    }
    if len(kws) > 0 {
      input.Keywords = kws
    }
  }
  return input
}

// GenerateExamples produces example sentences for each word, fanning the
// upstream calls out concurrently. A word whose upstream call fails gets a
// deterministic template sentence instead; the whole batch is persisted in
// one transaction.
func (gs *generationService) GenerateExamples(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]*types.Example, error) {
  words, err := gs.wordRepo.GetByIDs(ctx, nil, wordIDs)
  if err != nil {
    return nil, fmt.Errorf("Failed to load words: %w", err)
  }
  if len(words) == 0 {
    return map[uuid.UUID][]*types.Example{}, nil
  }

  generated := make([][]*types.Example, len(words))
  g, gctx := errgroup.WithContext(ctx)
  g.SetLimit(exampleGenConcurrency)
  for i, word := range words {
    g.Go(func() error {
      generated[i] = gs.examplesForWord(gctx, word)
      return nil
    })
  }
  if err := g.Wait(); err != nil {
    return nil, err
  }

  flat := make([]*types.Example, 0)
  result := make(map[uuid.UUID][]*types.Example, len(words))
  for i, word := range words {
    result[word.ID] = generated[i]
    flat = append(flat, generated[i]...)
  }

  err = gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := gs.exampleRepo.Create(ctx, tx, flat); cErr != nil {
      return fmt.Errorf("Failed to store generated examples: %w", cErr)
    }
    return nil
  })
  if err != nil {
    gs.log.Warn("Failed to persist generated examples", "error", err)
    return nil, err
  }
  return result, nil
}

func (gs *generationService) examplesForWord(ctx context.Context, word *types.Word) []*types.Example {
  fallback := []*types.Example{{
    ID:          uuid.New(),
    WordID:      word.ID,
    Sentence:    FallbackExampleSentence(word),
    Translation: FallbackExampleTranslation(word),
  }}
  if gs.textGen == nil {
    return fallback
  }

  system := fmt.Sprintf("You write example sentences for %s learners. Reply with a JSON object: {\"sentences\": [{\"sentence\": ..., \"translation\": ...}]}.", word.Language)
  user := fmt.Sprintf("Write two short example sentences using the word %q (%s).", word.L2, word.L1)
  parsed, err := gs.textGen.GenerateJSON(ctx, system, user)
  if err != nil {
    gs.log.Warn("Example generation failed upstream, using fallback", "word_id", word.ID, "error", err)
    return fallback
  }
  rawSentences, ok := parsed["sentences"].([]any)
  if !ok || len(rawSentences) == 0 {
    return fallback
  }
  examples := make([]*types.Example, 0, len(rawSentences))
  for _, raw := range rawSentences {
    obj, ok := raw.(map[string]any)
    if !ok {
      continue
    }
    sentence, _ := obj["sentence"].(string)
    if sentence == "" {
      continue
    }
    translation, _ := obj["translation"].(string)
    examples = append(examples, &types.Example{
      ID:          uuid.New(),
      WordID:      word.ID,
      Sentence:    sentence,
      Translation: translation,
    })
  }
  if len(examples) == 0 {
    return fallback
  }
  return examples
}

// FallbackStory is the deterministic template used when the upstream
// generator is unavailable.
func FallbackStory(topic, language, level string) StoryInput {
  content := fmt.Sprintf("Heute lernen wir über %s. Das Thema %s ist interessant. Viele Wörter über %s sind nützlich.", topic, topic, topic)
  return StoryInput{
    Title:    fmt.Sprintf("Eine Geschichte über %s", topic),
    Topic:    topic,
    Content:  content,
    Language: language,
    Level:    level,
    Summary:  fmt.Sprintf("A short practice text about %s.", topic),
    Keywords: []types.Keyword{},
  }
}

func FallbackExampleSentence(word *types.Word) string {
  return fmt.Sprintf("Das Wort %q ist wichtig.", word.L2)
}

func FallbackExampleTranslation(word *types.Word) string {
  return fmt.Sprintf("The word %q (%s) is important.", word.L2, word.L1)
}
