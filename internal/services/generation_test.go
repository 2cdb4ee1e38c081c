package services

import (
	"context"
	"strings"
	"testing"
	"github.com/google/uuid"
	"github.com/langfu/langfu-backend/internal/repos"
	"github.com/langfu/langfu-backend/internal/types"
)

func TestFallbackStoryDeterministic(t *testing.T) {
	a := FallbackStory("Essen", "de", "A2")
	b := FallbackStory("Essen", "de", "A2")
	if a.Title != b.Title || a.Content != b.Content || a.Summary != b.Summary {
		t.Fatalf("fallback story must be deterministic")
	}
	if !strings.Contains(a.Content, "Essen") {
		t.Fatalf("fallback content must mention the topic: %q", a.Content)
	}
}

func TestGenerateStoryWithoutUpstream(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	storyService := NewStoryService(db, log, repos.NewStoryRepo(db, log))
	gs := NewGenerationService(db, log, nil, storyService, repos.NewWordRepo(db, log), repos.NewExampleRepo(db, log))
	user := seedUser(t, db)
	ctx := context.Background()

	// With no client wired the template fallback is stored; never an error.
	story, err := gs.GenerateStory(ctx, user.ID, "Reisen", "de", "A1")
	if err != nil {
		t.Fatalf("generation must not fail without upstream: %v", err)
	}
	if story.Topic != "Reisen" || story.Content == "" {
		t.Fatalf("fallback story not stored: %+v", story)
	}
}

func TestGenerateExamplesFallback(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	storyService := NewStoryService(db, log, repos.NewStoryRepo(db, log))
	gs := NewGenerationService(db, log, nil, storyService, repos.NewWordRepo(db, log), repos.NewExampleRepo(db, log))
	ctx := context.Background()

	word := seedWord(t, db, "Apfel", "apple")
	result, err := gs.GenerateExamples(ctx, []uuid.UUID{word.ID})
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	examples := result[word.ID]
	if len(examples) == 0 {
		t.Fatalf("expected fallback example for word")
	}
	if !strings.Contains(examples[0].Sentence, "Apfel") {
		t.Fatalf("fallback sentence must mention the word: %q", examples[0].Sentence)
	}

	var persisted []*types.Example
	if err := db.Where("word_id = ?", word.ID).Find(&persisted).Error; err != nil {
		t.Fatalf("failed to load examples: %v", err)
	}
	if len(persisted) != len(examples) {
		t.Fatalf("examples not persisted: %d != %d", len(persisted), len(examples))
	}
}
