package services

import (
	"context"
	"encoding/json"
	"testing"
	pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
	"github.com/langfu/langfu-backend/internal/repos"
	"github.com/langfu/langfu-backend/internal/types"
)

func newVocabulary(t *testing.T) *vocabularyService {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	return NewVocabularyService(db, log, repos.NewVocabularySetRepo(db, log), repos.NewWordRepo(db, log), repos.NewExampleRepo(db, log)).(*vocabularyService)
}

func TestVocabularySetVisibility(t *testing.T) {
	vs := newVocabulary(t)
	owner := seedUser(t, vs.db)
	other := seedUser(t, vs.db)
	ctx := context.Background()

	private, err := vs.Create(ctx, owner.ID, VocabularySetInput{Name: "Private", Language: "de"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	public, err := vs.Create(ctx, owner.ID, VocabularySetInput{Name: "Public", Language: "de", IsPublic: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := vs.GetVisible(ctx, other.ID, private.ID); err != pkgerrors.ErrNotFound {
		t.Fatalf("private set error = %v, want ErrNotFound", err)
	}
	if _, err := vs.GetVisible(ctx, other.ID, public.ID); err != nil {
		t.Fatalf("public set must be visible: %v", err)
	}

	visible, err := vs.ListVisible(ctx, other.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != public.ID {
		t.Fatalf("visible sets = %d, want just the public one", len(visible))
	}
}

func TestVocabularySetImport(t *testing.T) {
	vs := newVocabulary(t)
	owner := seedUser(t, vs.db)
	ctx := context.Background()

	payload := map[string]any{
		"words": []map[string]any{
			{"l2": "Brot", "l1": "bread", "level": "A1", "pos": "noun", "examples": []string{"Das Brot ist frisch."}},
			{"l2": "trinken", "l1": "to drink", "level": "A1", "pos": "verb"},
			{"l2": "", "l1": "skipped"},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	set, err := vs.Create(ctx, owner.ID, VocabularySetInput{Name: "Basics", Language: "de", Data: data})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	count, err := vs.Import(ctx, owner.ID, set.ID)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported = %d, want 2", count)
	}

	var words []*types.Word
	if err := vs.db.Where("language = ?", "de").Find(&words).Error; err != nil {
		t.Fatalf("failed to load words: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("word rows = %d, want 2", len(words))
	}

	var examples []*types.Example
	if err := vs.db.Find(&examples).Error; err != nil {
		t.Fatalf("failed to load examples: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("example rows = %d, want 1", len(examples))
	}
}

func TestVocabularySetImportDoubleEncoded(t *testing.T) {
	vs := newVocabulary(t)
	owner := seedUser(t, vs.db)
	ctx := context.Background()

	inner := `{"words":[{"l2":"Haus","l1":"house"}]}`
	data, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	set, err := vs.Create(ctx, owner.ID, VocabularySetInput{Name: "Legacy", Language: "de", Data: data})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	count, err := vs.Import(ctx, owner.ID, set.ID)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported = %d, want 1", count)
	}
}
