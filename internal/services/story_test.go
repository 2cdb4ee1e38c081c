package services

import (
	"context"
	"strings"
	"testing"
	"github.com/google/uuid"
	pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
	"github.com/langfu/langfu-backend/internal/repos"
	"github.com/langfu/langfu-backend/internal/types"
)

func newStories(t *testing.T) *storyService {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	return NewStoryService(db, log, repos.NewStoryRepo(db, log)).(*storyService)
}

func TestStoryOwnershipHidesForeignRows(t *testing.T) {
	ss := newStories(t)
	owner := seedUser(t, ss.db)
	other := seedUser(t, ss.db)
	ctx := context.Background()

	story, err := ss.Create(ctx, owner.ID, StoryInput{
		Title:    "Der Markt",
		Content:  "Anna geht zum Markt.",
		Language: "de",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A foreign story and a missing story must be indistinguishable.
	if _, err := ss.GetOwned(ctx, other.ID, story.ID); err != pkgerrors.ErrNotFound {
		t.Fatalf("foreign story error = %v, want ErrNotFound", err)
	}
	if _, err := ss.GetOwned(ctx, owner.ID, uuid.New()); err != pkgerrors.ErrNotFound {
		t.Fatalf("missing story error = %v, want ErrNotFound", err)
	}
}

func TestStoryDuplicateCopiesKeywords(t *testing.T) {
	ss := newStories(t)
	owner := seedUser(t, ss.db)
	ctx := context.Background()

	original, err := ss.Create(ctx, owner.ID, StoryInput{
		Title:    "Der Ball",
		Content:  "Der Ball ist rund.",
		Language: "de",
		Keywords: []types.Keyword{{L2: "Ball", L1: "ball", Pos: "noun"}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	copyRow, err := ss.Duplicate(ctx, owner.ID, original.ID)
	if err != nil {
		t.Fatalf("duplicate failed: %v", err)
	}
	if copyRow.ID == original.ID {
		t.Fatalf("duplicate must create a new row")
	}
	if !strings.HasSuffix(copyRow.Title, "(copy)") {
		t.Fatalf("duplicate title = %q", copyRow.Title)
	}
	kws, err := types.ParseKeywords(copyRow.Keywords)
	if err != nil {
		t.Fatalf("keywords undecodable: %v", err)
	}
	if len(kws) != 1 || kws[0].L2 != "Ball" {
		t.Fatalf("keywords not carried over: %+v", kws)
	}
}

func TestStoryHighlighted(t *testing.T) {
	ss := newStories(t)
	owner := seedUser(t, ss.db)
	ctx := context.Background()

	story, err := ss.Create(ctx, owner.ID, StoryInput{
		Title:    "Der Ball",
		Content:  "Der Ball ist rund.",
		Language: "de",
		Keywords: []types.Keyword{{L2: "Ball", L1: "ball"}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	content, err := ss.Highlighted(ctx, owner.ID, story.ID)
	if err != nil {
		t.Fatalf("highlight failed: %v", err)
	}
	if !strings.Contains(content, `data-l1="ball">Ball</span>`) {
		t.Fatalf("keyword not highlighted: %q", content)
	}
}

func TestStoryWordCount(t *testing.T) {
	ss := newStories(t)
	owner := seedUser(t, ss.db)
	ctx := context.Background()

	story, err := ss.Create(ctx, owner.ID, StoryInput{
		Title:    "Kurz",
		Content:  "Eins zwei drei vier.",
		Language: "de",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if story.WordCount != 4 {
		t.Fatalf("word count = %d, want 4", story.WordCount)
	}
}
