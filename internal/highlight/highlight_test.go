package highlight

import (
	"strings"
	"testing"
)

func TestKeywordsSingleMatch(t *testing.T) {
	out := Keywords("Der Ball ist rund.", []Keyword{{L2: "Ball", L1: "ball"}})
	if got := strings.Count(out, `<span class="keyword"`); got != 1 {
		t.Fatalf("expected 1 highlighted occurrence, got %d in %q", got, out)
	}
	if !strings.Contains(out, `data-l1="ball">Ball</span>`) {
		t.Fatalf("expected Ball wrapped with translation, got %q", out)
	}
	if strings.Contains(out, "<span") && !strings.Contains(out, "rund.") {
		t.Fatalf("expected rund to stay unmarked, got %q", out)
	}
	if strings.Contains(out, `>rund<`) {
		t.Fatalf("rund must not be highlighted: %q", out)
	}
}

func TestKeywordsLongerWins(t *testing.T) {
	out := Keywords("Der Ball ist rund.", []Keyword{
		{L2: "Bal", L1: "short"},
		{L2: "Ball", L1: "ball"},
	})
	if got := strings.Count(out, `<span class="keyword"`); got != 1 {
		t.Fatalf("expected exactly 1 highlight, got %d in %q", got, out)
	}
	if !strings.Contains(out, `data-l1="ball"`) {
		t.Fatalf("expected the longer keyword to win, got %q", out)
	}
	if strings.Contains(out, `data-l1="short"`) {
		t.Fatalf("short keyword must not match inside the longer one: %q", out)
	}
}

func TestKeywordsAbsentKeyword(t *testing.T) {
	text := "Der Ball ist rund."
	out := Keywords(text, []Keyword{{L2: "Katze", L1: "cat"}})
	if out != text {
		t.Fatalf("absent keyword must leave text unchanged, got %q", out)
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	out := Keywords("ball und Ball", []Keyword{{L2: "Ball", L1: "ball"}})
	if got := strings.Count(out, `<span class="keyword"`); got != 2 {
		t.Fatalf("expected both case variants highlighted, got %d in %q", got, out)
	}
	if !strings.Contains(out, ">ball</span>") || !strings.Contains(out, ">Ball</span>") {
		t.Fatalf("expected original casing preserved, got %q", out)
	}
}

func TestKeywordsEscapesMetacharacters(t *testing.T) {
	out := Keywords("was kostet das? viel", []Keyword{{L2: "das?", L1: "that"}})
	if !strings.Contains(out, `>das?</span>`) {
		t.Fatalf("expected literal match of metacharacter keyword, got %q", out)
	}
}

func TestKeywordsPunctuationEdges(t *testing.T) {
	// A keyword ending in punctuation still matches only its literal form;
	// the bare word without the trailing punctuation stays untouched.
	out := Keywords("das Brot, dann das?", []Keyword{{L2: "das?", L1: "that"}})
	if got := strings.Count(out, `<span class="keyword"`); got != 1 {
		t.Fatalf("expected exactly 1 highlight, got %d in %q", got, out)
	}
	if !strings.HasSuffix(out, `>das?</span>`) {
		t.Fatalf("expected the trailing das? wrapped, got %q", out)
	}
	if !strings.HasPrefix(out, "das Brot,") {
		t.Fatalf("bare das must stay unmarked, got %q", out)
	}

	// Punctuation at the front works the same way.
	out = Keywords("er fragte: ¿qué tal?", []Keyword{{L2: "¿qué", L1: "what"}})
	if !strings.Contains(out, `>¿qué</span>`) {
		t.Fatalf("expected leading-punctuation keyword wrapped, got %q", out)
	}
}

func TestKeywordsNoRematchOfMarkup(t *testing.T) {
	// "span" as a keyword must not match the markup produced for "Ball".
	out := Keywords("Der Ball ist rund.", []Keyword{
		{L2: "Ball", L1: "ball"},
		{L2: "span", L1: "nope"},
	})
	if strings.Contains(out, `data-l1="nope"`) {
		t.Fatalf("keyword matched earlier substitution markup: %q", out)
	}
}

func TestKeywordsEmptyInputs(t *testing.T) {
	if out := Keywords("", []Keyword{{L2: "Ball", L1: "ball"}}); out != "" {
		t.Fatalf("empty text must stay empty, got %q", out)
	}
	text := "Der Ball ist rund."
	if out := Keywords(text, nil); out != text {
		t.Fatalf("nil keywords must leave text unchanged, got %q", out)
	}
	if out := Keywords(text, []Keyword{{L2: "   ", L1: "x"}}); out != text {
		t.Fatalf("blank keyword must be skipped, got %q", out)
	}
}
