package types

import (
  "testing"
)

func TestParseKeywordsStructured(t *testing.T) {
  raw := []byte(`[{"l2":"Hund","l1":"dog","pos":"noun"},{"l2":"laufen","l1":"to run"}]`)
  kws, err := ParseKeywords(raw)
  if err != nil {
    t.Fatalf("parse failed: %v", err)
  }
  if len(kws) != 2 {
    t.Fatalf("len = %d, want 2", len(kws))
  }
  if kws[0].L2 != "Hund" || kws[0].L1 != "dog" || kws[0].Pos != "noun" {
    t.Fatalf("first keyword = %+v", kws[0])
  }
}

func TestParseKeywordsDoubleEncoded(t *testing.T) {
  // Older clients stored the keyword list as a JSON string inside the column.
  raw := []byte(`"[{\"l2\":\"Katze\",\"l1\":\"cat\"}]"`)
  kws, err := ParseKeywords(raw)
  if err != nil {
    t.Fatalf("parse failed: %v", err)
  }
  if len(kws) != 1 || kws[0].L2 != "Katze" || kws[0].L1 != "cat" {
    t.Fatalf("keywords = %+v", kws)
  }
}

func TestParseKeywordsEmptyVariants(t *testing.T) {
  for name, raw := range map[string][]byte{
    "nil column":   nil,
    "empty string": []byte(`""`),
    "empty array":  []byte(`[]`),
  } {
    t.Run(name, func(t *testing.T) {
      kws, err := ParseKeywords(raw)
      if err != nil {
        t.Fatalf("parse failed: %v", err)
      }
      if len(kws) != 0 {
        t.Fatalf("keywords = %+v, want none", kws)
      }
    })
  }
}

func TestParseKeywordsMalformed(t *testing.T) {
  if _, err := ParseKeywords([]byte(`{not json`)); err == nil {
    t.Fatalf("expected error for malformed column")
  }
  if _, err := ParseKeywords([]byte(`"{not json"`)); err == nil {
    t.Fatalf("expected error for malformed double-encoded column")
  }
}
