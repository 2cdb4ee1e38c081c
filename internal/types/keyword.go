package types

import (
  "encoding/json"
  "fmt"
)

// Keyword is one vocabulary entry attached to a story.
type Keyword struct {
  L2         string      `json:"l2"`
  L1         string      `json:"l1"`
  Pos        string      `json:"pos,omitempty"`
  Examples   []string    `json:"examples,omitempty"`
}

// DecodeJSONColumn decodes a jsonb column that historically holds either a
// structured value or a JSON string containing the encoded value
// (double-encoded rows written by older clients). The raw-string variant is
// parsed a second time; anything else decodes directly into out.
func DecodeJSONColumn(raw []byte, out any) error {
  if len(raw) == 0 {
    return nil
  }
  var probe any
  if err := json.Unmarshal(raw, &probe); err != nil {
    return fmt.Errorf("Failed to decode json column: %w", err)
  }
  if inner, ok := probe.(string); ok {
    if inner == "" {
      return nil
    }
    if err := json.Unmarshal([]byte(inner), out); err != nil {
      return fmt.Errorf("Failed to decode double-encoded json column: %w", err)
    }
    return nil
  }
  if err := json.Unmarshal(raw, out); err != nil {
    return fmt.Errorf("Failed to decode json column: %w", err)
  }
  return nil
}

// ParseKeywords reads the keywords column of a story.
func ParseKeywords(raw []byte) ([]Keyword, error) {
  var kws []Keyword
  if err := DecodeJSONColumn(raw, &kws); err != nil {
    return nil, err
  }
  return kws, nil
}
