package highlight

import (
  "fmt"
  "html"
  "regexp"
  "sort"
  "strings"
  "unicode/utf8"
)

// Keyword is one highlightable vocabulary entry: target-language text plus
// the translation surfaced on hover.
type Keyword struct {
  L2  string
  L1  string
}

// Keywords wraps every whole-word occurrence of each keyword in a span
// carrying the translation. Longer keywords are processed first so a short
// keyword cannot claim a partial match inside a longer one, and matches are
// swapped for placeholder tokens before any markup is written so a later
// keyword cannot re-match text introduced by an earlier substitution.
// Keywords absent from the text are skipped silently.
func Keywords(text string, keywords []Keyword) string {
  if text == "" || len(keywords) == 0 {
    return text
  }

  sorted := make([]Keyword, 0, len(keywords))
  for _, kw := range keywords {
    if strings.TrimSpace(kw.L2) == "" {
      continue
    }
    sorted = append(sorted, kw)
  }
  sort.SliceStable(sorted, func(i, j int) bool {
    return len(sorted[i].L2) > len(sorted[j].L2)
  })

  markupByToken := map[string]string{}
  tokenSeq := 0

  for _, kw := range sorted {
    pattern, err := regexp.Compile(keywordPattern(kw.L2))
    if err != nil {
      continue
    }
    translation := html.EscapeString(kw.L1)
    text = pattern.ReplaceAllStringFunc(text, func(match string) string {
      token := fmt.Sprintf("\x00kw%d\x00", tokenSeq)
      tokenSeq++
      markupByToken[token] = `<span class="keyword" data-l1="` + translation + `">` + match + `</span>`
      return token
    })
  }

  for token, markup := range markupByToken {
    text = strings.Replace(text, token, markup, 1)
  }
  return text
}

// keywordPattern builds the whole-word matcher for one keyword. A \b
// assertion only holds next to a word character, so it is attached per edge:
// a keyword that starts or ends with punctuation ("das?") gets no boundary on
// that side, otherwise it could never match.
func keywordPattern(literal string) string {
  var b strings.Builder
  b.WriteString(`(?i)`)
  first, _ := utf8.DecodeRuneInString(literal)
  if isWordRune(first) {
    b.WriteString(`\b`)
  }
  b.WriteString(regexp.QuoteMeta(literal))
  last, _ := utf8.DecodeLastRuneInString(literal)
  if isWordRune(last) {
    b.WriteString(`\b`)
  }
  return b.String()
}

// isWordRune mirrors the ASCII word-character class \b asserts against.
func isWordRune(r rune) bool {
  return r == '_' ||
    ('0' <= r && r <= '9') ||
    ('a' <= r && r <= 'z') ||
    ('A' <= r && r <= 'Z')
}
