package service

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

// Normalization collapses a raw SQL text into its template pattern: comments
// and literal values are stripped so that structurally identical queries map
// to the same pattern regardless of parameters, casing or whitespace.
var (
	lineCommentRegexp  = regexp.MustCompile(`--[^\n]*`)
	blockCommentRegexp = regexp.MustCompile(`(?s)/\*.*?\*/`)
	singleQuoteRegexp  = regexp.MustCompile(`'[^']*'`)
	doubleQuoteRegexp  = regexp.MustCompile(`"[^"]*"`)
	numberRegexp       = regexp.MustCompile(`\b\d+\.?\d*\b`)
	dateFnRegexp       = regexp.MustCompile(`(?i)DATE\s*\([^)]+\)`)
	timestampFnRegexp  = regexp.MustCompile(`(?i)TIMESTAMP\s*\([^)]+\)`)
)

// PatternNormalizer maps syntactically equivalent query texts to one
// canonical pattern. The regex implementation below is the default; a real
// SQL tokenizer can replace it without touching grouping or aggregation.
type PatternNormalizer interface {
	Normalize(query string) string
}

// RegexNormalizer is the regex-based PatternNormalizer.
type RegexNormalizer struct{}

func (RegexNormalizer) Normalize(query string) string {
	return NormalizeSQL(query)
}

// NormalizeSQL produces the canonical pattern for a query text. The result is
// stable under re-normalization: NormalizeSQL(NormalizeSQL(q)) == NormalizeSQL(q).
func NormalizeSQL(query string) string {
	s := lineCommentRegexp.ReplaceAllString(query, " ")
	s = blockCommentRegexp.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = singleQuoteRegexp.ReplaceAllString(s, "?")
	s = doubleQuoteRegexp.ReplaceAllString(s, "?")
	s = numberRegexp.ReplaceAllString(s, "?")
	s = dateFnRegexp.ReplaceAllString(s, "DATE(?)")
	s = timestampFnRegexp.ReplaceAllString(s, "TIMESTAMP(?)")

	return strings.TrimSpace(strings.ToUpper(s))
}

// TemplateID derives the stable identity of a pattern. Identity is computed
// over the full normalized pattern, never the truncated display form.
func TemplateID(pattern string) string {
	sum := md5.Sum([]byte(pattern))
	return hex.EncodeToString(sum[:])
}
