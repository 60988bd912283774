package services

import (
	"strings"
	"unicode"
)

// isGeorgian reports whether r falls in the Georgian Unicode block.
func isGeorgian(r rune) bool {
	return r >= 0x10A0 && r <= 0x10FF
}

// Normalize lower-cases raw, strips every rune that is neither a word
// character, whitespace, nor a Georgian letter, and collapses whitespace runs
// to single spaces. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case isGeorgian(r):
			// Unreachable for assigned code points (the block is all
			// letters) but keeps Georgian text safe against unicode
			// table changes.
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Classifier decides whether a message is asking for a product's price.
// It holds a pre-normalized keyword set and matches by literal substring
// containment, so a short keyword matching inside an unrelated word is
// accepted behavior.
type Classifier struct {
	keywords []string
}

// NewClassifier builds a classifier from the given keyword list. Keywords are
// normalized once here; empty keywords are dropped.
func NewClassifier(keywords []string) *Classifier {
	c := &Classifier{keywords: make([]string, 0, len(keywords))}
	for _, kw := range keywords {
		if normalized := Normalize(kw); normalized != "" {
			c.keywords = append(c.keywords, normalized)
		}
	}
	return c
}

// IsPriceQuestion reports whether the normalized text contains any keyword.
func (c *Classifier) IsPriceQuestion(text string) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}
	for _, kw := range c.keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
