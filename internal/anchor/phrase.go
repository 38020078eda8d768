package anchor

import (
	"regexp"
	"strings"
)

// Phrase is a compiled, whitespace-tolerant and case-insensitive phrase.
// The zero value is not usable; create one with NewPhrase.
type Phrase struct {
	original string
	words    []string
	re       *regexp.Regexp
}

// NewPhrase compiles phrase. The phrase is split into words on whitespace;
// each word is matched literally and every gap between words accepts one
// or more whitespace characters. A phrase with no words matches any content.
func NewPhrase(phrase string) Phrase {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return Phrase{
		original: phrase,
		words:    words,
		re:       regexp.MustCompile(`(?i)` + strings.Join(quoted, whitespace+`+`)),
	}
}

// Match reports whether content contains the phrase.
func (p Phrase) Match(content string) bool {
	return p.re.MatchString(content)
}

// Words returns the phrase words in order.
func (p Phrase) Words() []string {
	return append([]string(nil), p.words...)
}

// Original returns the phrase as it was given to NewPhrase.
func (p Phrase) Original() string {
	return p.original
}

// String returns a short pattern form such as `Browser\s+version`.
func (p Phrase) String() string {
	quoted := make([]string, len(p.words))
	for i, w := range p.words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, `\s+`)
}

// ContentMatchesPhrase reports whether content contains the words of phrase
// in order, separated by one or more whitespace characters, ignoring case.
func ContentMatchesPhrase(content, phrase string) bool {
	return NewPhrase(phrase).Match(content)
}

// TitleMatches reports whether the anchor's title attribute equals phrase,
// ignoring case.
func TitleMatches(m Match, phrase string) bool {
	title, ok := m.Title()
	return ok && strings.EqualFold(title, phrase)
}

// Filter returns the matches whose content contains p, preserving order.
func Filter(matches []Match, p Phrase) []Match {
	filtered := make([]Match, 0, len(matches))
	for _, m := range matches {
		if p.Match(m.Content) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
