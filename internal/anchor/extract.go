package anchor

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// whitespace matches one whitespace character of any kind.
// RE2's \s covers only ASCII space, tab and line breaks, so vertical tab,
// the information separators U+001C..U+001F, NEL and the Unicode separators
// (NBSP, line/paragraph separators) are added.
const whitespace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// anchorPattern captures the attribute text and the content of an anchor.
// (?s) lets the lazy content group cross line breaks.
var anchorPattern = regexp.MustCompile(`(?is)<a` + whitespace + `+([^>]+)>(.*?)</a>`)

// Match is one anchor element found in a text.
type Match struct {
	// Attributes is the raw text between "<a" plus whitespace and the
	// closing ">" of the opening tag.
	Attributes string

	// Content is the raw text between the opening and closing tags.
	Content string

	// Start and End delimit the whole element in the scanned text
	// as byte offsets, End exclusive.
	Start int
	End   int
}

// ExtractAnchors returns every anchor element in text in order of
// appearance. Matches never overlap and content never extends past the
// nearest closing tag. The result is empty when text contains no anchors.
func ExtractAnchors(text string) []Match {
	locs := anchorPattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Attributes: text[loc[2]:loc[3]],
			Content:    text[loc[4]:loc[5]],
			Start:      loc[0],
			End:        loc[1],
		})
	}
	return matches
}

// Attribute patterns used for href and title lookups.
var (
	hrefPattern  = attrPattern("href")
	titlePattern = attrPattern("title")
)

// attrPattern builds a pattern for a quoted attribute assignment.
// Group 1 is the whole assignment, group 2 a double-quoted value and
// group 3 a single-quoted value.
func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|` + whitespace + `)(` + regexp.QuoteMeta(name) +
		`\s*=\s*(?:"([^"]*)"|'([^']*)'))`)
}

// Attr looks up a quoted attribute in the raw attribute text.
// Names are compared case-insensitively. Unquoted values are not recognized.
func (m Match) Attr(name string) (string, bool) {
	var re *regexp.Regexp
	switch strings.ToLower(name) {
	case "href":
		re = hrefPattern
	case "title":
		re = titlePattern
	default:
		re = attrPattern(name)
	}
	return lookupAttr(re, m.Attributes)
}

// Href returns the href attribute value.
func (m Match) Href() (string, bool) {
	return lookupAttr(hrefPattern, m.Attributes)
}

// Title returns the title attribute value.
func (m Match) Title() (string, bool) {
	return lookupAttr(titlePattern, m.Attributes)
}

func lookupAttr(re *regexp.Regexp, attrs string) (string, bool) {
	loc := re.FindStringSubmatchIndex(attrs)
	if loc == nil {
		return "", false
	}
	if loc[4] >= 0 {
		return attrs[loc[4]:loc[5]], true
	}
	return attrs[loc[6]:loc[7]], true
}

// Text returns the visible text of the anchor content: nested tags are
// dropped, entities are decoded, and runs of whitespace become a single
// space. A <br> counts as whitespace.
func (m Match) Text() string {
	z := html.NewTokenizer(strings.NewReader(m.Content))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				sb.WriteByte(' ')
			}
		}
	}
}
