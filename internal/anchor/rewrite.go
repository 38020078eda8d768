package anchor

import (
	"strings"

	"github.com/nao1215/anchorscan/internal/model"
)

// ReplaceHref rewrites the href of every anchor chosen by sel and returns
// the new text along with one change per rewritten anchor.
//
// An existing quoted href is replaced in place. When the anchor has none,
// href="newHref" is prepended to its attributes. A rewritten anchor is
// emitted as "<a " + attributes + ">" + content + "</a>"; everything else
// is copied unchanged.
func ReplaceHref(text, newHref string, sel Selector) (string, []model.HrefChange) {
	matches := ExtractAnchors(text)
	changes := make([]model.HrefChange, 0)

	var sb strings.Builder
	sb.Grow(len(text))
	prev := 0
	for _, m := range matches {
		by, ok := sel(m)
		if !ok {
			continue
		}
		attrs, oldHref := replaceHrefAttr(m.Attributes, newHref)

		sb.WriteString(text[prev:m.Start])
		sb.WriteString("<a ")
		sb.WriteString(attrs)
		sb.WriteString(">")
		sb.WriteString(m.Content)
		sb.WriteString("</a>")
		prev = m.End

		changes = append(changes, model.HrefChange{
			Index:     len(changes) + 1,
			OldHref:   oldHref,
			NewHref:   newHref,
			MatchedBy: by,
		})
	}
	sb.WriteString(text[prev:])

	return sb.String(), changes
}

// replaceHrefAttr swaps the href value in attrs, returning the new
// attribute text and the previous value.
func replaceHrefAttr(attrs, newHref string) (string, string) {
	assignment := `href="` + newHref + `"`

	loc := hrefPattern.FindStringSubmatchIndex(attrs)
	if loc == nil {
		return assignment + " " + attrs, ""
	}

	var old string
	if loc[4] >= 0 {
		old = attrs[loc[4]:loc[5]]
	} else {
		old = attrs[loc[6]:loc[7]]
	}
	return attrs[:loc[2]] + assignment + attrs[loc[3]:], old
}

// ElementTemplate returns the text that replaces the i-th (0-based) of n
// selected anchors.
type ElementTemplate func(i, n int, m Match) string

// HeaderFooter returns an ElementTemplate that gives the last selected
// anchor the footer text and every earlier one the header text. With an
// empty footer every anchor gets the header. A lone anchor counts as the
// footer.
func HeaderFooter(header, footer string) ElementTemplate {
	return func(i, n int, _ Match) string {
		if footer != "" && i == n-1 {
			return footer
		}
		return header
	}
}

// ReplaceElements replaces every anchor element chosen by sel, from "<a"
// through "</a>", with the text produced by tmpl. Selection happens before
// any replacement, so tmpl always sees the final count. Everything else is
// copied unchanged.
func ReplaceElements(text string, sel Selector, tmpl ElementTemplate) (string, []model.ElementChange) {
	type picked struct {
		m  Match
		by model.MatchedBy
	}
	var selected []picked
	for _, m := range ExtractAnchors(text) {
		if by, ok := sel(m); ok {
			selected = append(selected, picked{m: m, by: by})
		}
	}

	changes := make([]model.ElementChange, 0, len(selected))
	var sb strings.Builder
	sb.Grow(len(text))
	prev := 0
	for i, p := range selected {
		replacement := tmpl(i, len(selected), p.m)

		sb.WriteString(text[prev:p.m.Start])
		sb.WriteString(replacement)
		prev = p.m.End

		changes = append(changes, model.ElementChange{
			Index:      i + 1,
			OldElement: text[p.m.Start:p.m.End],
			NewElement: replacement,
			MatchedBy:  p.by,
		})
	}
	sb.WriteString(text[prev:])

	return sb.String(), changes
}
