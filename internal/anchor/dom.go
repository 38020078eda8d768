package anchor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CountDOMAnchors parses text as an HTML document and counts the <a>
// elements that carry at least one attribute, the population ExtractAnchors
// targets. Comparing the two counts reveals anchors the pattern misses,
// such as ones with unterminated tags.
func CountDOMAnchors(text string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return 0, err
	}
	return doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return len(s.Nodes) > 0 && len(s.Nodes[0].Attr) > 0
	}).Length(), nil
}
