// Package anchor finds anchor elements in HTML text and selects those
// whose visible content mentions a phrase.
//
// # Matching
//
// Anchors are located with a single regular expression rather than an HTML
// parser. An anchor is "<a", whitespace, the raw attribute text up to the
// first ">", then the shortest run of any characters up to the next "</a>".
// Tag names are matched case-insensitively. Content is never trimmed or
// unescaped, and nested markup inside it is kept as opaque text.
//
// Phrases are matched word by word: each word is compared literally and
// case-insensitively, and every gap between words accepts one or more
// whitespace characters of any kind, including line breaks and NBSP.
//
// # Components
//
//   - ExtractAnchors: scan text for anchor elements
//   - Phrase / ContentMatchesPhrase: whitespace-tolerant phrase test
//   - Scanner: extract, select and number matching anchors into a report
//   - ReplaceHref: rewrite the href of selected anchors
//   - ReplaceElements / HeaderFooter: replace selected anchors with templates
//   - CountDOMAnchors: parser-based anchor count used as a cross-check
//
// # Usage
//
//	s := anchor.NewScanner("Browser version", anchor.WithMatchTitle(true))
//	report := s.Scan("index.html", text)
//	for _, f := range report.Findings {
//		fmt.Println(f.Index, f.Href)
//	}
package anchor
