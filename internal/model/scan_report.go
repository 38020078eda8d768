package model

import "time"

// MatchedBy records which rule selected an anchor for reporting.
type MatchedBy string

const (
	// MatchedByContent means the anchor's inner content contains the phrase.
	MatchedByContent MatchedBy = "content"

	// MatchedByTitle means the anchor's title attribute equals the phrase.
	MatchedByTitle MatchedBy = "title"
)

// String returns the rule name.
func (m MatchedBy) String() string {
	return string(m)
}

// AnchorFinding is a single anchor element selected by a scan.
type AnchorFinding struct {
	// Index is the 1-based position among reported findings.
	// It is independent of the anchor's position among all anchors.
	Index int `json:"index"`

	// Attributes is the raw text of the opening tag after "<a ".
	Attributes string `json:"attributes"`

	// Content is the raw text between the opening and closing tags.
	Content string `json:"content"`

	// Text is the visible text of Content with whitespace collapsed.
	Text string `json:"text"`

	// Href is the value of the href attribute, if present.
	Href string `json:"href,omitempty"`

	// Title is the value of the title attribute, if present.
	Title string `json:"title,omitempty"`

	// Offset is the byte offset of the element in the scanned text.
	Offset int `json:"offset"`

	// MatchedBy is the rule that selected this anchor.
	MatchedBy MatchedBy `json:"matched_by"`
}

// ScanReport is the result of scanning one text source.
type ScanReport struct {
	// Source names the scanned input (file path, "-" or "inline").
	Source string `json:"source"`

	// Size is the scanned text length in bytes.
	Size int `json:"size"`

	// Phrase is the phrase anchors were matched against.
	Phrase string `json:"phrase"`

	// MatchTitle is true when anchors were also selected by title.
	MatchTitle bool `json:"match_title"`

	// DateScanned is when the scan ran.
	DateScanned time.Time `json:"date_scanned"`

	// TotalAnchors is the number of anchor elements the pattern found,
	// before phrase filtering.
	TotalAnchors int `json:"total_anchors"`

	// DOMAnchors is the number of attributed <a> elements an HTML parser
	// found. Nil when verification was not requested.
	DOMAnchors *int `json:"dom_anchors,omitempty"`

	// Findings holds the selected anchors in source order.
	Findings []AnchorFinding `json:"findings"`
}

// NewScanReport creates an empty report for the given source and phrase.
func NewScanReport(source, phrase string) *ScanReport {
	return &ScanReport{
		Source:      source,
		Phrase:      phrase,
		DateScanned: time.Now(),
		Findings:    make([]AnchorFinding, 0),
	}
}

// AddFinding appends a finding and assigns its 1-based Index.
func (r *ScanReport) AddFinding(f AnchorFinding) {
	f.Index = len(r.Findings) + 1
	r.Findings = append(r.Findings, f)
}

// HasFindings reports whether any anchor was selected.
func (r *ScanReport) HasFindings() bool {
	return len(r.Findings) > 0
}

// CoverageGap returns how many more attributed anchors the HTML parser
// saw than the pattern did. Zero when verification was not requested.
// A negative value means the pattern found elements the parser did not
// consider anchors.
func (r *ScanReport) CoverageGap() int {
	if r.DOMAnchors == nil {
		return 0
	}
	return *r.DOMAnchors - r.TotalAnchors
}
