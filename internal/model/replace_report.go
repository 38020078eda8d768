package model

// ElementChange describes one anchor element replaced by a template.
type ElementChange struct {
	// Index is the 1-based position among replaced anchors.
	Index int `json:"index"`

	// OldElement is the whole anchor element as it appeared in the source.
	OldElement string `json:"old_element"`

	// NewElement is the text written in its place.
	NewElement string `json:"new_element"`

	// MatchedBy is the rule that selected the anchor.
	MatchedBy MatchedBy `json:"matched_by"`
}

// ReplaceReport summarizes an element replacement of one source.
type ReplaceReport struct {
	Source string `json:"source"`

	// Footer is true when the last replaced anchor received the footer
	// template and the others the header template.
	Footer bool `json:"footer"`

	Changes []ElementChange `json:"changes"`
}

// Count returns the number of replaced anchors.
func (r *ReplaceReport) Count() int {
	return len(r.Changes)
}

// HeaderCount returns the number of anchors that received the header
// template.
func (r *ReplaceReport) HeaderCount() int {
	if r.Footer && len(r.Changes) > 0 {
		return len(r.Changes) - 1
	}
	return len(r.Changes)
}
