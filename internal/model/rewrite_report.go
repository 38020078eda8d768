package model

// HrefChange describes one rewritten anchor.
type HrefChange struct {
	// Index is the 1-based position among rewritten anchors.
	Index int `json:"index"`

	// OldHref is the previous href value. Empty when the anchor had none
	// and the attribute was added.
	OldHref string `json:"old_href"`

	// NewHref is the href value written.
	NewHref string `json:"new_href"`

	// MatchedBy is the rule that selected the anchor.
	MatchedBy MatchedBy `json:"matched_by"`
}

// RewriteReport summarizes an href rewrite of one source.
type RewriteReport struct {
	Source  string       `json:"source"`
	NewHref string       `json:"new_href"`
	Changes []HrefChange `json:"changes"`
}

// Count returns the number of rewritten anchors.
func (r *RewriteReport) Count() int {
	return len(r.Changes)
}
