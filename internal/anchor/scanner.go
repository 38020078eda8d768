package anchor

import (
	"log/slog"

	"github.com/nao1215/anchorscan/internal/model"
)

// Selector decides whether an anchor is selected and by which rule.
type Selector func(Match) (model.MatchedBy, bool)

// SelectByPhrase selects anchors whose content contains p. When matchTitle
// is true, anchors whose title attribute equals the phrase are selected too.
// A content match takes precedence over a title match.
func SelectByPhrase(p Phrase, matchTitle bool) Selector {
	return func(m Match) (model.MatchedBy, bool) {
		if p.Match(m.Content) {
			return model.MatchedByContent, true
		}
		if matchTitle && TitleMatches(m, p.Original()) {
			return model.MatchedByTitle, true
		}
		return "", false
	}
}

// Scanner extracts anchors and selects the ones that match a phrase.
type Scanner struct {
	phrase     Phrase
	matchTitle bool
	verify     bool
	logger     *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithMatchTitle also selects anchors whose title equals the phrase.
func WithMatchTitle(match bool) ScannerOption {
	return func(s *Scanner) {
		s.matchTitle = match
	}
}

// WithVerify counts anchors with an HTML parser as well, so reports can
// show anchors the pattern missed.
func WithVerify(verify bool) ScannerOption {
	return func(s *Scanner) {
		s.verify = verify
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner for phrase.
func NewScanner(phrase string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		phrase: NewPhrase(phrase),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phrase returns the compiled phrase.
func (s *Scanner) Phrase() Phrase {
	return s.phrase
}

// Selector returns the selection rule used by Scan.
func (s *Scanner) Selector() Selector {
	return SelectByPhrase(s.phrase, s.matchTitle)
}

// Scan extracts anchors from text and reports the selected ones,
// numbered from 1 in source order.
func (s *Scanner) Scan(source, text string) *model.ScanReport {
	report := model.NewScanReport(source, s.phrase.Original())
	report.Size = len(text)
	report.MatchTitle = s.matchTitle

	selector := s.Selector()
	matches := ExtractAnchors(text)
	report.TotalAnchors = len(matches)

	for _, m := range matches {
		by, ok := selector(m)
		if !ok {
			continue
		}
		href, _ := m.Href()
		title, _ := m.Title()
		report.AddFinding(model.AnchorFinding{
			Attributes: m.Attributes,
			Content:    m.Content,
			Text:       m.Text(),
			Href:       href,
			Title:      title,
			Offset:     m.Start,
			MatchedBy:  by,
		})
		s.logger.Debug("anchor matched",
			"source", source,
			"offset", m.Start,
			"matchedBy", by.String(),
			"href", href,
		)
	}

	if s.verify {
		n, err := CountDOMAnchors(text)
		if err != nil {
			s.logger.Warn("DOM verification failed", "source", source, "error", err)
		} else {
			report.DOMAnchors = &n
			if n != report.TotalAnchors {
				s.logger.Info("pattern and parser anchor counts differ",
					"source", source,
					"pattern", report.TotalAnchors,
					"parser", n,
				)
			}
		}
	}

	s.logger.Debug("scan finished",
		"source", source,
		"anchors", report.TotalAnchors,
		"findings", len(report.Findings),
	)
	return report
}
