package config

// File represents the structure of the .anchorscan configuration file.
// Every field is optional; unset fields leave the flag value in place.
type File struct {
	// Phrase replaces the default phrase.
	Phrase string `yaml:"phrase,omitempty"`

	// MatchTitle enables title matching when set.
	MatchTitle *bool `yaml:"matchTitle,omitempty"`

	// Verify enables the HTML parser cross-check when set.
	Verify *bool `yaml:"verify,omitempty"`

	// Href is the replacement href for the rewrite command.
	Href string `yaml:"href,omitempty"`

	// Template replaces whole anchors in the replace command.
	Template string `yaml:"template,omitempty"`

	// FooterTemplate replaces the last selected anchor in the replace command.
	FooterTemplate string `yaml:"footerTemplate,omitempty"`
}

// Flag names that a configuration file can supply.
const (
	FlagPhrase = "phrase"
	FlagTitle  = "title"
	FlagVerify = "verify"
	FlagHref   = "href"
	FlagWith   = "with"
	FlagFooter = "footer"
)

// ApplyTo copies file settings into cfg. Settings whose flag was set
// explicitly on the command line are kept, so flags win over the file.
// changed reports whether a flag was given; a nil changed applies everything.
func (f *File) ApplyTo(cfg *Config, changed func(flag string) bool) {
	if f == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if f.Phrase != "" && !changed(FlagPhrase) {
		cfg.Phrase = f.Phrase
	}
	if f.MatchTitle != nil && !changed(FlagTitle) {
		cfg.MatchTitle = *f.MatchTitle
	}
	if f.Verify != nil && !changed(FlagVerify) {
		cfg.Verify = *f.Verify
	}
	if f.Href != "" && !changed(FlagHref) {
		cfg.Href = f.Href
	}
	if f.Template != "" && !changed(FlagWith) {
		cfg.Template = f.Template
	}
	if f.FooterTemplate != "" && !changed(FlagFooter) {
		cfg.FooterTemplate = f.FooterTemplate
	}
}
