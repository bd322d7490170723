package propkit

// Mode names the analysis context a resolver was built for. It is carried
// on the Configuration and exposed via Mode() so callers and future
// resolution rules can consult it; no current resolution logic branches
// on it.
type Mode string

const (
	// ModePublish is the default full-analysis mode.
	ModePublish Mode = "publish"

	// ModeIssues restricts analysis to issue reporting.
	ModeIssues Mode = "issues"

	// ModePreview runs analysis without persisting results.
	ModePreview Mode = "preview"
)
