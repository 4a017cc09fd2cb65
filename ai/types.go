package ai

// RuleContext is a candidate rule description passed to the generative
// analyzer. Only retrieved candidates are sent, never a full rule set,
// to bound prompt size.
type RuleContext struct {
	// TopicID is the rule's unique topic identifier within its jurisdiction.
	TopicID string

	// Summary is the rule's plain-language requirement text.
	Summary string

	// FlaggedPhrases are literal phrases associated with the rule.
	FlaggedPhrases []string

	// Citation is the legal citation backing the rule.
	Citation string
}

// Finding is one violated-rule judgment returned by the analyzer.
type Finding struct {
	// TopicID references the candidate rule the finding is about.
	// It must match one of the submitted candidates.
	TopicID string

	// Confidence is the model-reported confidence in [0,1].
	Confidence float64

	// Explanation is a short model-written justification of the finding.
	Explanation string
}
