package retrieval

import "errors"

var (
	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrSnapshotRequired is returned when a rule snapshot is not provided.
	ErrSnapshotRequired = errors.New("rule snapshot required")
)
