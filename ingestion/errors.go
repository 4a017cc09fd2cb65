package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a rule repository is not provided.
	ErrRepositoryRequired = errors.New("rule repository required")

	// ErrStoreRequired is returned when a rule store is not provided.
	ErrStoreRequired = errors.New("rule store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbeddingMismatch is returned when the embedder returns a
	// different number of vectors than texts submitted.
	ErrEmbeddingMismatch = errors.New("embedding result mismatch")
)
