package engine

import "errors"

var (
	// ErrRuleStoreRequired is returned when a rule store is not provided.
	ErrRuleStoreRequired = errors.New("rule store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
