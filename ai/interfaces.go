package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ComplianceAnalyzer judges whether a document violates candidate rules
// using a language-model capability.
// Implementations must be thread-safe for concurrent use.
type ComplianceAnalyzer interface {
	// AnalyzeDocument sends the document together with the candidate rule
	// descriptions to the model and returns one finding per candidate the
	// model judges violated. Candidates the model clears, and response
	// items that fail schema validation, are omitted from the result.
	// Returns an empty slice if nothing is violated.
	// Returns an error if the model call itself fails; callers treat that
	// as a degraded layer, never as a fatal request error.
	AnalyzeDocument(ctx context.Context, documentText string, candidates []RuleContext) ([]Finding, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and ComplianceAnalyzer instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Analyzer returns the generative compliance analysis service.
	// The returned ComplianceAnalyzer is safe for concurrent use.
	Analyzer() ComplianceAnalyzer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
