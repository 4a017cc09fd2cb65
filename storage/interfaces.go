package storage

import (
	"context"

	"github.com/praxislegal/offerlint/core"
)

// RuleRepository provides persistent storage for jurisdictions and their
// compliance rules. Implementations must be thread-safe and support
// concurrent access.
type RuleRepository interface {
	// PutJurisdiction inserts or updates a jurisdiction record.
	// Sets InsertedAt on first write and UpdatedAt on every write.
	PutJurisdiction(ctx context.Context, jur *core.Jurisdiction) (*core.Jurisdiction, error)

	// GetJurisdiction retrieves a jurisdiction by code.
	// Returns ErrNotFound if no such jurisdiction exists.
	GetJurisdiction(ctx context.Context, code string) (*core.Jurisdiction, error)

	// ListJurisdictions retrieves all stored jurisdictions ordered by code.
	ListJurisdictions(ctx context.Context) ([]*core.Jurisdiction, error)

	// PutRules inserts or updates rules. Rules are keyed by their content ID
	// derived from (jurisdiction, topic), so re-ingesting a topic replaces
	// the prior record. Sets timestamps the same way PutJurisdiction does.
	PutRules(ctx context.Context, rules ...*core.Rule) ([]*core.Rule, error)

	// GetRule retrieves a single rule by jurisdiction code and topic id.
	// Returns ErrNotFound if the rule doesn't exist.
	GetRule(ctx context.Context, jurisdictionCode, topicID string) (*core.Rule, error)

	// ListRules retrieves all rules for a jurisdiction ordered by topic id.
	// Returns an empty slice for a jurisdiction with no rules.
	ListRules(ctx context.Context, jurisdictionCode string) ([]*core.Rule, error)

	// DeleteJurisdiction removes a jurisdiction and all of its rules.
	// Returns ErrNotFound if the jurisdiction doesn't exist.
	DeleteJurisdiction(ctx context.Context, code string) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
