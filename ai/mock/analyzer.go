package mock

import (
	"context"

	"github.com/praxislegal/offerlint/ai"
)

// MockAnalyzer is a test double for ai.ComplianceAnalyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by AnalyzeDocument if set.
	// If nil, the default behavior reports no violations.
	AnalyzeFunc func(ctx context.Context, documentText string, candidates []ai.RuleContext) ([]ai.Finding, error)

	callCount int
}

// NewMockAnalyzer creates a mock analyzer that reports no violations by default.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// AnalyzeDocument returns injected findings, or an empty slice by default.
func (m *MockAnalyzer) AnalyzeDocument(ctx context.Context, documentText string, candidates []ai.RuleContext) ([]ai.Finding, error) {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, documentText, candidates)
	}

	return []ai.Finding{}, nil
}

// CallCount returns the number of times AnalyzeDocument was called.
func (m *MockAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeFunc = nil
}
