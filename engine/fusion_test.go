package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
)

func fusionSnapshot(t *testing.T, ruleList ...*core.Rule) *rules.Snapshot {
	t.Helper()
	store := rules.NewStore()
	require.NoError(t, store.LoadJurisdiction(core.Jurisdiction{
		Code: "CA", Name: "California", RuleSetVersion: "2026.1",
	}, ruleList))
	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	return snapshot
}

func fusionRule(topicID string, severity core.Severity) *core.Rule {
	return &core.Rule{
		JurisdictionCode: "CA",
		TopicID:          topicID,
		Severity:         severity,
		Citation:         "Test Code § 9",
		Summary:          "Summary for " + topicID + ".",
		Suggestion:       "Fix " + topicID + ".",
		SourceURL:        "https://example.com/" + topicID,
	}
}

func candidate(topicID string, method core.DetectionMethod, confidence float64, snippet string) core.CandidateViolation {
	return core.CandidateViolation{
		JurisdictionCode: "CA",
		TopicID:          topicID,
		Method:           method,
		RawScore:         confidence,
		BaseConfidence:   confidence,
		Snippet:          snippet,
	}
}

func TestFuse_SingleMethodUnmodified(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("non_compete", core.SeverityWarning))

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("non_compete", core.MethodPattern, 0.5, "non-compete"),
	}, 0.15, 0)

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, 0.5, v.Confidence)
	assert.Equal(t, core.SeverityWarning, v.Severity)
	assert.Equal(t, "Test Code § 9", v.Citation)
	assert.Equal(t, "https://example.com/non_compete", v.SourceURL)
	assert.Equal(t, []core.DetectionMethod{core.MethodPattern}, v.Methods)
	assert.Contains(t, v.Message, "Summary for non_compete.")
	assert.Contains(t, v.Message, `"non-compete"`)
	assert.Contains(t, v.Message, "Fix non_compete.")
}

func TestFuse_AgreementBonus(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("non_compete", core.SeverityWarning))

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("non_compete", core.MethodPattern, 0.5, "non-compete"),
		candidate("non_compete", core.MethodRetrieval, 0.8, ""),
	}, 0.15, 0)

	require.Len(t, violations, 1)
	// base = max(0.5, 0.8), one extra agreeing method.
	assert.InDelta(t, 0.95, violations[0].Confidence, 1e-9)
	assert.Equal(t, []core.DetectionMethod{core.MethodPattern, core.MethodRetrieval},
		violations[0].Methods)
}

func TestFuse_ConfidenceCeiling(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("non_compete", core.SeverityWarning))

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("non_compete", core.MethodPattern, 0.9, ""),
		candidate("non_compete", core.MethodRetrieval, 0.95, ""),
		candidate("non_compete", core.MethodGenerative, 0.9, ""),
	}, 0.2, 0)

	require.Len(t, violations, 1)
	assert.Equal(t, 0.99, violations[0].Confidence)
}

func TestFuse_OrderIndependence(t *testing.T) {
	snapshot := fusionSnapshot(t,
		fusionRule("non_compete", core.SeverityError),
		fusionRule("salary_history", core.SeverityWarning),
		fusionRule("arbitration", core.SeverityWarning),
	)

	candidates := []core.CandidateViolation{
		candidate("non_compete", core.MethodPattern, 0.5, "non-compete"),
		candidate("non_compete", core.MethodRetrieval, 0.7, "non-compete"),
		candidate("salary_history", core.MethodRetrieval, 0.6, "salary history"),
		candidate("arbitration", core.MethodGenerative, 0.8, ""),
		candidate("arbitration", core.MethodPattern, 0.5, "binding arbitration"),
	}

	reference := fuse(snapshot, candidates, 0.15, 0.3)
	require.NotEmpty(t, reference)

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 3, 0, 2, 4},
	}
	for _, order := range permutations {
		permuted := make([]core.CandidateViolation, len(candidates))
		for i, j := range order {
			permuted[i] = candidates[j]
		}
		assert.Equal(t, reference, fuse(snapshot, permuted, 0.15, 0.3))
	}
}

func TestFuse_ErrorSeverityBypassesThreshold(t *testing.T) {
	snapshot := fusionSnapshot(t,
		fusionRule("low_error", core.SeverityError),
		fusionRule("low_warning", core.SeverityWarning),
	)

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("low_error", core.MethodRetrieval, 0.2, ""),
		candidate("low_warning", core.MethodRetrieval, 0.2, ""),
	}, 0.15, 0.5)

	// The warning falls below the floor; the error never does.
	require.Len(t, violations, 1)
	assert.Equal(t, "low_error", violations[0].TopicID)
	assert.Equal(t, 0.2, violations[0].Confidence)
}

func TestFuse_OutputOrdering(t *testing.T) {
	snapshot := fusionSnapshot(t,
		fusionRule("b_warning", core.SeverityWarning),
		fusionRule("a_warning", core.SeverityWarning),
		fusionRule("an_info", core.SeverityInfo),
		fusionRule("an_error", core.SeverityError),
	)

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("an_info", core.MethodPattern, 0.9, ""),
		candidate("a_warning", core.MethodPattern, 0.5, ""),
		candidate("b_warning", core.MethodPattern, 0.5, ""),
		candidate("an_error", core.MethodPattern, 0.4, ""),
	}, 0.15, 0)

	require.Len(t, violations, 4)
	// Severity first, then confidence, then topicId.
	assert.Equal(t, "an_error", violations[0].TopicID)
	assert.Equal(t, "a_warning", violations[1].TopicID)
	assert.Equal(t, "b_warning", violations[2].TopicID)
	assert.Equal(t, "an_info", violations[3].TopicID)
}

func TestFuse_UnknownTopicDropped(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("known", core.SeverityWarning))

	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("known", core.MethodPattern, 0.5, ""),
		candidate("phantom", core.MethodGenerative, 0.9, ""),
	}, 0.15, 0)

	require.Len(t, violations, 1)
	assert.Equal(t, "known", violations[0].TopicID)
}

func TestFuse_SnippetMethodPriority(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("non_compete", core.SeverityWarning))

	// The pattern layer's literal phrase beats the retrieval keyword,
	// regardless of candidate order.
	violations := fuse(snapshot, []core.CandidateViolation{
		candidate("non_compete", core.MethodRetrieval, 0.9, "keyword hit"),
		candidate("non_compete", core.MethodPattern, 0.5, "covenant not to compete"),
	}, 0.15, 0)

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, `"covenant not to compete"`)
	assert.NotContains(t, violations[0].Message, "keyword hit")
}

func TestFuse_ConfidencesClamped(t *testing.T) {
	snapshot := fusionSnapshot(t, fusionRule("non_compete", core.SeverityWarning))

	violations := fuse(snapshot, []core.CandidateViolation{
		{TopicID: "non_compete", Method: core.MethodGenerative, BaseConfidence: 1.7},
	}, 0.15, 0)

	require.Len(t, violations, 1)
	assert.LessOrEqual(t, violations[0].Confidence, 1.0)
	assert.GreaterOrEqual(t, violations[0].Confidence, 0.0)
}

func TestFuse_Empty(t *testing.T) {
	snapshot := fusionSnapshot(t)
	assert.Empty(t, fuse(snapshot, nil, 0.15, 0.3))
}

func TestOverallRisk(t *testing.T) {
	assert.Equal(t, RiskLow, overallRisk(nil))
	assert.Equal(t, RiskLow, overallRisk([]core.Violation{{Severity: core.SeverityInfo}}))
	assert.Equal(t, RiskMedium, overallRisk([]core.Violation{
		{Severity: core.SeverityInfo}, {Severity: core.SeverityWarning},
	}))
	assert.Equal(t, RiskHigh, overallRisk([]core.Violation{
		{Severity: core.SeverityWarning}, {Severity: core.SeverityError},
	}))
}
