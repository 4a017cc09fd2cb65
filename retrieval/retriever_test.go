package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislegal/offerlint/ai/mock"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
)

// fixedEmbedder maps exact strings to fixed vectors so semantic
// similarity in tests is fully controlled.
func fixedEmbedder(vectors map[string][]float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{0, 0, 1}, nil
	}
	return embedder
}

func loadSnapshot(t *testing.T, ruleList []*core.Rule) *rules.Snapshot {
	t.Helper()
	store := rules.NewStore()
	require.NoError(t, store.LoadJurisdiction(core.Jurisdiction{
		Code: "CA", Name: "California", RuleSetVersion: "2026.1",
	}, ruleList))
	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	return snapshot
}

func retrievalRule(topicID, summary string, phrases []string, vector []float32) *core.Rule {
	return &core.Rule{
		JurisdictionCode: "CA",
		TopicID:          topicID,
		Severity:         core.SeverityWarning,
		Citation:         "Test Code § 1",
		FlaggedPhrases:   phrases,
		Summary:          summary,
		Vector:           vector,
	}
}

func TestNewRetriever(t *testing.T) {
	_, err := NewRetriever(nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)

	retriever, err := NewRetriever(mock.NewMockProvider())
	require.NoError(t, err)
	assert.NotNil(t, retriever)
}

func TestRetriever_HybridScoring(t *testing.T) {
	document := "This offer includes a non-compete restriction."

	snapshot := loadSnapshot(t, []*core.Rule{
		retrievalRule("non_compete", "Non-compete clauses are void.",
			[]string{"non-compete"}, []float32{1, 0, 0}),
		retrievalRule("salary_history", "No salary history questions.",
			[]string{"salary history"}, []float32{0, 1, 0}),
	})

	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	candidates, err := retriever.Retrieve(context.Background(), snapshot, document, Params{})
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// non_compete: semantic 1.0, keyword 1.0 (the document's only
	// recognized term belongs to the rule) -> 0.7*1.0 + 0.3*1.0 = 1.0.
	first := candidates[0]
	assert.Equal(t, "non_compete", first.TopicID)
	assert.Equal(t, core.MethodRetrieval, first.Method)
	assert.InDelta(t, 1.0, first.RawScore, 1e-6)
	assert.Equal(t, first.RawScore, first.BaseConfidence)
	assert.Equal(t, "non-compete", first.Snippet)

	// salary_history: semantic 0, keyword 0 -> hybrid 0.
	second := candidates[1]
	assert.Equal(t, "salary_history", second.TopicID)
	assert.InDelta(t, 0.0, second.RawScore, 1e-6)
	assert.Empty(t, second.Snippet)
}

func TestRetriever_NegativeSimilarityClamped(t *testing.T) {
	document := "Nothing recognizable here."

	snapshot := loadSnapshot(t, []*core.Rule{
		retrievalRule("opposed", "summary", nil, []float32{-1, 0, 0}),
	})

	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	candidates, err := retriever.Retrieve(context.Background(), snapshot, document, Params{})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 0.0, candidates[0].RawScore)
}

func TestRetriever_MinSimilarityFilter(t *testing.T) {
	document := "An offer letter mentioning severance terms."

	snapshot := loadSnapshot(t, []*core.Rule{
		retrievalRule("severance", "Severance must be in writing.",
			[]string{"severance"}, []float32{1, 0, 0}),
		retrievalRule("unrelated", "Something else entirely.",
			nil, []float32{0, 1, 0}),
	})

	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	candidates, err := retriever.Retrieve(context.Background(), snapshot, document, Params{
		MinSimilarity: 0.5,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "severance", candidates[0].TopicID)
}

func TestRetriever_KeywordMonotonicity(t *testing.T) {
	// With semantic similarity held fixed, adding keyword overlap must
	// never lower the hybrid score.
	vector := []float32{1, 0, 0}

	withOverlap := loadSnapshot(t, []*core.Rule{
		retrievalRule("arbitration", "Mandatory binding arbitration is restricted.",
			[]string{"binding arbitration"}, vector),
	})
	withoutOverlap := loadSnapshot(t, []*core.Rule{
		retrievalRule("arbitration", "An unrelated summary.", nil, vector),
	})

	document := "All disputes go to binding arbitration."
	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	high, err := retriever.Retrieve(context.Background(), withOverlap, document, Params{})
	require.NoError(t, err)
	low, err := retriever.Retrieve(context.Background(), withoutOverlap, document, Params{})
	require.NoError(t, err)

	require.Len(t, high, 1)
	require.Len(t, low, 1)
	assert.GreaterOrEqual(t, high[0].RawScore, low[0].RawScore)
	assert.Greater(t, high[0].RawScore, low[0].RawScore)
}

func TestRetriever_DeterministicOrdering(t *testing.T) {
	document := "A generic offer letter."
	vector := []float32{1, 0, 0}

	snapshot := loadSnapshot(t, []*core.Rule{
		retrievalRule("b_topic", "summary", nil, vector),
		retrievalRule("a_topic", "summary", nil, vector),
	})

	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	for range 3 {
		candidates, err := retriever.Retrieve(context.Background(), snapshot, document, Params{})
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "a_topic", candidates[0].TopicID)
		assert.Equal(t, "b_topic", candidates[1].TopicID)
	}
}

func TestRetriever_EmbeddingFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	snapshot := loadSnapshot(t, nil)
	_, err = retriever.Retrieve(context.Background(), snapshot, "some document", Params{})
	assert.Error(t, err)
}

func TestRetriever_NilSnapshot(t *testing.T) {
	retriever, err := NewRetriever(mock.NewMockProvider())
	require.NoError(t, err)

	_, err = retriever.Retrieve(context.Background(), nil, "doc", Params{})
	assert.ErrorIs(t, err, ErrSnapshotRequired)
}

func TestRetriever_MonitorCallbacks(t *testing.T) {
	document := "Offer with a non-compete clause."

	snapshot := loadSnapshot(t, []*core.Rule{
		retrievalRule("non_compete", "Non-compete clauses are void.",
			[]string{"non-compete"}, []float32{1, 0, 0}),
	})

	provider := mock.NewMockProviderWithServices(fixedEmbedder(map[string][]float32{
		document: {1, 0, 0},
	}), mock.NewMockAnalyzer())

	retriever, err := NewRetriever(provider)
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	candidates, err := retriever.RetrieveWithMonitor(context.Background(), snapshot, document, Params{}, monitor)
	require.NoError(t, err)

	assert.Equal(t, "CA", monitor.startCode)
	assert.Contains(t, monitor.startKeywords, "non-compete")
	assert.Equal(t, 3, monitor.dimensions)
	assert.Len(t, monitor.matches, 1)
	assert.Equal(t, 1, monitor.scoringCalls)
	assert.Equal(t, candidates, monitor.finished)
}

type recordingMonitor struct {
	startCode     string
	startKeywords []string
	dimensions    int
	matches       []rules.Match
	scoringCalls  int
	finished      []core.CandidateViolation
}

func (r *recordingMonitor) Start(code string, keywords []string) {
	r.startCode = code
	r.startKeywords = keywords
}
func (r *recordingMonitor) AfterEmbedding(dimensions int)        { r.dimensions = dimensions }
func (r *recordingMonitor) AfterSemanticSearch(m []rules.Match)  { r.matches = m }
func (r *recordingMonitor) AfterScoring(_ string, _, _, _ float64) {
	r.scoringCalls++
}
func (r *recordingMonitor) Finish(c []core.CandidateViolation) { r.finished = c }

func TestParams_WithDefaults(t *testing.T) {
	p := Params{}.withDefaults()
	assert.Equal(t, DefaultTopK, p.TopK)
	assert.Equal(t, DefaultSemanticWeight, p.SemanticWeight)
	assert.Equal(t, DefaultKeywordWeight, p.KeywordWeight)

	custom := Params{TopK: 3, SemanticWeight: 0.5, KeywordWeight: 0.5, MinSimilarity: 2}.withDefaults()
	assert.Equal(t, 3, custom.TopK)
	assert.Equal(t, 0.5, custom.SemanticWeight)
	assert.Equal(t, 1.0, custom.MinSimilarity)
}
