package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislegal/offerlint/ai/mock"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
	"github.com/praxislegal/offerlint/storage"
	storagebadger "github.com/praxislegal/offerlint/storage/badger"
)

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.RuleRepository, *rules.Store) {
	t.Helper()

	repository, backend, err := storagebadger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	store := rules.NewStore()
	pipeline, err := NewPipeline(repository, store, mock.NewMockProvider(), opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repository, store
}

func packJurisdiction() core.Jurisdiction {
	return core.Jurisdiction{Code: "CA", Name: "California", RuleSetVersion: "2026.1"}
}

func packRules() []*core.Rule {
	return []*core.Rule{
		{
			JurisdictionCode: "CA",
			TopicID:          "non_compete",
			Severity:         core.SeverityError,
			Citation:         "Cal. Bus. & Prof. Code § 16600",
			FlaggedPhrases:   []string{"non-compete"},
			Summary:          "Non-compete clauses are void in California.",
			Suggestion:       "Remove the clause.",
		},
		{
			JurisdictionCode: "CA",
			TopicID:          "salary_history",
			Severity:         core.SeverityWarning,
			Citation:         "Cal. Lab. Code § 432.3",
			FlaggedPhrases:   []string{"salary history"},
			Summary:          "No salary history questions.",
			Suggestion:       "Strike the question.",
		},
	}
}

func TestNewPipeline_Validation(t *testing.T) {
	repository, backend, err := storagebadger.NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	store := rules.NewStore()
	provider := mock.NewMockProvider()

	_, err = NewPipeline(nil, store, provider)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewPipeline(repository, nil, provider)
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = NewPipeline(repository, store, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)
}

func TestPipeline_Ingest(t *testing.T) {
	pipeline, repository, store := newTestPipeline(t)
	ctx := context.Background()

	stored, err := pipeline.Ingest(ctx, packJurisdiction(), packRules())
	require.NoError(t, err)
	assert.Equal(t, "CA", stored.Code)
	assert.False(t, stored.InsertedAt.IsZero())

	// Rules are persisted with embeddings.
	persisted, err := repository.ListRules(ctx, "CA")
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	for _, rule := range persisted {
		assert.NotEmpty(t, rule.Vector, "rule %s should be embedded", rule.TopicID)
	}

	// The live store sees the new snapshot.
	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())
	assert.NotEmpty(t, snapshot.Query(persisted[0].Vector, 1))
}

func TestPipeline_IngestPackFile(t *testing.T) {
	pipeline, _, store := newTestPipeline(t)

	path := filepath.Join(t.TempDir(), "ca.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"jurisdiction": {"code": "CA", "name": "California", "ruleSetVersion": "2026.1"},
		"rules": [{
			"topicId": "non_compete",
			"severity": "error",
			"citation": "Cal. Bus. & Prof. Code § 16600",
			"flaggedPhrases": ["non-compete"],
			"summary": "Non-compete clauses are void.",
			"suggestion": "Remove the clause."
		}]
	}`), 0o644))

	stored, count, err := pipeline.IngestPackFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "CA", stored.Code)
	assert.Equal(t, 1, count)

	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
}

func TestPipeline_IngestPackFile_Invalid(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jurisdiction": {`), 0o644))

	_, _, err := pipeline.IngestPackFile(context.Background(), path)
	assert.ErrorIs(t, err, rules.ErrInvalidRulePack)
}

func TestPipeline_ReIngestReplaces(t *testing.T) {
	pipeline, _, store := newTestPipeline(t)
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, packJurisdiction(), packRules())
	require.NoError(t, err)

	// Second pack drops one topic and bumps the version.
	updated := packJurisdiction()
	updated.RuleSetVersion = "2026.2"
	_, err = pipeline.Ingest(ctx, updated, packRules()[:1])
	require.NoError(t, err)

	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "2026.2", snapshot.Jurisdiction().RuleSetVersion)
}

func TestPipeline_EmbeddingFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	repository, backend, err := storagebadger.NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	store := rules.NewStore()
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockAnalyzer())
	pipeline, err := NewPipeline(repository, store, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.Ingest(context.Background(), packJurisdiction(), packRules())
	require.Error(t, err)

	// Nothing was persisted or loaded.
	_, err = store.Snapshot("CA")
	assert.ErrorIs(t, err, core.ErrUnknownJurisdiction)
}

func TestPipeline_Reload(t *testing.T) {
	repository, backend, err := storagebadger.NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()

	provider := mock.NewMockProvider()

	first, err := NewPipeline(repository, rules.NewStore(), provider)
	require.NoError(t, err)
	_, err = first.Ingest(context.Background(), packJurisdiction(), packRules())
	require.NoError(t, err)
	first.Release()

	// A fresh store rebuilt from the repository alone.
	embedder := mock.NewMockEmbedder()
	store := rules.NewStore()
	second, err := NewPipeline(repository, store,
		mock.NewMockProviderWithServices(embedder, mock.NewMockAnalyzer()))
	require.NoError(t, err)
	defer second.Release()

	loaded, err := second.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 0, embedder.CallCount(), "reload must not re-embed")

	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())
}

func TestPipeline_RemoveJurisdiction(t *testing.T) {
	pipeline, repository, store := newTestPipeline(t)
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, packJurisdiction(), packRules())
	require.NoError(t, err)

	require.NoError(t, pipeline.RemoveJurisdiction(ctx, "CA"))

	_, err = store.Snapshot("CA")
	assert.ErrorIs(t, err, core.ErrUnknownJurisdiction)
	_, err = repository.GetJurisdiction(ctx, "CA")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPipeline_SmallBatches(t *testing.T) {
	pipeline, _, store := newTestPipeline(t, WithBatchSize(1), WithPoolSize(2))

	_, err := pipeline.Ingest(context.Background(), packJurisdiction(), packRules())
	require.NoError(t, err)

	snapshot, err := store.Snapshot("CA")
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Len())
}
