// Copyright 2026 Praxis Legal Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/praxislegal/offerlint/ai"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
	"github.com/praxislegal/offerlint/storage"
)

// defaultBatchSize is the number of rule texts embedded per call.
const defaultBatchSize = 16

// Pipeline ingests rule packs: parse, embed, persist, then load the
// jurisdiction into the live store as one atomic snapshot swap.
type Pipeline struct {
	repository storage.RuleRepository
	store      *rules.Store
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many rule texts are embedded per call.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new rule ingestion pipeline.
func NewPipeline(repository storage.RuleRepository, store *rules.Store, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		store:      store,
		embedder:   provider.Embedder(),
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestPackFile loads a rule pack from a JSON file and ingests it.
func (p *Pipeline) IngestPackFile(ctx context.Context, path string) (*core.Jurisdiction, int, error) {
	jurisdiction, ruleList, err := rules.LoadPackFile(path)
	if err != nil {
		return nil, 0, err
	}
	stored, err := p.Ingest(ctx, jurisdiction, ruleList)
	if err != nil {
		return nil, 0, err
	}
	return stored, len(ruleList), nil
}

// Ingest embeds the rules, persists jurisdiction and rules, and swaps
// the jurisdiction's snapshot into the store. The store only ever
// sees the fully embedded rule set.
func (p *Pipeline) Ingest(ctx context.Context, jurisdiction core.Jurisdiction, ruleList []*core.Rule) (*core.Jurisdiction, error) {
	p.logger.Info("ingesting rule pack",
		"jurisdiction", jurisdiction.Code,
		"rules", len(ruleList))

	if err := p.embedRules(ctx, ruleList); err != nil {
		return nil, err
	}

	stored, err := p.repository.PutJurisdiction(ctx, &jurisdiction)
	if err != nil {
		return nil, err
	}
	persisted, err := p.repository.PutRules(ctx, ruleList...)
	if err != nil {
		return nil, err
	}

	if err := p.store.LoadJurisdiction(*stored, persisted); err != nil {
		return nil, err
	}

	p.logger.Info("rule pack ingested",
		"jurisdiction", stored.Code,
		"version", stored.RuleSetVersion)
	return stored, nil
}

// Reload rebuilds the store from everything the repository holds.
// Used at startup so previously ingested jurisdictions are queryable
// without re-embedding.
func (p *Pipeline) Reload(ctx context.Context) (int, error) {
	jurisdictions, err := p.repository.ListJurisdictions(ctx)
	if err != nil {
		return 0, err
	}

	for _, jurisdiction := range jurisdictions {
		ruleList, err := p.repository.ListRules(ctx, jurisdiction.Code)
		if err != nil {
			return 0, err
		}
		if err := p.store.LoadJurisdiction(*jurisdiction, ruleList); err != nil {
			return 0, err
		}
	}

	p.logger.Info("store reloaded", "jurisdictions", len(jurisdictions))
	return len(jurisdictions), nil
}

// RemoveJurisdiction deletes a jurisdiction from persistent storage
// and drops its live snapshot.
func (p *Pipeline) RemoveJurisdiction(ctx context.Context, code string) error {
	if err := p.repository.DeleteJurisdiction(ctx, code); err != nil {
		return err
	}
	p.store.RemoveJurisdiction(code)
	return nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// embedRules fills in each rule's embedding vector, batching texts
// and running batches concurrently on the worker pool. The first
// batch error wins; later errors are logged only.
func (p *Pipeline) embedRules(ctx context.Context, ruleList []*core.Rule) error {
	if len(ruleList) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(ruleList); start += p.batchSize {
		batch := ruleList[start:min(start+p.batchSize, len(ruleList))]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				p.logger.Error("error embedding rule batch", "err", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return firstErr
}

func (p *Pipeline) embedBatch(ctx context.Context, batch []*core.Rule) error {
	texts := make([]string, len(batch))
	for i, rule := range batch {
		texts[i] = rule.EmbeddingText()
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("%w: expected %d, received %d",
			ErrEmbeddingMismatch, len(batch), len(vectors))
	}

	for i, vector := range vectors {
		batch[i].Vector = vector
	}
	return nil
}
