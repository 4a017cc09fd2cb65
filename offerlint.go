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


// Package offerlint analyzes employment offer letters against
// jurisdiction-specific compliance rules. The System facade wires the
// storage backend, the AI provider, the live rule store and the
// analysis engine.
package offerlint

import (
	"context"
	"log/slog"

	"github.com/praxislegal/offerlint/ai"
	"github.com/praxislegal/offerlint/ai/openai"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/engine"
	"github.com/praxislegal/offerlint/ingestion"
	"github.com/praxislegal/offerlint/rules"
	"github.com/praxislegal/offerlint/storage"
	"github.com/praxislegal/offerlint/storage/badger"
)

// System bundles everything needed to ingest rule packs and analyze
// documents: persistent rule storage, the in-memory rule store, the
// AI provider and the analysis engine.
type System struct {
	backend  *badger.Backend
	ruleRepo storage.RuleRepository
	store    *rules.Store
	provider ai.AIProvider
	engine   *engine.Engine
	pipeline *ingestion.Pipeline
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig     *ai.Config
	engineConfig *engine.Config
	provider     ai.AIProvider
	inMemory     bool
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithEngineConfig sets the analysis thresholds and weights.
func WithEngineConfig(cfg *engine.Config) SystemOption {
	return func(o *systemOptions) {
		if cfg != nil {
			o.engineConfig = cfg
		}
	}
}

// WithProvider injects a custom AI provider instead of the default
// OpenAI-compatible one. Used by tests.
func WithProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps rule storage in memory instead of on disk.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// Open creates a System backed by the rule database at filePath and
// loads every persisted jurisdiction into the live store.
func Open(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig:     ai.DefaultConfig(),
		engineConfig: engine.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	ruleRepo, err := badger.NewRuleRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	store := rules.NewStore()

	pipeline, err := ingestion.NewPipeline(ruleRepo, store, provider)
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	analysisEngine, err := engine.NewEngine(store, provider, options.engineConfig)
	if err != nil {
		pipeline.Release()
		provider.Close()
		backend.Close()
		return nil, err
	}

	system := &System{
		backend:  backend,
		ruleRepo: ruleRepo,
		store:    store,
		provider: provider,
		engine:   analysisEngine,
		pipeline: pipeline,
		logger:   slog.Default(),
	}

	if _, err := pipeline.Reload(context.Background()); err != nil {
		system.Close()
		return nil, err
	}

	return system, nil
}

// Close releases the engine, the AI provider and the storage backend.
func (s *System) Close() error {
	s.engine.Release()
	s.pipeline.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// IngestRulePack ingests a JSON rule pack file and makes its
// jurisdiction immediately queryable.
func (s *System) IngestRulePack(ctx context.Context, path string) (*core.Jurisdiction, int, error) {
	return s.pipeline.IngestPackFile(ctx, path)
}

// RemoveJurisdiction deletes a jurisdiction and its rules.
func (s *System) RemoveJurisdiction(ctx context.Context, code string) error {
	return s.pipeline.RemoveJurisdiction(ctx, code)
}

// Jurisdictions lists the loaded jurisdictions ordered by code.
func (s *System) Jurisdictions() []core.Jurisdiction {
	return s.store.Jurisdictions()
}

// Analyze checks a document against its jurisdiction's rules.
func (s *System) Analyze(ctx context.Context, document core.Document, opts *engine.RequestOptions) (*engine.Report, error) {
	return s.engine.Analyze(ctx, document, opts)
}

// RuleRepository exposes the persistent rule storage.
func (s *System) RuleRepository() storage.RuleRepository {
	return s.ruleRepo
}
