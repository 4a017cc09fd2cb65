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


package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/praxislegal/offerlint/ai"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/match"
	"github.com/praxislegal/offerlint/retrieval"
	"github.com/praxislegal/offerlint/rules"
)

// Warning messages attached to degraded responses.
const (
	WarningRetrievalUnavailable  = "retrieval layer unavailable; results limited to pattern matching"
	WarningGenerativeUnavailable = "generative analysis unavailable; results limited to pattern matching and retrieval"
)

// Engine runs the layered compliance analysis: pattern scan and
// hybrid retrieval in parallel, an optional generative pass over the
// retrieved candidates, then confidence fusion. Each request is
// stateless; the only shared state is the rule store, read through an
// immutable snapshot taken once per request.
type Engine struct {
	store     *rules.Store
	matcher   *match.Matcher
	retriever *retrieval.Retriever
	analyzer  ai.ComplianceAnalyzer
	pool      *ants.Pool
	config    *Config
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for the per-request
// detection layers. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// NewEngine creates an analysis engine. The provider supplies the
// embedder for retrieval and, when cfg.EnableGenerative is set, the
// compliance analyzer. A nil cfg uses DefaultConfig.
func NewEngine(store *rules.Store, provider ai.AIProvider, cfg *Config, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrRuleStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(provider)
	if err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		store:     store,
		matcher:   match.NewMatcher(cfg.PatternBaseConfidence),
		retriever: retriever,
		pool:      pool,
		config:    cfg,
		logger:    slog.Default().With("component", "engine"),
	}
	if cfg.EnableGenerative {
		e.analyzer = provider.Analyzer()
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.Release()
			return nil, err
		}
	}

	return e, nil
}

// Release releases the engine's worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Analyze checks a document against its jurisdiction's rules and
// returns the ranked violation report. Retrieval and generative
// failures degrade the result and surface as report warnings;
// document and configuration problems are returned as errors.
func (e *Engine) Analyze(ctx context.Context, document core.Document, opts *RequestOptions) (*Report, error) {
	cfg, err := e.config.resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := e.validateDocument(document, &cfg); err != nil {
		return nil, err
	}

	snapshot, err := e.store.Snapshot(document.JurisdictionCode)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With("request", uuid.NewString(), "jurisdiction", document.JurisdictionCode)
	logger.Debug("starting analysis", "rules", snapshot.Len(), "documentLength", len(document.Text))

	patternCandidates, retrievalCandidates, warnings := e.runDetection(ctx, logger, snapshot, document.Text, &cfg)

	candidates := make([]core.CandidateViolation, 0,
		len(patternCandidates)+len(retrievalCandidates))
	candidates = append(candidates, patternCandidates...)
	candidates = append(candidates, retrievalCandidates...)

	if e.analyzer != nil && len(retrievalCandidates) > 0 {
		generative, generativeErr := e.runGenerative(ctx, snapshot, document.Text, retrievalCandidates)
		if generativeErr != nil {
			logger.Warn("generative analysis failed", "err", generativeErr)
			warnings = append(warnings, WarningGenerativeUnavailable)
		} else {
			candidates = append(candidates, generative...)
		}
	}

	violations := fuse(snapshot, candidates, cfg.AgreementBonus, cfg.MinConfidence)
	logger.Info("analysis complete",
		"candidates", len(candidates),
		"violations", len(violations),
		"warnings", len(warnings))

	return buildReport(document.JurisdictionCode, violations, warnings), nil
}

// validateDocument rejects empty or too-short documents before any
// retrieval or model work happens.
func (e *Engine) validateDocument(document core.Document, cfg *Config) error {
	if document.JurisdictionCode == "" {
		return fmt.Errorf("%w: jurisdiction code is empty", core.ErrInvalidDocument)
	}
	if len(document.Text) < cfg.MinDocumentLength {
		return fmt.Errorf("%w: document length %d below minimum %d",
			core.ErrInvalidDocument, len(document.Text), cfg.MinDocumentLength)
	}
	return nil
}

// runDetection executes the pattern and retrieval layers in parallel
// against the same snapshot. A retrieval failure degrades the result
// to pattern-only and adds a warning; it is never fatal.
func (e *Engine) runDetection(ctx context.Context, logger *slog.Logger, snapshot *rules.Snapshot, documentText string, cfg *Config) (pattern, retrieved []core.CandidateViolation, warnings []string) {
	var wg sync.WaitGroup
	var retrievalErr error

	wg.Add(2)
	e.submit(func() {
		defer wg.Done()
		pattern = e.matcher.Scan(documentText, snapshot.Rules())
	})
	e.submit(func() {
		defer wg.Done()
		retrieved, retrievalErr = e.retriever.Retrieve(ctx, snapshot, documentText, retrieval.Params{
			TopK:           cfg.TopK,
			MinSimilarity:  cfg.MinSimilarity,
			SemanticWeight: cfg.SemanticWeight,
			KeywordWeight:  cfg.KeywordWeight,
		})
	})
	wg.Wait()

	if retrievalErr != nil {
		logger.Warn("retrieval failed", "err", retrievalErr)
		retrieved = nil
		warnings = append(warnings, WarningRetrievalUnavailable)
	}
	return pattern, retrieved, warnings
}

// submit runs the task on the worker pool, falling back to the
// calling goroutine if the pool rejects it.
func (e *Engine) submit(task func()) {
	if err := e.pool.Submit(task); err != nil {
		task()
	}
}

// runGenerative sends the document and the retrieved candidate rules
// to the analyzer and converts its findings into candidates. Findings
// naming topics outside the candidate set were already discarded by
// the analyzer adapter.
func (e *Engine) runGenerative(ctx context.Context, snapshot *rules.Snapshot, documentText string, retrieved []core.CandidateViolation) ([]core.CandidateViolation, error) {
	contexts := make([]ai.RuleContext, 0, len(retrieved))
	for _, candidate := range retrieved {
		rule, ok := snapshot.Rule(candidate.TopicID)
		if !ok {
			continue
		}
		contexts = append(contexts, ai.RuleContext{
			TopicID:        rule.TopicID,
			Summary:        rule.Summary,
			FlaggedPhrases: rule.FlaggedPhrases,
			Citation:       rule.Citation,
		})
	}

	findings, err := e.analyzer.AnalyzeDocument(ctx, documentText, contexts)
	if err != nil {
		return nil, err
	}

	candidates := make([]core.CandidateViolation, 0, len(findings))
	for _, finding := range findings {
		confidence := core.Clamp01(finding.Confidence)
		candidates = append(candidates, core.CandidateViolation{
			JurisdictionCode: snapshot.Jurisdiction().Code,
			TopicID:          finding.TopicID,
			Method:           core.MethodGenerative,
			RawScore:         confidence,
			BaseConfidence:   confidence,
		})
	}
	return candidates, nil
}
