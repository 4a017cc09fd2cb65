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


package retrieval

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/praxislegal/offerlint/ai"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
)

// Default retrieval parameters, applied when a Params field is zero.
const (
	DefaultTopK           = 10
	DefaultSemanticWeight = 0.7
	DefaultKeywordWeight  = 0.3
)

// Params controls a single retrieval run.
type Params struct {
	// TopK bounds the number of nearest rules pulled from the index.
	TopK int

	// MinSimilarity drops candidates whose hybrid score falls below
	// it. Zero keeps everything the index returns.
	MinSimilarity float64

	// SemanticWeight and KeywordWeight blend cosine similarity with
	// keyword overlap. They are independently clamped to [0, 1].
	SemanticWeight float64
	KeywordWeight  float64
}

// withDefaults fills zero fields with the package defaults.
func (p Params) withDefaults() Params {
	if p.TopK <= 0 {
		p.TopK = DefaultTopK
	}
	if p.SemanticWeight == 0 && p.KeywordWeight == 0 {
		p.SemanticWeight = DefaultSemanticWeight
		p.KeywordWeight = DefaultKeywordWeight
	}
	p.SemanticWeight = core.Clamp01(p.SemanticWeight)
	p.KeywordWeight = core.Clamp01(p.KeywordWeight)
	p.MinSimilarity = core.Clamp01(p.MinSimilarity)
	return p
}

// Retriever surfaces rules relevant to a document by blending
// semantic nearest-neighbor search with keyword-overlap scoring.
type Retriever struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a new retriever backed by the provider's embedder.
func NewRetriever(provider ai.AIProvider, opts ...Option) (*Retriever, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Retriever{
		embedder: provider.Embedder(),
		logger:   slog.Default().With("component", "retrieval"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve embeds the document, queries the snapshot's index, scores
// each hit with the hybrid formula and returns the surviving
// candidates ordered by descending score, ties broken by topicID.
func (r *Retriever) Retrieve(ctx context.Context, snapshot *rules.Snapshot, documentText string, params Params) ([]core.CandidateViolation, error) {
	return r.RetrieveWithMonitor(ctx, snapshot, documentText, params, nil)
}

// RetrieveWithMonitor runs Retrieve with callbacks at each stage.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, snapshot *rules.Snapshot, documentText string, params Params, monitor Monitor) ([]core.CandidateViolation, error) {
	if snapshot == nil {
		return nil, ErrSnapshotRequired
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	params = params.withDefaults()

	documentTerms := extractKeywords(documentText)
	monitor.Start(snapshot.Jurisdiction().Code, documentTerms)

	vector, err := r.embedder.EmbedText(ctx, documentText)
	if err != nil {
		r.logger.Error("error generating embedding for document", "err", err)
		return nil, err
	}
	monitor.AfterEmbedding(len(vector))

	matches := snapshot.Query(vector, params.TopK)
	monitor.AfterSemanticSearch(matches)

	candidates := make([]core.CandidateViolation, 0, len(matches))
	for _, m := range matches {
		// Negative cosine similarity carries no evidence of relevance.
		semantic := m.Similarity
		if semantic < 0 {
			semantic = 0
		}

		ruleTerms := ruleVocabulary(m.Rule)
		keyword := keywordOverlap(documentTerms, ruleTerms)
		hybrid := core.Clamp01(params.SemanticWeight*semantic + params.KeywordWeight*keyword)
		monitor.AfterScoring(m.Rule.TopicID, semantic, keyword, hybrid)

		if hybrid < params.MinSimilarity {
			continue
		}

		candidates = append(candidates, core.CandidateViolation{
			JurisdictionCode: m.Rule.JurisdictionCode,
			TopicID:          m.Rule.TopicID,
			Method:           core.MethodRetrieval,
			RawScore:         hybrid,
			BaseConfidence:   hybrid,
			Snippet:          sharedTerm(documentTerms, ruleTerms),
		})
	}

	slices.SortFunc(candidates, func(a, b core.CandidateViolation) int {
		if a.RawScore != b.RawScore {
			if a.RawScore > b.RawScore {
				return -1
			}
			return 1
		}
		return strings.Compare(a.TopicID, b.TopicID)
	})

	monitor.Finish(candidates)
	return candidates, nil
}
