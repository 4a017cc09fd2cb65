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
	"fmt"

	"github.com/praxislegal/offerlint/core"
)

// Config holds the analysis thresholds and weights. All ratio fields
// must lie in [0, 1]; Validate rejects anything else before the
// engine accepts a single request.
type Config struct {
	// MinSimilarity drops retrieval candidates below this hybrid
	// score. Kept permissive by default since embedding quality
	// varies between models.
	MinSimilarity float64

	// MinConfidence drops fused violations below this confidence,
	// except error-severity violations, which are always kept.
	MinConfidence float64

	// TopK bounds how many rules the retriever pulls per request.
	TopK int

	// SemanticWeight and KeywordWeight blend cosine similarity with
	// keyword overlap in the retrieval layer.
	SemanticWeight float64
	KeywordWeight  float64

	// AgreementBonus is added to the fused confidence once per
	// additional agreeing detection method.
	AgreementBonus float64

	// PatternBaseConfidence is the confidence a lone phrase hit carries.
	PatternBaseConfidence float64

	// MinDocumentLength rejects documents shorter than this many
	// characters before any processing happens.
	MinDocumentLength int

	// EnableGenerative turns the language-model analysis layer on.
	// The engine always degrades gracefully when the layer fails, so
	// this only controls whether it is attempted at all.
	EnableGenerative bool
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		MinSimilarity:         0.1,
		MinConfidence:         0.3,
		TopK:                  10,
		SemanticWeight:        0.7,
		KeywordWeight:         0.3,
		AgreementBonus:        0.15,
		PatternBaseConfidence: 0.5,
		MinDocumentLength:     40,
		EnableGenerative:      false,
	}
}

// Validate checks every threshold and weight. Any violation is
// reported as core.ErrInvalidConfiguration so callers can fail fast
// at startup instead of at request time.
func (c *Config) Validate() error {
	ratios := []struct {
		name  string
		value float64
	}{
		{"minSimilarity", c.MinSimilarity},
		{"minConfidence", c.MinConfidence},
		{"semanticWeight", c.SemanticWeight},
		{"keywordWeight", c.KeywordWeight},
		{"agreementBonus", c.AgreementBonus},
		{"patternBaseConfidence", c.PatternBaseConfidence},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0,1]",
				core.ErrInvalidConfiguration, r.name, r.value)
		}
	}

	if c.TopK <= 0 {
		return fmt.Errorf("%w: topK must be positive, got %d",
			core.ErrInvalidConfiguration, c.TopK)
	}
	if c.MinDocumentLength < 0 {
		return fmt.Errorf("%w: minDocumentLength must not be negative, got %d",
			core.ErrInvalidConfiguration, c.MinDocumentLength)
	}
	return nil
}

// RequestOptions overrides a subset of the engine configuration for a
// single request. Nil fields keep the configured value.
type RequestOptions struct {
	MinSimilarity *float64
	MinConfidence *float64
	TopK          *int
}

// resolve merges per-request overrides into a copy of the engine
// config, validating the result.
func (c *Config) resolve(opts *RequestOptions) (Config, error) {
	resolved := *c
	if opts == nil {
		return resolved, nil
	}

	if opts.MinSimilarity != nil {
		resolved.MinSimilarity = *opts.MinSimilarity
	}
	if opts.MinConfidence != nil {
		resolved.MinConfidence = *opts.MinConfidence
	}
	if opts.TopK != nil {
		resolved.TopK = *opts.TopK
	}

	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}
