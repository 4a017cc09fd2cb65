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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/praxislegal/offerlint/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Analyzer implements ai.ComplianceAnalyzer using OpenAI-compatible chat APIs.
type Analyzer struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// finding is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type finding struct {
	TopicID     string  `json:"topic_id"`
	Violated    bool    `json:"violated"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// assessment is the wrapper structure for the LLM's JSON response.
type assessment struct {
	Findings []finding `json:"findings"`
}

// newAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAnalyzer(config *ai.Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat analysis
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.AnalyzerHost),
		openai.WithToken("none"),
		openai.WithModel(config.AnalyzerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		client:  client,
		timeout: config.RequestTimeout,
		logger:  slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewAnalyzer creates a new compliance analyzer using the provided configuration.
//
// Returns ai.ComplianceAnalyzer interface to enforce abstraction.
func NewAnalyzer(config *ai.Config) (ai.ComplianceAnalyzer, error) {
	return newAnalyzer(config)
}

// AnalyzeDocument judges each candidate rule against the document using an LLM.
// The call is bounded by the configured request timeout. Response items that
// fail schema validation are discarded individually; a fully unparseable
// response is retried up to 3 times before the error is returned.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, documentText string, candidates []ai.RuleContext) ([]ai.Finding, error) {
	if len(candidates) == 0 {
		return []ai.Finding{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	systemPrompt := buildAnalysisPrompt(candidates)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(documentText),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result assessment
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return []ai.Finding{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyzer response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Validate each item against the submitted candidates; drop invalid
	// entries rather than failing the batch.
	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.TopicID] = true
	}

	findings := make([]ai.Finding, 0, len(result.Findings))
	for _, f := range result.Findings {
		if !known[f.TopicID] {
			a.logger.Warn("analyzer reported unknown topic, discarding", "topic", f.TopicID)
			continue
		}
		if f.Confidence < 0 || f.Confidence > 1 {
			a.logger.Warn("analyzer confidence out of range, discarding",
				"topic", f.TopicID, "confidence", f.Confidence)
			continue
		}
		if !f.Violated {
			continue
		}
		findings = append(findings, ai.Finding{
			TopicID:     f.TopicID,
			Confidence:  f.Confidence,
			Explanation: strings.TrimSpace(f.Explanation),
		})
	}

	a.logger.Debug("analyzed document",
		"candidates", len(candidates),
		"reported", len(result.Findings),
		"violated", len(findings))

	return findings, nil
}
