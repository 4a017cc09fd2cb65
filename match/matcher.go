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


package match

import (
	"strings"

	"github.com/praxislegal/offerlint/core"
)

// DefaultBaseConfidence is the confidence assigned to a phrase hit
// when no other detection layer corroborates it.
const DefaultBaseConfidence = 0.5

// Matcher scans document text for literal occurrences of rule
// flagged phrases. It is a pure function of its inputs and safe for
// concurrent use.
type Matcher struct {
	baseConfidence float64
}

// NewMatcher creates a Matcher. A non-positive baseConfidence falls
// back to DefaultBaseConfidence.
func NewMatcher(baseConfidence float64) *Matcher {
	if baseConfidence <= 0 {
		baseConfidence = DefaultBaseConfidence
	}
	return &Matcher{baseConfidence: core.Clamp01(baseConfidence)}
}

// Scan checks every rule's flagged phrases against the normalized
// document text and emits one candidate violation per rule that has
// at least one phrase occurring as a substring. The snippet carries
// the first phrase that matched.
func (m *Matcher) Scan(documentText string, ruleList []*core.Rule) []core.CandidateViolation {
	normalizedDoc := NormalizeText(documentText)
	if normalizedDoc == "" {
		return nil
	}

	var candidates []core.CandidateViolation
	for _, rule := range ruleList {
		phrase, found := m.findPhrase(normalizedDoc, rule.FlaggedPhrases)
		if !found {
			continue
		}
		candidates = append(candidates, core.CandidateViolation{
			JurisdictionCode: rule.JurisdictionCode,
			TopicID:          rule.TopicID,
			Method:           core.MethodPattern,
			RawScore:         1.0,
			BaseConfidence:   m.baseConfidence,
			Snippet:          phrase,
		})
	}
	return candidates
}

// findPhrase returns the first flagged phrase that occurs in the
// normalized document, in its normalized form.
func (m *Matcher) findPhrase(normalizedDoc string, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		normalizedPhrase := NormalizeText(phrase)
		if normalizedPhrase == "" {
			continue
		}
		if strings.Contains(normalizedDoc, normalizedPhrase) {
			return normalizedPhrase, true
		}
	}
	return "", false
}
