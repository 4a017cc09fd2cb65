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
	"slices"
	"strings"

	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
)

// confidenceCeiling caps fused confidence; no amount of method
// agreement produces certainty.
const confidenceCeiling = 0.99

// fuse merges candidate violations from all detection layers into the
// final ranked list. It is a pure function of its inputs: permuting
// the candidates never changes the result.
func fuse(snapshot *rules.Snapshot, candidates []core.CandidateViolation, agreementBonus, minConfidence float64) []core.Violation {
	groups := make(map[string][]core.CandidateViolation)
	for _, candidate := range candidates {
		groups[candidate.TopicID] = append(groups[candidate.TopicID], candidate)
	}

	violations := make([]core.Violation, 0, len(groups))
	for topicID, group := range groups {
		rule, ok := snapshot.Rule(topicID)
		if !ok {
			// A candidate referencing an unloaded rule is dropped
			// without disturbing the rest of the request.
			continue
		}

		methods, base := distinctMethods(group)
		// A single method's confidence passes through unmodified; the
		// ceiling only applies once agreement raises it.
		confidence := base
		if len(methods) > 1 {
			confidence = min(confidenceCeiling, base+float64(len(methods)-1)*agreementBonus)
		}
		confidence = core.Clamp01(confidence)

		if confidence < minConfidence && rule.Severity != core.SeverityError {
			continue
		}

		violations = append(violations, core.Violation{
			TopicID:    topicID,
			Severity:   rule.Severity,
			Confidence: confidence,
			Message:    buildMessage(rule, bestSnippet(group)),
			Citation:   rule.Citation,
			SourceURL:  rule.SourceURL,
			Methods:    methods,
		})
	}

	slices.SortFunc(violations, func(a, b core.Violation) int {
		if a.Severity != b.Severity {
			return int(b.Severity) - int(a.Severity)
		}
		if a.Confidence != b.Confidence {
			if a.Confidence > b.Confidence {
				return -1
			}
			return 1
		}
		return strings.Compare(a.TopicID, b.TopicID)
	})

	return violations
}

// distinctMethods returns the sorted set of supporting methods and
// the maximum base confidence across the group.
func distinctMethods(group []core.CandidateViolation) ([]core.DetectionMethod, float64) {
	seen := make(map[core.DetectionMethod]bool, len(group))
	var methods []core.DetectionMethod
	var base float64
	for _, candidate := range group {
		if !seen[candidate.Method] {
			seen[candidate.Method] = true
			methods = append(methods, candidate.Method)
		}
		confidence := core.Clamp01(candidate.BaseConfidence)
		if confidence > base {
			base = confidence
		}
	}
	slices.Sort(methods)
	return methods, base
}

// bestSnippet picks the group's snippet by method priority, so the
// choice does not depend on candidate order. Pattern snippets are
// literal matched phrases and win over retrieval keyword hits.
func bestSnippet(group []core.CandidateViolation) string {
	var best string
	var bestMethod core.DetectionMethod
	for _, candidate := range group {
		if candidate.Snippet == "" {
			continue
		}
		if best == "" || candidate.Method < bestMethod {
			best = candidate.Snippet
			bestMethod = candidate.Method
		}
	}
	return best
}

// buildMessage renders the violation message from the rule's summary
// and suggestion, naming the matched snippet when one exists.
func buildMessage(rule *core.Rule, snippet string) string {
	var b strings.Builder
	b.WriteString(rule.Summary)
	if snippet != "" {
		fmt.Fprintf(&b, " Detected language: %q.", snippet)
	}
	if rule.Suggestion != "" {
		b.WriteString(" ")
		b.WriteString(rule.Suggestion)
	}
	return b.String()
}
