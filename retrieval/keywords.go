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
	"strings"

	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/match"
)

// domainVocabulary is the fixed set of employment-offer topic terms
// the keyword layer recognizes. Terms are normalized the same way
// document text is, so matching is a plain substring check. Order is
// fixed to keep extraction output deterministic.
var domainVocabulary = []string{
	"non-compete",
	"noncompete",
	"covenant not to compete",
	"agree not to compete",
	"non-solicitation",
	"solicit employees",
	"salary history",
	"prior compensation",
	"previous salary",
	"pay transparency",
	"salary range",
	"pay scale",
	"arbitration",
	"binding arbitration",
	"waive the right to a jury",
	"class action waiver",
	"at-will",
	"at will employment",
	"terminate at any time",
	"severance",
	"garden leave",
	"background check",
	"credit check",
	"criminal history",
	"drug test",
	"confidentiality",
	"non-disclosure",
	"trade secrets",
	"intellectual property",
	"invention assignment",
	"overtime",
	"exempt status",
	"meal and rest breaks",
	"probationary period",
	"stock options",
	"vesting schedule",
	"clawback",
}

// extractKeywords returns the vocabulary terms present in the
// document, in vocabulary order, without duplicates.
func extractKeywords(documentText string) []string {
	normalized := match.NormalizeText(documentText)
	if normalized == "" {
		return nil
	}

	var found []string
	for _, term := range domainVocabulary {
		if strings.Contains(normalized, term) {
			found = append(found, term)
		}
	}
	return found
}

// ruleVocabulary returns the vocabulary terms present in a rule's
// topic, flagged phrases, or summary.
func ruleVocabulary(rule *core.Rule) map[string]bool {
	var parts []string
	parts = append(parts, strings.ReplaceAll(rule.TopicID, "_", " "))
	parts = append(parts, rule.FlaggedPhrases...)
	parts = append(parts, rule.Summary)
	normalized := match.NormalizeText(strings.Join(parts, ". "))

	terms := make(map[string]bool)
	for _, term := range domainVocabulary {
		if strings.Contains(normalized, term) {
			terms[term] = true
		}
	}
	return terms
}

// keywordOverlap scores a rule against the document's extracted
// keywords: the fraction of document keywords that also belong to the
// rule's vocabulary. A document with no recognized keywords scores 0
// for every rule.
func keywordOverlap(documentTerms []string, ruleTerms map[string]bool) float64 {
	if len(documentTerms) == 0 || len(ruleTerms) == 0 {
		return 0
	}

	shared := 0
	for _, term := range documentTerms {
		if ruleTerms[term] {
			shared++
		}
	}
	return float64(shared) / float64(len(documentTerms))
}

// sharedTerm returns the first document keyword that belongs to the
// rule's vocabulary, for use as the candidate's snippet.
func sharedTerm(documentTerms []string, ruleTerms map[string]bool) string {
	for _, term := range documentTerms {
		if ruleTerms[term] {
			return term
		}
	}
	return ""
}
