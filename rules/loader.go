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


package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/praxislegal/offerlint/core"
)

// packFile is the on-disk rule pack format produced by the curation
// tooling: one jurisdiction plus its full rule list.
type packFile struct {
	Jurisdiction packJurisdiction `json:"jurisdiction"`
	Rules        []packRule       `json:"rules"`
}

type packJurisdiction struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Version string `json:"ruleSetVersion"`
}

type packRule struct {
	TopicID        string   `json:"topicId"`
	Severity       string   `json:"severity"`
	Citation       string   `json:"citation"`
	FlaggedPhrases []string `json:"flaggedPhrases"`
	Summary        string   `json:"summary"`
	Suggestion     string   `json:"suggestion"`
	SourceURL      string   `json:"sourceUrl,omitempty"`
	EffectiveDate  string   `json:"effectiveDate,omitempty"`
}

// LoadPackFile reads and parses a rule pack from a JSON file.
func LoadPackFile(path string) (core.Jurisdiction, []*core.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Jurisdiction{}, nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidRulePack, path, err)
	}
	return ParsePack(data)
}

// ParsePack parses a JSON rule pack and returns the jurisdiction and
// its validated rules. Rules come back without embedding vectors; the
// ingestion pipeline fills those in before the pack is loaded into a
// store.
func ParsePack(data []byte) (core.Jurisdiction, []*core.Rule, error) {
	var pack packFile
	if err := json.Unmarshal(data, &pack); err != nil {
		return core.Jurisdiction{}, nil, fmt.Errorf("%w: %w", ErrInvalidRulePack, err)
	}

	jurisdiction := core.Jurisdiction{
		Code:           pack.Jurisdiction.Code,
		Name:           pack.Jurisdiction.Name,
		RuleSetVersion: pack.Jurisdiction.Version,
	}
	if err := core.ValidateJurisdiction(&jurisdiction); err != nil {
		return core.Jurisdiction{}, nil, fmt.Errorf("%w: %w", ErrInvalidRulePack, err)
	}

	seen := make(map[string]struct{}, len(pack.Rules))
	ruleList := make([]*core.Rule, 0, len(pack.Rules))
	for i, raw := range pack.Rules {
		severity, err := core.ParseSeverity(raw.Severity)
		if err != nil {
			return core.Jurisdiction{}, nil, fmt.Errorf("%w: rule %d (%s): %w",
				ErrInvalidRulePack, i, raw.TopicID, err)
		}

		rule := &core.Rule{
			JurisdictionCode: jurisdiction.Code,
			TopicID:          raw.TopicID,
			Severity:         severity,
			Citation:         raw.Citation,
			FlaggedPhrases:   raw.FlaggedPhrases,
			Summary:          raw.Summary,
			Suggestion:       raw.Suggestion,
			SourceURL:        raw.SourceURL,
		}

		if raw.EffectiveDate != "" {
			effective, err := parseEffectiveDate(raw.EffectiveDate)
			if err != nil {
				return core.Jurisdiction{}, nil, fmt.Errorf("%w: rule %s: %w",
					ErrInvalidRulePack, raw.TopicID, err)
			}
			rule.EffectiveDate = effective
		}

		if err := core.ValidateRule(rule); err != nil {
			return core.Jurisdiction{}, nil, fmt.Errorf("%w: rule %d: %w", ErrInvalidRulePack, i, err)
		}
		if _, dup := seen[rule.TopicID]; dup {
			return core.Jurisdiction{}, nil, fmt.Errorf("%w: %w: %s",
				ErrInvalidRulePack, core.ErrDuplicateTopic, rule.TopicID)
		}
		seen[rule.TopicID] = struct{}{}

		ruleList = append(ruleList, rule)
	}

	return jurisdiction, ruleList, nil
}

// parseEffectiveDate accepts RFC 3339 timestamps or bare dates, which
// is what curated packs actually contain.
func parseEffectiveDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable effectiveDate %q", value)
	}
	return t, nil
}
