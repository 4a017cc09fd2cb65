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
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/praxislegal/offerlint/core"
)

// Store holds the active rule snapshots, one per jurisdiction.
// Loading a jurisdiction builds a complete new snapshot and swaps it
// in under the lock; readers holding an older snapshot keep using it
// until they finish, so reads never observe a partially built index.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	logger    *slog.Logger
}

// Snapshot is an immutable view of one jurisdiction's rules and their
// embedding index. It is safe for concurrent use and never mutated
// after construction.
type Snapshot struct {
	jurisdiction core.Jurisdiction
	rules        []*core.Rule
	byTopic      map[string]*core.Rule
	index        *vectorIndex
}

// NewStore creates an empty rule store.
func NewStore() *Store {
	return &Store{
		snapshots: make(map[string]*Snapshot),
		logger:    slog.Default().With("component", "rulestore"),
	}
}

// LoadJurisdiction validates the given rules and atomically replaces
// the jurisdiction's snapshot. An empty rule set is allowed; queries
// against it simply return no matches. Rules must all carry the
// jurisdiction's code and topicIds must be unique within it.
func (s *Store) LoadJurisdiction(jurisdiction core.Jurisdiction, ruleList []*core.Rule) error {
	if err := core.ValidateJurisdiction(&jurisdiction); err != nil {
		return err
	}

	byTopic := make(map[string]*core.Rule, len(ruleList))
	sorted := make([]*core.Rule, 0, len(ruleList))
	for _, rule := range ruleList {
		if err := core.ValidateRule(rule); err != nil {
			return err
		}
		if rule.JurisdictionCode != jurisdiction.Code {
			return fmt.Errorf("%w: rule %s belongs to jurisdiction %s, loading %s",
				core.ErrInvalidRule, rule.TopicID, rule.JurisdictionCode, jurisdiction.Code)
		}
		if _, exists := byTopic[rule.TopicID]; exists {
			return fmt.Errorf("%w: %s in jurisdiction %s",
				core.ErrDuplicateTopic, rule.TopicID, jurisdiction.Code)
		}
		byTopic[rule.TopicID] = rule
		sorted = append(sorted, rule)
	}

	slices.SortFunc(sorted, func(a, b *core.Rule) int {
		return strings.Compare(a.TopicID, b.TopicID)
	})

	snapshot := &Snapshot{
		jurisdiction: jurisdiction,
		rules:        sorted,
		byTopic:      byTopic,
		index:        buildIndex(sorted),
	}

	s.mu.Lock()
	s.snapshots[jurisdiction.Code] = snapshot
	s.mu.Unlock()

	s.logger.Info("jurisdiction loaded",
		"code", jurisdiction.Code,
		"rules", len(sorted),
		"indexed", len(snapshot.index.entries))
	return nil
}

// Snapshot returns the active snapshot for a jurisdiction, or
// core.ErrUnknownJurisdiction if none is loaded. The returned snapshot
// stays valid even if the jurisdiction is reloaded concurrently.
func (s *Store) Snapshot(code string) (*Snapshot, error) {
	s.mu.RLock()
	snapshot, ok := s.snapshots[code]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownJurisdiction, code)
	}
	return snapshot, nil
}

// Query is a convenience wrapper that resolves the jurisdiction's
// snapshot and runs a similarity query against it.
func (s *Store) Query(code string, queryVector []float32, topK int) ([]Match, error) {
	snapshot, err := s.Snapshot(code)
	if err != nil {
		return nil, err
	}
	return snapshot.Query(queryVector, topK), nil
}

// RemoveJurisdiction drops a jurisdiction's snapshot. Removing a
// jurisdiction that is not loaded is a no-op.
func (s *Store) RemoveJurisdiction(code string) {
	s.mu.Lock()
	_, existed := s.snapshots[code]
	delete(s.snapshots, code)
	s.mu.Unlock()

	if existed {
		s.logger.Info("jurisdiction removed", "code", code)
	}
}

// Jurisdictions returns the loaded jurisdictions ordered by code.
func (s *Store) Jurisdictions() []core.Jurisdiction {
	s.mu.RLock()
	result := make([]core.Jurisdiction, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		result = append(result, snapshot.jurisdiction)
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b core.Jurisdiction) int {
		return strings.Compare(a.Code, b.Code)
	})
	return result
}

// Jurisdiction returns the snapshot's jurisdiction record.
func (s *Snapshot) Jurisdiction() core.Jurisdiction {
	return s.jurisdiction
}

// Rules returns the snapshot's rules ordered by topicID. Callers must
// not modify the returned slice or the rules it points to.
func (s *Snapshot) Rules() []*core.Rule {
	return s.rules
}

// Rule looks up a rule by topicID.
func (s *Snapshot) Rule(topicID string) (*core.Rule, bool) {
	rule, ok := s.byTopic[topicID]
	return rule, ok
}

// Len returns the number of rules in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.rules)
}

// Query returns up to topK rules ordered by descending cosine
// similarity to the query vector, ties broken by ascending topicID.
// Similarities are raw cosine values in [-1, 1].
func (s *Snapshot) Query(queryVector []float32, topK int) []Match {
	scored := s.index.search(queryVector, topK)
	matches := make([]Match, 0, len(scored))
	for _, hit := range scored {
		rule, ok := s.byTopic[hit.topicID]
		if !ok {
			continue
		}
		matches = append(matches, Match{Rule: rule, Similarity: hit.similarity})
	}
	return matches
}
