package retrieval

import (
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/rules"
)

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and scores during retrieval.
type Monitor interface {
	Start(jurisdictionCode string, documentKeywords []string)
	AfterEmbedding(dimensions int)
	AfterSemanticSearch(matches []rules.Match)
	AfterScoring(topicID string, semantic, keyword, hybrid float64)
	Finish(candidates []core.CandidateViolation)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []string)                {}
func (n *noopMonitor) AfterEmbedding(_ int)                      {}
func (n *noopMonitor) AfterSemanticSearch(_ []rules.Match)       {}
func (n *noopMonitor) AfterScoring(_ string, _, _, _ float64)    {}
func (n *noopMonitor) Finish(_ []core.CandidateViolation)        {}
