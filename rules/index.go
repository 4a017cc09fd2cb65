package rules

import (
	"math"
	"slices"
	"strings"

	"github.com/praxislegal/offerlint/core"
)

// Match is a single similarity hit returned by a snapshot query.
// Similarity is raw cosine similarity in [-1, 1]; callers decide how
// to clamp or weight it.
type Match struct {
	Rule       *core.Rule
	Similarity float64
}

// vectorIndex is an immutable cosine index over a jurisdiction's rule
// embeddings. Entries are normalized to unit length at build time so
// similarity reduces to a dot product.
type vectorIndex struct {
	entries []indexEntry
}

type indexEntry struct {
	topicID string
	vector  []float32
}

// buildIndex constructs an index from the given rules. Rules without
// an embedding vector are skipped; an index over zero rules is valid
// and returns no matches.
func buildIndex(ruleList []*core.Rule) *vectorIndex {
	idx := &vectorIndex{}
	for _, rule := range ruleList {
		if len(rule.Vector) == 0 {
			continue
		}
		idx.entries = append(idx.entries, indexEntry{
			topicID: rule.TopicID,
			vector:  NormalizeVector(rule.Vector),
		})
	}
	return idx
}

// search returns up to topK entries ordered by descending similarity,
// with ties broken by ascending topicID so identical inputs always
// produce identical orderings.
func (idx *vectorIndex) search(queryVector []float32, topK int) []scoredTopic {
	if topK <= 0 || len(idx.entries) == 0 || len(queryVector) == 0 {
		return nil
	}

	normalized := NormalizeVector(queryVector)

	scored := make([]scoredTopic, 0, len(idx.entries))
	for _, entry := range idx.entries {
		if len(entry.vector) != len(normalized) {
			continue
		}
		scored = append(scored, scoredTopic{
			topicID:    entry.topicID,
			similarity: dotProduct(normalized, entry.vector),
		})
	}

	slices.SortFunc(scored, func(a, b scoredTopic) int {
		if a.similarity != b.similarity {
			if a.similarity > b.similarity {
				return -1
			}
			return 1
		}
		return strings.Compare(a.topicID, b.topicID)
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

type scoredTopic struct {
	topicID    string
	similarity float64
}

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	// Can't normalize zero vector
	if magnitude == 0 {
		result := make([]float32, len(v))
		return result
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// dotProduct computes the dot product of two equal-length vectors.
// For unit vectors this equals cosine similarity.
func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
