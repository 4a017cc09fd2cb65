package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored rule records.
// It is derived from content-based hashing, so re-ingesting the same
// (jurisdiction, topic) pair always maps to the same record.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Severity classifies how serious a rule violation is.
type Severity int

const (
	// SeverityInfo marks advisory rules.
	SeverityInfo Severity = iota + 1
	// SeverityWarning marks rules whose violation is risky but not outright unlawful.
	SeverityWarning
	// SeverityError marks rules whose violation is a hard compliance failure.
	SeverityError
)

// String returns the wire representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// DetectionMethod identifies which analysis layer produced a candidate violation.
type DetectionMethod int

const (
	// MethodPattern is the deterministic flagged-phrase scan.
	MethodPattern DetectionMethod = iota + 1
	// MethodRetrieval is the hybrid semantic plus keyword retriever.
	MethodRetrieval
	// MethodGenerative is the language-model deep analysis layer.
	MethodGenerative
)

// String returns the wire representation of the detection method.
func (m DetectionMethod) String() string {
	switch m {
	case MethodPattern:
		return "pattern"
	case MethodRetrieval:
		return "retrieval"
	case MethodGenerative:
		return "generative"
	default:
		return "unknown"
	}
}

// Jurisdiction identifies a namespace of compliance rules, typically a US state.
type Jurisdiction struct {
	Code           string
	Name           string
	RuleSetVersion string
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// Rule is a single compliance requirement with citation, severity, and
// matching hints. Rules are immutable once indexed; re-ingesting the same
// topic within a jurisdiction replaces the prior record.
type Rule struct {
	Id               ID
	JurisdictionCode string
	TopicID          string
	Severity         Severity
	Citation         string
	FlaggedPhrases   []string
	Summary          string
	Suggestion       string
	SourceURL        string
	EffectiveDate    time.Time
	Vector           []float32 // Embedding of EmbeddingText (populated during ingestion)
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// Tuple returns a string representation of the rule as "(JurisdictionCode,TopicID)".
// This is used for generating deterministic record IDs.
func (r *Rule) Tuple() string {
	return "(" + r.JurisdictionCode + "," + r.TopicID + ")"
}

// EmbeddingText returns the text the rule's embedding vector is computed
// from: the topic, the summary, and all flagged phrases, concatenated.
func (r *Rule) EmbeddingText() string {
	parts := make([]string, 0, 2+len(r.FlaggedPhrases))
	parts = append(parts, strings.ReplaceAll(r.TopicID, "_", " "))
	parts = append(parts, r.Summary)
	parts = append(parts, r.FlaggedPhrases...)
	return strings.Join(parts, ". ")
}

// Document is the analysis input. It is request-local and never persisted.
type Document struct {
	Text             string
	JurisdictionCode string
}

// CandidateViolation is an unconfirmed match produced by one detection layer.
// One candidate exists per (method, rule) pairing that fired.
type CandidateViolation struct {
	JurisdictionCode string
	TopicID          string
	Method           DetectionMethod
	RawScore         float64
	BaseConfidence   float64
	Snippet          string // Matched phrase or analyzer explanation, when available
}

// Violation is a fused, ranked output item surfaced to the caller.
// It always references at least one supporting detection method.
type Violation struct {
	TopicID    string
	Severity   Severity
	Confidence float64
	Message    string
	Citation   string
	SourceURL  string
	Methods    []DetectionMethod // Distinct, sorted for deterministic output
}

// Clamp01 clamps v into the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
