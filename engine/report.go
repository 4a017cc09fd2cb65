package engine

import "github.com/praxislegal/offerlint/core"

// Risk levels reported in the summary.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Report is the JSON analysis response.
type Report struct {
	JurisdictionCode string      `json:"jurisdictionCode"`
	TotalViolations  int         `json:"totalViolations"`
	Violations       []Violation `json:"violations"`
	Summary          Summary     `json:"summary"`
	Warnings         []string    `json:"warnings,omitempty"`
}

// Violation is one final violation on the wire.
type Violation struct {
	TopicID           string   `json:"topicId"`
	Severity          string   `json:"severity"`
	Confidence        float64  `json:"confidence"`
	Message           string   `json:"message"`
	Citation          string   `json:"citation"`
	SupportingMethods []string `json:"supportingMethods"`
	SourceURL         string   `json:"sourceUrl,omitempty"`
}

// Summary aggregates the outcome of an analysis.
type Summary struct {
	IsCompliant bool   `json:"isCompliant"`
	OverallRisk string `json:"overallRisk"`
}

// buildReport converts fused violations into the wire format, keeping
// their order. Warnings carry non-fatal degradations such as an
// unavailable retrieval or generative layer.
func buildReport(jurisdictionCode string, violations []core.Violation, warnings []string) *Report {
	wire := make([]Violation, 0, len(violations))
	for _, v := range violations {
		methods := make([]string, 0, len(v.Methods))
		for _, method := range v.Methods {
			methods = append(methods, method.String())
		}
		wire = append(wire, Violation{
			TopicID:           v.TopicID,
			Severity:          v.Severity.String(),
			Confidence:        v.Confidence,
			Message:           v.Message,
			Citation:          v.Citation,
			SupportingMethods: methods,
			SourceURL:         v.SourceURL,
		})
	}

	return &Report{
		JurisdictionCode: jurisdictionCode,
		TotalViolations:  len(wire),
		Violations:       wire,
		Summary: Summary{
			IsCompliant: len(wire) == 0,
			OverallRisk: overallRisk(violations),
		},
		Warnings: warnings,
	}
}

// overallRisk maps the worst present severity to a risk level.
func overallRisk(violations []core.Violation) string {
	risk := RiskLow
	for _, v := range violations {
		switch v.Severity {
		case core.SeverityError:
			return RiskHigh
		case core.SeverityWarning:
			risk = RiskMedium
		}
	}
	return risk
}
