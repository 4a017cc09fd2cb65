package core

import (
	"errors"
	"testing"
)

func validRule() *Rule {
	return &Rule{
		JurisdictionCode: "CA",
		TopicID:          "non_compete",
		Severity:         SeverityError,
		Citation:         "Cal. Bus. & Prof. Code § 16600",
		FlaggedPhrases:   []string{"non-compete"},
		Summary:          "Non-compete clauses are void in California",
		Suggestion:       "Remove the non-compete clause",
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rule)
		wantErr error
	}{
		{
			name:    "valid rule",
			mutate:  func(r *Rule) {},
			wantErr: nil,
		},
		{
			name:    "missing jurisdiction code",
			mutate:  func(r *Rule) { r.JurisdictionCode = "" },
			wantErr: ErrEmptyJurisdictionCode,
		},
		{
			name:    "missing topic id",
			mutate:  func(r *Rule) { r.TopicID = "" },
			wantErr: ErrEmptyTopicID,
		},
		{
			name:    "invalid severity",
			mutate:  func(r *Rule) { r.Severity = Severity(99) },
			wantErr: ErrInvalidSeverity,
		},
		{
			name:    "missing citation",
			mutate:  func(r *Rule) { r.Citation = "" },
			wantErr: ErrEmptyCitation,
		},
		{
			name:    "missing summary",
			mutate:  func(r *Rule) { r.Summary = "" },
			wantErr: ErrEmptySummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule()
			tt.mutate(rule)

			err := ValidateRule(rule)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRule() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRule) {
				t.Errorf("ValidateRule() = %v, want ErrInvalidRule", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRule() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRule_Nil(t *testing.T) {
	if err := ValidateRule(nil); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("ValidateRule(nil) = %v, want ErrInvalidRule", err)
	}
}

func TestValidateJurisdiction(t *testing.T) {
	if err := ValidateJurisdiction(&Jurisdiction{Code: "CA", Name: "California"}); err != nil {
		t.Errorf("ValidateJurisdiction() = %v, want nil", err)
	}

	if err := ValidateJurisdiction(&Jurisdiction{Name: "Nowhere"}); !errors.Is(err, ErrEmptyJurisdictionCode) {
		t.Errorf("ValidateJurisdiction() = %v, want ErrEmptyJurisdictionCode", err)
	}

	if err := ValidateJurisdiction(nil); !errors.Is(err, ErrInvalidJurisdiction) {
		t.Errorf("ValidateJurisdiction(nil) = %v, want ErrInvalidJurisdiction", err)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"info", SeverityInfo, false},
		{"warning", SeverityWarning, false},
		{"error", SeverityError, false},
		{"ERROR", SeverityError, false},
		{" warning ", SeverityWarning, false},
		{"fatal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSeverity) {
				t.Errorf("ParseSeverity(%q) err = %v, want ErrInvalidSeverity", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSeverity(%q) = (%v, %v), want (%v, nil)", tt.in, got, err, tt.want)
		}
	}
}
