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


package core

import (
	"fmt"
	"strings"
)

// ValidateRule validates a Rule according to domain rules.
//
// Validation rules:
//   - JurisdictionCode must not be empty
//   - TopicID must not be empty
//   - Severity must be a valid value
//   - Citation must not be empty
//   - Summary must not be empty
//
// NOT validated (populated during ingestion):
//   - Vector (can be empty until the embedding step runs)
//   - Id (0 is valid before content hashing)
func ValidateRule(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", ErrInvalidRule)
	}

	if rule.JurisdictionCode == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyJurisdictionCode)
	}

	if rule.TopicID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyTopicID)
	}

	if err := ValidateSeverity(rule.Severity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	if rule.Citation == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyCitation)
	}

	if rule.Summary == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptySummary)
	}

	return nil
}

// ValidateJurisdiction validates a Jurisdiction according to domain rules.
func ValidateJurisdiction(jur *Jurisdiction) error {
	if jur == nil {
		return fmt.Errorf("%w: jurisdiction is nil", ErrInvalidJurisdiction)
	}

	if jur.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJurisdiction, ErrEmptyJurisdictionCode)
	}

	return nil
}

// ValidateSeverity validates that a Severity has a valid value.
func ValidateSeverity(severity Severity) error {
	if severity != SeverityInfo && severity != SeverityWarning && severity != SeverityError {
		return fmt.Errorf("%w: value %d", ErrInvalidSeverity, severity)
	}
	return nil
}

// ParseSeverity converts the wire representation of a severity back to its value.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
	}
}
