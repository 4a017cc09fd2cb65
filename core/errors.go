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

import "errors"

// Domain validation errors
var (
	// ErrUnknownJurisdiction indicates a jurisdiction code with no loaded rule set.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrInvalidDocument indicates a document that is empty or too short to analyze.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidConfiguration indicates an engine configuration value out of range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidRule indicates a Rule failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidJurisdiction indicates a Jurisdiction failed validation.
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")

	// ErrEmptyJurisdictionCode indicates a missing jurisdiction code.
	ErrEmptyJurisdictionCode = errors.New("jurisdiction code cannot be empty")

	// ErrEmptyTopicID indicates a rule without a topic identifier.
	ErrEmptyTopicID = errors.New("topic id cannot be empty")

	// ErrEmptyCitation indicates a rule without a legal citation.
	ErrEmptyCitation = errors.New("citation cannot be empty")

	// ErrEmptySummary indicates a rule without summary text.
	ErrEmptySummary = errors.New("summary cannot be empty")

	// ErrInvalidSeverity indicates an invalid Severity value.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrDuplicateTopic indicates two rules sharing a topic id within one jurisdiction.
	ErrDuplicateTopic = errors.New("duplicate topic id within jurisdiction")
)
