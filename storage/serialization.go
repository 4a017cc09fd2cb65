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


package storage

import (
	"github.com/praxislegal/offerlint/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalRule serializes a Rule to bytes.
func MarshalRule(rule *core.Rule) []byte {
	buf := make([]byte, core.RuleMUS.Size(*rule))
	core.RuleMUS.Marshal(*rule, buf)
	return buf
}

// UnmarshalRule deserializes a Rule from bytes.
func UnmarshalRule(data []byte) (*core.Rule, error) {
	rule, _, err := core.RuleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// MarshalJurisdiction serializes a Jurisdiction to bytes.
func MarshalJurisdiction(jur *core.Jurisdiction) []byte {
	buf := make([]byte, core.JurisdictionMUS.Size(*jur))
	core.JurisdictionMUS.Marshal(*jur, buf)
	return buf
}

// UnmarshalJurisdiction deserializes a Jurisdiction from bytes.
func UnmarshalJurisdiction(data []byte) (*core.Jurisdiction, error) {
	jur, _, err := core.JurisdictionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &jur, nil
}
