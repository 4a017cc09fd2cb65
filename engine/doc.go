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


// Package engine orchestrates the layered compliance analysis.
//
// A request runs the pattern scan and hybrid retrieval concurrently
// against one rule snapshot, optionally forwards the retrieved
// candidates to the generative analyzer, then fuses all candidate
// violations by topic. Fusion takes the strongest layer's confidence
// and adds a fixed bonus per additional agreeing layer, capped below
// certainty. Violations below the confidence floor are dropped unless
// their rule carries error severity. Output ordering is severity,
// then confidence, then topicId, so identical inputs always produce
// byte-identical reports.
package engine
