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


// Package ingestion moves rule packs from disk into the system: it
// parses a pack, embeds every rule's descriptive text in concurrent
// batches, persists the result, and loads the jurisdiction into the
// live rule store in one snapshot swap. Reload replays persisted
// jurisdictions into the store at startup without re-embedding.
package ingestion
