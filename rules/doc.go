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


// Package rules owns the in-memory rule collections that analysis
// runs against.
//
// The Store maps jurisdiction codes to immutable Snapshots. A load
// builds a fully validated snapshot, including a cosine index over
// the rules' embedding vectors, and swaps it in atomically; readers
// that grabbed the previous snapshot keep a consistent view for the
// rest of their request. The loader parses curated JSON rule packs
// into core.Rule records ready for embedding and loading.
package rules
