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


// Package retrieval finds rules relevant to a document without
// requiring exact phrase matches.
//
// A run embeds the document, pulls the nearest rules from the
// jurisdiction's vector index, then blends each hit's cosine
// similarity with a keyword-overlap score drawn from a fixed
// employment-law vocabulary. Negative similarities are floored at
// zero before blending. The hybrid score doubles as the candidate's
// base confidence, so retrieval confidence tracks its own relevance.
package retrieval
