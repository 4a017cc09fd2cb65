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


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses:
// unquoted object keys and trailing commas before a closing bracket.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+32)

	inString := false
	for i := 0; i < len(in); i++ {
		ch := in[i]

		if inString {
			out = append(out, ch)
			if ch == '\\' && i+1 < len(in) {
				i++
				out = append(out, in[i])
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
			out = append(out, ch)

		case ',':
			// Drop a trailing comma if the next non-space rune closes a scope
			j := skipSpace(in, i+1)
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				continue
			}
			out = append(out, ch)
			i = emitBareKey(in, i, &out)

		case '{':
			out = append(out, ch)
			i = emitBareKey(in, i, &out)

		default:
			out = append(out, ch)
		}
	}

	return string(out)
}

// emitBareKey scans forward from position i for an unquoted identifier
// followed by ':'. If one is found, the identifier is appended quoted and the
// new scan position is returned; otherwise nothing is emitted and i is
// returned unchanged.
func emitBareKey(in []rune, i int, out *[]rune) int {
	j := skipSpace(in, i+1)

	start := j
	for j < len(in) && (isLetter(in[j]) || in[j] == '_') {
		j++
	}
	if j == start || j >= len(in) || in[j] != ':' {
		return i
	}

	*out = append(*out, in[i+1:start]...)
	*out = append(*out, '"')
	*out = append(*out, in[start:j]...)
	*out = append(*out, '"')
	return j - 1
}

// skipSpace returns the index of the first non-whitespace rune at or after i.
func skipSpace(in []rune, i int) int {
	for i < len(in) && (in[i] == ' ' || in[i] == '\t' || in[i] == '\n' || in[i] == '\r') {
		i++
	}
	return i
}
