package openai

import (
	"fmt"
	"strings"

	"github.com/praxislegal/offerlint/ai"
)

const analysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "findings": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "topic_id": {
            "type": "string"
          },
          "violated": {
            "type": "boolean"
          },
          "confidence": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          },
          "explanation": {
            "type": "string"
          }
        },
        "required": ["topic_id", "violated", "confidence", "explanation"],
        "additionalProperties": false
      }
    }
  },
  "required": ["findings"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `You are a compliance reviewer for employment offer letters. The user message is the
full text of an offer letter. Judge the letter against each of the candidate rules listed
below, and return your findings as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Candidate rules:
%s

Rules:
- Include exactly one finding per candidate rule, and copy the candidate's topic_id verbatim.
- Set "violated" to true only if the letter's text actually conflicts with the rule; the mere presence of
  a related topic is not a violation.
- Confidence is a number from 0 (pure guess) to 1 (certain). Rate how sure you are about the violated judgment.
- The explanation must be one or two sentences quoting or paraphrasing the offending passage when violated,
  or stating why the letter is clear of the rule when not.
- Judge only against the listed candidate rules. Do not invent rules or findings for other topics.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildAnalysisPrompt renders the system prompt with the schema and the
// candidate rule descriptions.
func buildAnalysisPrompt(candidates []ai.RuleContext) string {
	var sb strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&sb, "%d. topic_id: %s\n", i+1, c.TopicID)
		fmt.Fprintf(&sb, "   requirement: %s\n", c.Summary)
		if c.Citation != "" {
			fmt.Fprintf(&sb, "   citation: %s\n", c.Citation)
		}
		if len(c.FlaggedPhrases) > 0 {
			fmt.Fprintf(&sb, "   typical phrasing: %s\n", strings.Join(c.FlaggedPhrases, "; "))
		}
	}
	return fmt.Sprintf(analysisPromptTemplate, analysisResponseSchema, sb.String())
}
