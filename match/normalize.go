package match

import "strings"

var dashReplacer = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// NormalizeText lowercases text, folds unicode dash variants to the
// ASCII hyphen, and collapses runs of whitespace to single spaces.
// Applying it to both document and phrase makes the phrase scan
// insensitive to case and formatting differences.
func NormalizeText(text string) string {
	lowered := strings.ToLower(text)
	dashed := dashReplacer.Replace(lowered)
	return strings.Join(strings.Fields(dashed), " ")
}
