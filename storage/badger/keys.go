package badger

import "fmt"

// Key prefixes for different record types
const (
	jurisdictionPrefix = "jurrec"
	rulePrefix         = "rulrec"
)

// makeJurisdictionKey generates a key for a jurisdiction by code.
func makeJurisdictionKey(code string) []byte {
	return []byte(fmt.Sprintf("%s:%s", jurisdictionPrefix, code))
}

// makeRuleKey generates a composite key for a rule.
// Format: prefix:jurisdictionCode:topicID
func makeRuleKey(jurisdictionCode, topicID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", rulePrefix, jurisdictionCode, topicID))
}

// makeRuleScanPrefix generates the prefix covering all rules of one jurisdiction.
func makeRuleScanPrefix(jurisdictionCode string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", rulePrefix, jurisdictionCode))
}
