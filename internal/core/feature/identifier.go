package feature

import (
	"strings"
	"unicode"
)

// FactorySeparator joins a factory pid and an instance name into the
// effective pid of a factory configuration.
const FactorySeparator = "~"

// validatePID checks a pid, factory pid or instance name.
func validatePID(field, value string) error {
	if value == "" {
		return &InvalidIdentifierError{Field: field, Value: value, Reason: "cannot be empty"}
	}
	if strings.Contains(value, FactorySeparator) {
		return &InvalidIdentifierError{Field: field, Value: value, Reason: "must not contain the factory separator " + FactorySeparator}
	}
	if i := strings.IndexFunc(value, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }); i >= 0 {
		return &InvalidIdentifierError{Field: field, Value: value, Reason: "must not contain whitespace or control characters"}
	}
	return nil
}

// validateKey accepts keys of the form [A-Za-z_][A-Za-z0-9_.-]*.
func validateKey(key string) error {
	if key == "" {
		return &InvalidKeyError{Key: key}
	}
	for i, r := range key {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && (r == '.' || r == '-' || (r < unicode.MaxASCII && unicode.IsDigit(r))):
		default:
			return &InvalidKeyError{Key: key}
		}
	}
	return nil
}

// JoinFactoryPID joins a factory pid and an instance name.
func JoinFactoryPID(factoryPID, name string) string {
	return factoryPID + FactorySeparator + name
}

// SplitFactoryPID parses a combined factory pid back into its factory pid and
// instance name. It reports false when pid carries no separator or either side
// is empty. Builders never apply it implicitly; see
// NewFactoryConfigurationBuilderFrom.
func SplitFactoryPID(pid string) (factoryPID, name string, ok bool) {
	factoryPID, name, ok = strings.Cut(pid, FactorySeparator)
	if !ok || factoryPID == "" || name == "" {
		return "", "", false
	}
	return factoryPID, name, true
}
