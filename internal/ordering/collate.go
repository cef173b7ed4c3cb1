package ordering

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortNumeric sorts keys in place using numeric collation: digit runs
// compare by value, everything else by the usual collation order.
func SortNumeric(keys []string) {
	collate.New(language.Und, collate.Numeric).SortStrings(keys)
}

// SortedKeys returns the keys of m in numeric collation order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	SortNumeric(keys)
	return keys
}
