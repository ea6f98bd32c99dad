package awards

import "strings"

// andSeparator is the spelled-out list separator used in credit strings.
// The surrounding spaces keep names like "Randy" or "Alexander" intact.
const andSeparator = " and "

// SplitProducers splits a raw producer credit string into individual
// trimmed names. Credits mix commas and the word "and" as separators
// ("A, B and C"). Blank fragments are dropped, so a blank or
// separator-only input yields no names. The function never fails;
// malformed text simply produces fewer names.
func SplitProducers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		for _, candidate := range strings.Split(part, andSeparator) {
			name := strings.TrimSpace(candidate)
			if name == "" {
				continue
			}
			names = append(names, name)
		}
	}
	return names
}
