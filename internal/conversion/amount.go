package conversion

import "regexp"

var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// WellFormedAmount reports whether text is digits with at most one decimal point.
// Empty text and a lone "." are well formed: they are what a user has typed so far.
func WellFormedAmount(text string) bool {
	return amountPattern.MatchString(text)
}

// AcceptAmount returns the text to adopt after an edit: candidate when it is well formed, current otherwise.
func AcceptAmount(current, candidate string) string {
	if WellFormedAmount(candidate) {
		return candidate
	}
	return current
}
