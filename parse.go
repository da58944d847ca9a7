package yelphelp

import (
	"regexp"
	"strings"
)

var (
	// The leading word of a message is the command keyword.
	commandPattern = regexp.MustCompile(`^\s*(\w+)`)

	// A command word followed by a phone number of up to 11 digits.
	// Trailing punctuation is allowed. e.g. "SearchByPhone 19055555555."
	phoneNumberPattern = regexp.MustCompile(`^\s*\w+\s+(\d{1,11})\b`)
)

// ExtractCommand extracts the leading word of the given text and returns it in lower case.
// Returns false when the text does not start with a word.
func ExtractCommand(text string) (string, bool) {
	matches := commandPattern.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}

	return strings.ToLower(matches[1]), true
}

// ExtractPhoneNumber extracts the phone number that follows the command word.
// Returns false when the second token is not a number of 1 to 11 digits.
func ExtractPhoneNumber(text string) (string, bool) {
	matches := phoneNumberPattern.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}

	return matches[1], true
}

// StripCommand removes the leading command word and returns the rest of the text.
// e.g. "Nearby 1 Main St" becomes "1 Main St"
func StripCommand(text string) string {
	return strings.TrimSpace(commandPattern.ReplaceAllString(text, ""))
}
