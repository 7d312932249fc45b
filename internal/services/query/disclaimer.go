package query

import "strings"

// Disclaimer is the fixed sentence appended to answers that lack one
const Disclaimer = "\n\n⚠️ **Medical Disclaimer**: This information is for educational " +
	"purposes only and should not replace professional medical advice. Please consult " +
	"with a healthcare provider for medical concerns."

// disclaimerKeywords mark text that already carries disclaimer-like language
var disclaimerKeywords = []string{
	"disclaimer",
	"consult",
	"healthcare professional",
	"medical advice",
	"professional medical",
	"seek medical",
}

// ContainsDisclaimer reports whether the text already carries a recognizable
// medical disclaimer phrase
func ContainsDisclaimer(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range disclaimerKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// EnsureDisclaimer appends the fixed disclaimer unless one is already present
func EnsureDisclaimer(text string) string {
	if ContainsDisclaimer(text) {
		return text
	}
	return text + Disclaimer
}
