package services

import "strings"

// feedbackKeywords flag instruction-style messages that should land in the
// review queue even when the extractor classified them as something else.
var feedbackKeywords = []string{
	"should", "must", "always", "include", "exclude", "prefer",
	"use like", "use regex", "wrong", "incorrect", "show",
	"please add", "please use", "make sure",
}

// LooksLikeFeedback reports whether the message reads like a correction or
// instruction rather than a question.
func LooksLikeFeedback(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range feedbackKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
