package model

import "strings"

// ContentValidator decides whether downloaded content should be kept.
// A nil validator keeps everything.
type ContentValidator func(content string) bool

// TermValidator returns a validator that accepts content containing the
// query as an exact phrase, or failing that, all of its whitespace-separated
// terms. Matching is case insensitive. An empty query accepts everything.
func TermValidator(query string) ContentValidator {
	phrase := strings.ToLower(strings.TrimSpace(query))
	terms := strings.Fields(phrase)

	return func(content string) bool {
		if phrase == "" {
			return true
		}

		lower := strings.ToLower(content)
		if strings.Contains(lower, phrase) {
			return true
		}

		for _, term := range terms {
			if !strings.Contains(lower, term) {
				return false
			}
		}

		return true
	}
}
