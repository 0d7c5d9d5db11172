package utils

import (
	"regexp"
	"strings"
)

// Gemini wraps JSON in markdown fences more often than not, and under
// token pressure emits bare range tokens ("reps": 8-12), NaN, or trailing
// prose after the closing brace. CleanAIJSON normalizes all of that so the
// result can be handed to encoding/json.

var (
	fenceRe    = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	bareRange  = regexp.MustCompile(`(:\s*)(\d+\s*-\s*\d+)(\s*[,}\]])`)
	nanTokenRe = regexp.MustCompile(`\bNaN\b`)
)

func CleanAIJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Prefer the fenced block if one exists, otherwise strip stray fences.
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	} else {
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
	}
	s = strings.TrimSpace(s)

	// Drop leading chatter before the first brace and trailing garbage
	// after the last closing brace.
	if i := strings.IndexAny(s, "{["); i > 0 {
		s = s[i:]
	}
	if i := strings.LastIndexAny(s, "}]"); i >= 0 && i < len(s)-1 {
		s = s[:i+1]
	}

	// "reps": 8-12 is not valid JSON; quote the range.
	s = bareRange.ReplaceAllString(s, `$1"$2"$3`)

	// The model occasionally writes NaN for unknown numerics.
	s = nanTokenRe.ReplaceAllString(s, "0")

	return s
}
