package oracle

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON object out of an oracle reply. Models routinely
// wrap their payload in markdown code fences or surround it with prose, so
// the extraction strips fences first and then falls back to the outermost
// brace pair.
func ExtractJSON(reply string) (string, error) {
	text := strings.TrimSpace(reply)

	if fenced, ok := stripFences(text); ok {
		text = fenced
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object found in reply", ErrMalformedReply)
	}
	return text[start : end+1], nil
}

// stripFences removes a leading ```json (or bare ```) fence and the matching
// closing fence.
func stripFences(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return text, false
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text), true
}
