package service

import "strings"

// cleanJSONResponse strips fenced-code markers the completion service
// sometimes wraps its JSON in. A response with no JSON left after cleanup
// degrades to an empty object so the caller parses an empty filter set
// instead of crashing.
func cleanJSONResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.Contains(cleaned, "```") {
		start := strings.IndexAny(cleaned, "{[")
		end := strings.LastIndexAny(cleaned, "}]")
		if start >= 0 && end > start {
			cleaned = cleaned[start : end+1]
		} else {
			// Fenced but no JSON inside; treat as an empty response.
			cleaned = ""
		}
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "{}"
	}
	return cleaned
}
