package resume

import "strings"

// extractJSON pulls a JSON object out of a model reply that wrapped it in
// markdown fences or surrounding prose. Returns the object text and whether
// one was found.
func extractJSON(s string) (string, bool) {
	s = strings.TrimSpace(s)

	// Fenced block first: ```json ... ``` or plain ``` ... ```.
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			// Drop the language tag line if present.
			tag := strings.TrimSpace(rest[:nl])
			if tag == "" || tag == "json" || tag == "JSON" {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			if obj, ok := firstObject(rest[:end]); ok {
				return obj, true
			}
		}
	}

	return firstObject(s)
}

// firstObject scans for the first balanced top-level JSON object in s.
// Braces inside string literals are ignored.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
