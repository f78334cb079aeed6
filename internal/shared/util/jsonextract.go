package util

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when the input contains no balanced JSON object.
var ErrNoJSONObject = errors.New("no JSON object found in text")

// ExtractJSONObject finds the first balanced {...} span in free text and parses
// it as JSON. Model responses routinely wrap the payload in prose or markdown
// fences; this strips all of that. Braces inside JSON strings (including escaped
// quotes) do not affect the balance count.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, ErrNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, ErrNoJSONObject
				}
				return json.RawMessage(candidate), nil
			}
		}
	}
	return nil, ErrNoJSONObject
}
