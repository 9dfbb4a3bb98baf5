package template

import "strings"

// Placeholders scans the given texts for well-formed {name} tokens and
// returns the distinct names in first-seen order across all texts.
//
// A token is well-formed when a single opening brace is followed by the next
// closing brace with no brace in between and the content, after trimming
// whitespace, is non-empty. Everything else (unmatched braces, empty or
// whitespace-only content) is skipped silently.
func Placeholders(texts ...string) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, text := range texts {
		for _, name := range scan(text) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

// scan returns the well-formed placeholder names of one text, in order,
// with duplicates preserved.
func scan(text string) []string {
	var names []string
	for _, span := range spans(text) {
		names = append(names, span.name)
	}
	return names
}

// span is one well-formed placeholder occurrence: the byte range of the
// whole {name} token and the trimmed name inside it.
type span struct {
	name       string
	start, end int // text[start:end] including both braces
}

// spans finds every well-formed placeholder occurrence in text. A second
// opening brace before the closing one restarts the candidate at the new
// brace, so "{a{b}" yields only "b".
func spans(text string) []span {
	var out []span

	start := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			start = i
		case '}':
			if start < 0 {
				continue
			}
			name := strings.TrimSpace(text[start+1 : i])
			if name != "" {
				out = append(out, span{name: name, start: start, end: i + 1})
			}
			start = -1
		}
	}

	return out
}
