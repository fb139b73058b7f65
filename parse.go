package inifile

import "strings"

// lineKind tags the outcome of classifying one trimmed input line. Anything
// that is neither a comment, a section header nor a key-value pair is
// ignored, never an error.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineComment
	lineSection
	lineEntry
)

// parseStats counts line outcomes for one parse run.
type parseStats struct {
	sections int
	entries  int
	comments int
	ignored  int
}

// classifyLine tags a trimmed line. Comment detection is deliberately
// permissive: a single leading slash is enough, not just "//".
func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return lineIgnored
	case strings.HasPrefix(line, ";"), strings.HasPrefix(line, "#"), strings.HasPrefix(line, "/"):
		return lineComment
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return lineSection
	case strings.Contains(line, "="):
		return lineEntry
	default:
		return lineIgnored
	}
}

// parseLines builds a document from raw text lines.
//
// Comment lines are buffered and flushed into the section that was active
// when the next header (or the end of input) is reached. The unnamed
// placeholder section active before the first header is never flushed, so
// comments preceding any [Section] are dropped. The buffer is reset at
// every header regardless.
func parseLines(lines []string) (*document, parseStats) {
	doc := newDocument()

	var stats parseStats
	var pending []string
	var current string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch classifyLine(line) {
		case lineComment:
			pending = append(pending, line)
			stats.comments++
		case lineSection:
			if current != "" {
				for _, c := range pending {
					doc.appendComment(current, c)
				}
			}
			pending = nil

			current = line[1 : len(line)-1]
			doc.ensure(current)
			stats.sections++
		case lineEntry:
			key, value, _ := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			value = stripQuotes(strings.TrimSpace(value))

			doc.set(current, key, value)
			stats.entries++
		default:
			stats.ignored++
		}
	}

	if current != "" {
		for _, c := range pending {
			doc.appendComment(current, c)
		}
	}

	return doc, stats
}

// stripQuotes removes exactly one layer of double quotes from a value that
// is fully wrapped in them.
func stripQuotes(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}

	return v
}
