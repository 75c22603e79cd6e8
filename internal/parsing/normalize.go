package parsing

import "strings"

// Normalize collapses a raw extracted document into canonical plain text:
// control characters become spaces, runs of spaces and tabs collapse to one
// space, runs of newlines collapse to one newline, and each line is trimmed.
// Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Normalize line endings first so CR never survives as a control char.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' {
			sb.WriteRune(r)
			continue
		}
		if isControl(r) {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}

	lines := strings.Split(sb.String(), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}

// isControl reports whether r falls in the C0/C1 control ranges (plus DEL).
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7F && r <= 0x9F)
}

// splitLines returns the non-empty trimmed lines of normalized text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
