package util

import "strings"

// Indent prefixes every non-empty line of text with n spaces
func Indent(text string, n int) string {
	if n <= 0 || text == "" {
		return text
	}

	prefix := strings.Repeat(" ", n)
	lines := strings.SplitAfter(text, "\n")
	var sb strings.Builder
	sb.Grow(len(text) + len(lines)*n)
	for _, line := range lines {
		if line != "" && line != "\n" {
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
	}

	return sb.String()
}

// ReplaceToken replaces every occurrence of token in s. An empty token leaves s unchanged.
func ReplaceToken(s, token, replacement string) string {
	if token == "" {
		return s
	}

	return strings.ReplaceAll(s, token, replacement)
}
