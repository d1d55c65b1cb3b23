package gohelp

import (
	"regexp"
	"strings"

	"github.com/napalu/gohelp/util"
)

var (
	usageTag   = regexp.MustCompile(`^@usage\s+(.+)$`)
	argTag     = regexp.MustCompile(`^@arg\s+(\S+)(?:\s+(.*))?$`)
	optTag     = regexp.MustCompile(`^@opt(?:\s+(?:--)?([A-Za-z0-9_=][A-Za-z0-9_=-]*))?(?:\s+-(\w))?(?:\s+(.*))?$`)
	flagTag    = regexp.MustCompile(`^@flag\s+-?([A-Za-z0-9])(?:\s+(.*))?$`)
	exampleTag = regexp.MustCompile("^@example\\s+`([^`]+)`(?:\\s+(.*))?$")
	anyTag     = regexp.MustCompile(`^@[A-Za-z0-9_-]+`)
	blankRun   = regexp.MustCompile(`\n\n+`)
)

// Parse extracts a Help from a doc comment. Every occurrence of token in @usage and
// @example text is replaced by program.
//
// Comment delimiters (/* or /** and */) are removed when present and each line is
// stripped of surrounding whitespace and leading '*'. Tag lines are recognised at the
// start of a line; unknown tags are dropped and tag lines that do not match their
// grammar are treated like unknown tags. Everything else is description text.
//
// The description is split on its first blank line: the first paragraph becomes
// Description, the rest LongDescription. Parse never fails.
func Parse(rawText, token, program string) *Help {
	h := NewEmptyHelp()

	var desc []string
	for _, line := range commentLines(rawText) {
		if !parseTagLine(h, line, token, program) {
			desc = append(desc, line)
		}
	}

	description := strings.Trim(strings.Join(desc, "\n"), "\n ")
	if loc := blankRun.FindStringIndex(description); loc != nil {
		h.Description = strings.TrimRight(description[:loc[0]], " ")
		h.LongDescription = description[loc[1]:]
	} else {
		h.Description = description
	}

	return h
}

// parseTagLine applies line to h when it is a tag line and reports whether it was one
func parseTagLine(h *Help, line, token, program string) bool {
	if !strings.HasPrefix(line, "@") {
		return false
	}

	if m := usageTag.FindStringSubmatch(line); m != nil {
		h.Usage = util.ReplaceToken(m[1], token, program)
		return true
	}

	if m := argTag.FindStringSubmatch(line); m != nil {
		h.Args.Set(m[1], m[2])
		return true
	}

	if m := optTag.FindStringSubmatch(line); m != nil && (m[1] != "" || m[2] != "" || m[3] != "") {
		h.Options = append(h.Options, Option{LongName: m[1], ShortFlag: m[2], Description: m[3]})
		return true
	}

	if m := flagTag.FindStringSubmatch(line); m != nil {
		h.Options = append(h.Options, Option{ShortFlag: m[1], Description: m[2]})
		return true
	}

	if m := exampleTag.FindStringSubmatch(line); m != nil {
		h.Examples = append(h.Examples, Example{
			Code:        util.ReplaceToken(m[1], token, program),
			Description: m[2],
		})
		return true
	}

	return anyTag.MatchString(line)
}

// commentLines strips the comment delimiters and the decoration of every line
func commentLines(rawText string) []string {
	text := strings.TrimSpace(rawText)
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(strings.TrimSpace(line), "* ")
	}

	return lines
}
