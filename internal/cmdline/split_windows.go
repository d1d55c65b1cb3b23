// Package cmdline splits a console line into arguments the way the platform shell does.
package cmdline

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Split breaks s into arguments following cmd.exe conventions: double quotes group,
// '^' escapes the next character outside quotes, backslashes only escape quotes and
// %VAR% expands environment variables outside quotes. Single quotes group as well.
func Split(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("invalid UTF-8 in %q", s)
	}

	sp := splitter{input: s}
	for sp.pos < len(sp.input) {
		sp.step()
	}
	if sp.quote != 0 {
		return nil, fmt.Errorf("missing closing quote in %q", s)
	}
	sp.flush()

	return sp.args, nil
}

type splitter struct {
	input   string
	pos     int
	quote   byte
	started bool
	current strings.Builder
	args    []string
}

func (sp *splitter) step() {
	c := sp.input[sp.pos]
	switch {
	case c == '\\':
		sp.backslashes()
	case sp.quote != 0 && c == sp.quote:
		sp.quote = 0
		sp.pos++
	case sp.quote != 0:
		sp.write(c)
	case c == '"' || c == '\'':
		sp.quote = c
		sp.started = true
		sp.pos++
	case c == '^' && sp.pos+1 < len(sp.input):
		sp.pos++
		sp.write(sp.input[sp.pos])
	case c == '%':
		sp.variable()
	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		sp.flush()
		sp.pos++
	default:
		sp.write(c)
	}
}

func (sp *splitter) write(c byte) {
	sp.current.WriteByte(c)
	sp.started = true
	sp.pos++
}

// backslashes handles a run of backslashes: before a double quote every pair yields one
// backslash and an odd one escapes the quote, anywhere else they are literal.
func (sp *splitter) backslashes() {
	n := 0
	for sp.pos < len(sp.input) && sp.input[sp.pos] == '\\' {
		n++
		sp.pos++
	}
	sp.started = true

	if sp.pos >= len(sp.input) || sp.input[sp.pos] != '"' {
		sp.current.WriteString(strings.Repeat(`\`, n))
		return
	}

	sp.current.WriteString(strings.Repeat(`\`, n/2))
	if n%2 == 1 {
		sp.write('"')
	}
}

func (sp *splitter) variable() {
	end := strings.IndexByte(sp.input[sp.pos+1:], '%')
	if end < 0 {
		sp.write('%')
		return
	}

	name := sp.input[sp.pos+1 : sp.pos+1+end]
	sp.current.WriteString(os.Getenv(name))
	sp.started = true
	sp.pos += end + 2
}

func (sp *splitter) flush() {
	if sp.started {
		sp.args = append(sp.args, sp.current.String())
	}
	sp.current.Reset()
	sp.started = false
}
