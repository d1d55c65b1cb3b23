package gohelp

import (
	"io"

	"github.com/fatih/color"
	"github.com/napalu/gohelp/util"
)

// Style decorates already laid out text. It never influences widths: tables apply it
// to padded cells.
type Style interface {
	// Heading decorates a section heading such as "Usage:"
	Heading(s string) string
	// Emphasis decorates names: commands, arguments and flags
	Emphasis(s string) string
	// Code decorates example invocations
	Code(s string) string
}

// PlainStyle leaves text untouched
type PlainStyle struct{}

func (PlainStyle) Heading(s string) string  { return s }
func (PlainStyle) Emphasis(s string) string { return s }
func (PlainStyle) Code(s string) string     { return s }

// ColorStyle renders headings in yellow and names and code in green
type ColorStyle struct {
	heading  *color.Color
	emphasis *color.Color
	code     *color.Color
}

// NewColorStyle returns a ColorStyle that always emits escape sequences
func NewColorStyle() *ColorStyle {
	s := &ColorStyle{
		heading:  color.New(color.FgYellow),
		emphasis: color.New(color.FgGreen),
		code:     color.New(color.FgGreen),
	}
	s.heading.EnableColor()
	s.emphasis.EnableColor()
	s.code.EnableColor()

	return s
}

func (s *ColorStyle) Heading(text string) string  { return s.heading.Sprint(text) }
func (s *ColorStyle) Emphasis(text string) string { return s.emphasis.Sprint(text) }
func (s *ColorStyle) Code(text string) string     { return s.code.Sprint(text) }

// NewStyle picks a ColorStyle when w is a terminal and PlainStyle otherwise
func NewStyle(w io.Writer) Style {
	return newStyle(w, nil)
}

func newStyle(w io.Writer, terminal util.TerminalDetector) Style {
	if util.IsTerminalWriter(w, terminal) {
		return NewColorStyle()
	}

	return PlainStyle{}
}
