package gohelp

import (
	"strings"

	"github.com/napalu/gohelp/i18n"
	"github.com/napalu/gohelp/internal/messages"
	"github.com/napalu/gohelp/table"
	"github.com/napalu/gohelp/util"
)

const sectionIndent = 2

// Renderer formats a Help as text. Sections without content are left out.
type Renderer struct {
	style Style
	tr    i18n.Translator
}

// NewRenderer returns a renderer using PlainStyle and the default bundle
func NewRenderer() *Renderer {
	return &Renderer{
		style: PlainStyle{},
		tr:    i18n.Default(),
	}
}

// WithStyle sets the style used for headings, names and example code
func (r *Renderer) WithStyle(style Style) *Renderer {
	if style == nil {
		style = PlainStyle{}
	}
	r.style = style
	return r
}

// WithTranslator sets the translator used for section headings
func (r *Renderer) WithTranslator(tr i18n.Translator) *Renderer {
	if tr == nil {
		tr = i18n.Default()
	}
	r.tr = tr
	return r
}

// Style returns the style in use
func (r *Renderer) Style() Style {
	return r.style
}

// Render formats h in this order: description, usage, arguments, options, sub
// commands, long description and examples. The result has no leading or trailing
// blank lines.
func (r *Renderer) Render(h *Help) string {
	var sb strings.Builder

	if h.Description != "" {
		sb.WriteString(h.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString(r.renderUsage(h))
	sb.WriteString(r.renderArgs(h))
	sb.WriteString(r.renderOptions(h))
	sb.WriteString(r.renderSubCommands(h))
	if h.LongDescription != "" {
		sb.WriteString(h.LongDescription)
		sb.WriteString("\n\n")
	}
	sb.WriteString(r.renderExamples(h))

	return strings.Trim(sb.String(), "\n ")
}

// Heading returns the translated, styled heading for key followed by a newline
func (r *Renderer) Heading(key string) string {
	return r.style.Heading(r.tr.T(key)) + "\n"
}

// Table lays out rows without border or frame, styles the names in the given
// columns and indents the result.
func (r *Renderer) Table(rows [][]string, skipEmpty bool, nameColumns ...int) string {
	out := table.RenderDecorated(rows, table.Config{SkipEmptyColumns: skipEmpty}, r.emphasize(nameColumns))

	return util.Indent(out, sectionIndent)
}

func (r *Renderer) renderUsage(h *Help) string {
	if h.Usage == "" {
		return ""
	}

	return r.Heading(messages.HelpUsageKey) + "  " + h.Usage + "\n\n"
}

func (r *Renderer) renderArgs(h *Help) string {
	if h.Args.Len() == 0 {
		return ""
	}

	rows := make([][]string, 0, h.Args.Len())
	for iter := h.Args.Front(); iter != nil; iter = iter.Next() {
		rows = append(rows, []string{iter.Key, iter.Value})
	}

	return r.Heading(messages.HelpArgumentsKey) + r.Table(rows, false, 0) + "\n"
}

func (r *Renderer) renderOptions(h *Help) string {
	if len(h.Options) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(h.Options))
	for _, opt := range h.Options {
		long, short := "", ""
		if opt.LongName != "" {
			long = "--" + opt.LongName
		}
		if opt.ShortFlag != "" {
			short = "-" + opt.ShortFlag
		}
		rows = append(rows, []string{long, short, opt.Description})
	}

	return r.Heading(messages.HelpOptionsKey) + r.Table(rows, true, 0, 1) + "\n"
}

func (r *Renderer) renderSubCommands(h *Help) string {
	if h.SubCommands.Len() == 0 {
		return ""
	}

	rows := make([][]string, 0, h.SubCommands.Len())
	for iter := h.SubCommands.Front(); iter != nil; iter = iter.Next() {
		rows = append(rows, []string{iter.Key, iter.Value})
	}

	return r.Heading(messages.HelpSubCommandsKey) + r.Table(rows, false, 0) + "\n"
}

func (r *Renderer) renderExamples(h *Help) string {
	if len(h.Examples) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.Heading(messages.HelpExamplesKey))
	for _, ex := range h.Examples {
		if ex.Description != "" {
			sb.WriteString("  " + ex.Description + ":\n")
		}
		sb.WriteString("    " + r.style.Code(ex.Code) + "\n\n")
	}

	return sb.String()
}

func (r *Renderer) emphasize(columns []int) table.CellDecorator {
	if _, plain := r.style.(PlainStyle); plain || len(columns) == 0 {
		return nil
	}

	return func(col int, cell string) string {
		for _, c := range columns {
			if c == col {
				name := strings.TrimRight(cell, " ")
				return r.style.Emphasis(name) + cell[len(name):]
			}
		}
		return cell
	}
}
