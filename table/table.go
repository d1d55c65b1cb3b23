// Package table lays out rows of text into aligned columns, either tab separated or
// drawn inside an ASCII frame.
//
// Widths are measured in bytes. Cells are left justified and padded with spaces to the
// widest value of their column; rows may have different lengths, missing cells render
// as empty values.
package table

import (
	"io"
	"strings"

	"github.com/napalu/gohelp/errs"
)

const tabWidth = 8

// Config selects how a table is drawn
type Config struct {
	// DrawBorder puts a vertical bar before and after each row and a horizontal rule
	// above and below the table.
	DrawBorder bool
	// DrawFrame pads every cell with a space on each side instead of separating columns
	// with tabs and joins horizontal rules with '+' at each column boundary.
	DrawFrame bool
	// SkipEmptyColumns drops columns whose values are all empty.
	SkipEmptyColumns bool
	// UseHeaderRow draws a horizontal rule below the first row.
	UseHeaderRow bool
}

// CellDecorator is applied to a cell after it was padded to its column width, so
// decorations such as terminal colors never change the layout.
type CellDecorator func(col int, cell string) string

// Render lays out rows according to cfg
func Render(rows [][]string, cfg Config) string {
	return render(rows, cfg, nil)
}

// RenderDecorated lays out rows according to cfg and passes every padded cell through
// decorate.
func RenderDecorated(rows [][]string, cfg Config, decorate CellDecorator) string {
	return render(rows, cfg, decorate)
}

// Widths returns the byte width of every column: the length of its longest value.
func Widths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, value := range row {
			if i >= len(widths) {
				widths = append(widths, make([]int, i-len(widths)+1)...)
			}
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}

	return widths
}

func render(rows [][]string, cfg Config, decorate CellDecorator) string {
	widths := Widths(rows)
	columns := visibleColumns(widths, cfg.SkipEmptyColumns)

	var sb strings.Builder
	drawRules := cfg.DrawBorder || cfg.DrawFrame
	if drawRules {
		sb.WriteString(renderBorder(widths, columns, cfg))
	}

	for i, row := range rows {
		sb.WriteString(renderRow(row, widths, columns, cfg, decorate))
		if i == 0 && cfg.UseHeaderRow {
			sb.WriteString(renderBorder(widths, columns, cfg))
		}
	}

	if drawRules {
		sb.WriteString(renderBorder(widths, columns, cfg))
	}

	return sb.String()
}

func visibleColumns(widths []int, skipEmpty bool) []int {
	columns := make([]int, 0, len(widths))
	for i, w := range widths {
		if skipEmpty && w == 0 {
			continue
		}
		columns = append(columns, i)
	}

	return columns
}

func renderRow(row []string, widths, columns []int, cfg Config, decorate CellDecorator) string {
	padding, separator := "", "\t"
	if cfg.DrawFrame {
		padding, separator = " ", ""
	}

	var sb strings.Builder
	if cfg.DrawBorder {
		sb.WriteString("|")
		if !cfg.DrawFrame {
			sb.WriteString(" ")
		}
	}

	for k, col := range columns {
		if k > 0 {
			sb.WriteString(separator)
		}
		value := ""
		if col < len(row) {
			value = row[col]
		}
		cell := value + strings.Repeat(" ", widths[col]-len(value))
		if decorate != nil {
			cell = decorate(col, cell)
		}
		sb.WriteString(padding)
		sb.WriteString(cell)
		sb.WriteString(padding)
	}

	if cfg.DrawBorder {
		if !cfg.DrawFrame {
			sb.WriteString(" ")
		}
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	return sb.String()
}

func renderBorder(widths, columns []int, cfg Config) string {
	switch {
	case cfg.DrawFrame:
		var sb strings.Builder
		sb.WriteString("+")
		for _, col := range columns {
			sb.WriteString(strings.Repeat("-", widths[col]+2))
			sb.WriteString("+")
		}
		sb.WriteString("\n")
		return sb.String()
	case cfg.DrawBorder:
		length := 0
		for k, col := range columns {
			w := widths[col]
			if k == 0 {
				w++
			}
			length += nextTabStop(w)
		}
		return "+" + strings.Repeat("-", length) + "+\n"
	default:
		return "\n"
	}
}

// nextTabStop returns the next multiple of tabWidth strictly greater than n, the
// column a tab character written at position n moves to. An exact multiple moves a
// full tab further.
func nextTabStop(n int) int {
	return (n/tabWidth + 1) * tabWidth
}

// Table is a renderable table bound to an optional output writer
type Table struct {
	rows     [][]string
	config   Config
	writer   io.Writer
	decorate CellDecorator
}

// ConfigureTableFunc is used when defining Table options
type ConfigureTableFunc func(t *Table, err *error)

// New creates a Table from option functions. The caller should always test for error
// on return because Table will be nil when an option is invalid.
//
//	tbl, err := table.New(
//		table.WithRows(rows),
//		table.WithFrame(true),
//		table.WithBorder(true),
//		table.WithWriter(os.Stdout))
func New(configs ...ConfigureTableFunc) (*Table, error) {
	t := &Table{}

	var err error
	for _, config := range configs {
		config(t, &err)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// WithRows sets the table values
func WithRows(rows [][]string) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.rows = rows
	}
}

// WithConfig replaces the whole layout configuration
func WithConfig(cfg Config) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.config = cfg
	}
}

// WithBorder enables or disables the border
func WithBorder(enabled bool) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.config.DrawBorder = enabled
	}
}

// WithFrame enables or disables the frame
func WithFrame(enabled bool) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.config.DrawFrame = enabled
	}
}

// WithSkipEmptyColumns drops columns without any value
func WithSkipEmptyColumns(enabled bool) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.config.SkipEmptyColumns = enabled
	}
}

// WithHeaderRow treats the first row as a header
func WithHeaderRow(enabled bool) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.config.UseHeaderRow = enabled
	}
}

// WithCellDecorator sets the decorator applied to padded cells
func WithCellDecorator(decorate CellDecorator) ConfigureTableFunc {
	return func(t *Table, err *error) {
		t.decorate = decorate
	}
}

// WithWriter attaches the writer used by Write
func WithWriter(w io.Writer) ConfigureTableFunc {
	return func(t *Table, err *error) {
		if w == nil {
			*err = errs.ErrInvalidConfiguration.WithArgs("nil writer")
			return
		}
		t.writer = w
	}
}

// SetRows replaces the table values
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = rows
	return t
}

// Rows returns the table values
func (t *Table) Rows() [][]string {
	return t.rows
}

// Config returns the layout configuration
func (t *Table) Config() Config {
	return t.config
}

// String renders the table
func (t *Table) String() string {
	return render(t.rows, t.config, t.decorate)
}

// Write renders the table to the attached writer
func (t *Table) Write() error {
	if t.writer == nil {
		return errs.ErrNoWriter
	}

	_, err := io.WriteString(t.writer, t.String())
	return err
}
