package gohelp

import (
	"io"
	"os"
	"strings"

	"github.com/napalu/gohelp/errs"
	"github.com/napalu/gohelp/internal/messages"
)

// HelpCommandDoc documents the help command itself
const HelpCommandDoc = "Displays list of commands and help for command.\n" +
	"\n" +
	"@usage $0 help [command_name] [sub_command]\n" +
	"@arg command_name The command name\n" +
	"@arg sub_command A sub command of command_name\n" +
	"\n" +
	"@example `$0 help` Show a list of all commands\n" +
	"@example `$0 help help` Displays help for the help command\n"

// HelpCommand lists the commands of a catalog and shows the help of a single command
type HelpCommand struct {
	catalog  CommandCatalog
	program  string
	writer   io.Writer
	renderer *Renderer
}

// NewHelpCommand creates a help command writing to w with the default renderer.
// A nil writer means os.Stdout.
func NewHelpCommand(catalog CommandCatalog, program string, w io.Writer) *HelpCommand {
	if w == nil {
		w = os.Stdout
	}

	return &HelpCommand{
		catalog:  catalog,
		program:  program,
		writer:   w,
		renderer: NewRenderer(),
	}
}

// SetRenderer replaces the renderer used for output
func (c *HelpCommand) SetRenderer(r *Renderer) *HelpCommand {
	if r != nil {
		c.renderer = r
	}
	return c
}

// Execute prints the command list without arguments, the help of args[0] (or of its
// sub command args[1]) otherwise.
func (c *HelpCommand) Execute(args []string) error {
	var (
		out string
		err error
	)
	if len(args) == 0 {
		out, err = c.Overview()
	} else {
		sub := ""
		if len(args) > 1 {
			sub = args[1]
		}
		out, err = c.CommandHelp(args[0], sub)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(c.writer, out)
	return err
}

// Overview renders the usage line followed by the available commands and the first
// line of their description.
func (c *HelpCommand) Overview() (string, error) {
	var sb strings.Builder
	sb.WriteString(c.renderer.Heading(messages.HelpUsageKey))
	sb.WriteString("  " + c.renderer.tr.T(messages.HelpCommandUsageKey, c.program) + "\n\n")

	rows := make([][]string, 0)
	for _, name := range c.catalog.Commands() {
		h, err := NewHelp(c.catalog, name, "", c.program)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{name, h.ShortDescription()})
	}

	sb.WriteString(c.renderer.Heading(messages.HelpAvailableCommandsKey))
	sb.WriteString(c.renderer.Table(rows, false, 0))
	sb.WriteString("\n")

	return sb.String(), nil
}

// CommandHelp renders the help of a command, or of its sub command when sub is set
func (c *HelpCommand) CommandHelp(name, sub string) (string, error) {
	if name == "" {
		return "", errs.ErrCommandNotFound.WithArgs(name)
	}

	h, err := NewHelp(c.catalog, name, sub, c.program)
	if err != nil {
		return "", err
	}

	return c.renderer.Render(h) + "\n\n", nil
}
