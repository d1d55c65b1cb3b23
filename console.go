package gohelp

import (
	"io"
	"os"

	"github.com/napalu/gohelp/errs"
	"github.com/napalu/gohelp/i18n"
	"github.com/napalu/gohelp/internal/cmdline"
)

const helpCommandName = "help"

// Console dispatches command lines to registered commands. A help command is always
// registered under the name "help".
type Console struct {
	program  string
	registry *Registry
	writer   io.Writer
	style    Style
	tr       i18n.Translator
	help     *HelpCommand
}

// ConfigureConsoleFunc is used when defining Console options
type ConfigureConsoleFunc func(c *Console, err *error)

// NewConsole creates a console for program. Without WithStyle the style depends on
// whether the writer is a terminal.
//
//	console, err := gohelp.NewConsole("app",
//		gohelp.WithWriter(os.Stderr),
//		gohelp.WithStyle(gohelp.PlainStyle{}))
func NewConsole(program string, configs ...ConfigureConsoleFunc) (*Console, error) {
	c := &Console{
		program:  program,
		registry: NewRegistry(),
		writer:   os.Stdout,
		tr:       i18n.Default(),
	}

	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return nil, err
		}
	}

	if c.style == nil {
		c.style = NewStyle(c.writer)
	}

	renderer := NewRenderer().WithStyle(c.style).WithTranslator(c.tr)
	c.help = NewHelpCommand(c.registry, program, c.writer).SetRenderer(renderer)
	if err = c.registry.RegisterCommand(helpCommandName, c.help, DocMap{"HelpCommand": HelpCommandDoc}); err != nil {
		return nil, err
	}

	return c, nil
}

// WithWriter sets the output of the help command
func WithWriter(w io.Writer) ConfigureConsoleFunc {
	return func(c *Console, err *error) {
		if w == nil {
			*err = errs.ErrInvalidConfiguration.WithArgs("nil writer")
			return
		}
		c.writer = w
	}
}

// WithStyle sets the style of the help output
func WithStyle(style Style) ConfigureConsoleFunc {
	return func(c *Console, err *error) {
		c.style = style
	}
}

// WithTranslator sets the translator of the help headings
func WithTranslator(tr i18n.Translator) ConfigureConsoleFunc {
	return func(c *Console, err *error) {
		if tr == nil {
			*err = errs.ErrInvalidConfiguration.WithArgs("nil translator")
			return
		}
		c.tr = tr
	}
}

// WithRegistry starts the console from an existing registry, for instance one read
// with LoadRegistryFile. The registry must not define "help".
func WithRegistry(reg *Registry) ConfigureConsoleFunc {
	return func(c *Console, err *error) {
		if reg == nil {
			*err = errs.ErrInvalidConfiguration.WithArgs("nil registry")
			return
		}
		c.registry = reg
	}
}

// Program returns the program name substituted in usage and examples
func (c *Console) Program() string {
	return c.program
}

// Registry returns the catalog of the console
func (c *Console) Registry() *Registry {
	return c.registry
}

// Writer returns the console output
func (c *Console) Writer() io.Writer {
	return c.writer
}

// Register adds a command implemented by Execute methods, see Registry.RegisterCommand
func (c *Console) Register(name string, cmd any, docs DocLookup) error {
	return c.registry.RegisterCommand(name, cmd, docs)
}

// RegisterFunc adds a command backed by a function
func (c *Console) RegisterFunc(name, doc string, run CommandFunc) error {
	return c.registry.RegisterFunc(name, doc, run)
}

// Run dispatches args: the first one names the command, the second one may name a sub
// command. Without arguments the command list is shown.
func (c *Console) Run(args []string) error {
	if len(args) == 0 {
		return c.help.Execute(nil)
	}

	run, rest, err := c.registry.Resolve(args)
	if err != nil {
		return err
	}
	if err = run(rest); err != nil {
		return errs.ErrCommandFailed.WithArgs(args[0]).Wrap(err)
	}

	return nil
}

// RunLine splits line the way the platform shell would and runs the result
func (c *Console) RunLine(line string) error {
	args, err := cmdline.Split(line)
	if err != nil {
		return errs.ErrSplittingCommandLine.WithArgs(line).Wrap(err)
	}

	return c.Run(args)
}
