package gohelp

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/gohelp/errs"
	"github.com/napalu/gohelp/types/orderedmap"
)

// executePrefix marks the methods RegisterCommand dispatches to
const executePrefix = "Execute"

// CommandCatalog resolves command names to the doc comments their help is parsed from
type CommandCatalog interface {
	// Commands returns the command names in registration order
	Commands() []string
	// SubCommands returns the sub command names of a command, nil for plain commands
	SubCommands(name string) []string
	// ResolveDocSource returns the raw doc comment of a command, or of one of its sub
	// commands when sub is not empty
	ResolveDocSource(name, sub string) (string, error)
}

// DocLookup finds the doc comment of a symbol: "Type", "Type.Method" or "Func"
type DocLookup interface {
	Doc(symbol string) (string, bool)
}

// DocMap is a DocLookup backed by a map
type DocMap map[string]string

// Doc returns the doc comment registered for symbol
func (m DocMap) Doc(symbol string) (string, bool) {
	doc, ok := m[symbol]
	return doc, ok
}

// CommandFunc runs a command with its remaining arguments
type CommandFunc func(args []string) error

type command struct {
	doc         string
	run         CommandFunc
	subCommands *orderedmap.OrderedMap[string, *subCommand]
}

type subCommand struct {
	doc string
	run CommandFunc
}

// Registry is the CommandCatalog implementation. It also keeps the functions commands
// run with so a Console can dispatch to them.
type Registry struct {
	commands *orderedmap.OrderedMap[string, *command]
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		commands: orderedmap.NewOrderedMap[string, *command](),
	}
}

// Register adds a command known only by its documentation
func (r *Registry) Register(name, doc string) error {
	return r.RegisterFunc(name, doc, nil)
}

// RegisterFunc adds a command backed by a function
func (r *Registry) RegisterFunc(name, doc string, run CommandFunc) error {
	if r.commands.Has(name) {
		return errs.ErrDuplicateCommand.WithArgs(name)
	}
	r.commands.Set(name, newCommand(doc, run))

	return nil
}

// AddSubCommand documents a sub command of an already registered command
func (r *Registry) AddSubCommand(name, sub, doc string) error {
	return r.AddSubCommandFunc(name, sub, doc, nil)
}

// AddSubCommandFunc adds a sub command backed by a function to an already registered
// command
func (r *Registry) AddSubCommandFunc(name, sub, doc string, run CommandFunc) error {
	cmd, found := r.commands.Get(name)
	if !found {
		return errs.ErrCommandNotFound.WithArgs(name)
	}
	if cmd.subCommands.Has(sub) {
		return errs.ErrDuplicateCommand.WithArgs(name + " " + sub)
	}
	cmd.subCommands.Set(sub, &subCommand{doc: doc, run: run})

	return nil
}

// RegisterCommand adds a command implemented by the methods of cmd. A method named
// Execute runs the command itself, every method Execute<Suffix> becomes the sub command
// strcase.ToKebab(Suffix). All of them must have the signature func([]string) error.
//
// The doc comment of the command is looked up in docs under the type name, the doc
// comment of a sub command under "Type.Method". docs may be nil.
func (r *Registry) RegisterCommand(name string, cmd any, docs DocLookup) error {
	v := reflect.ValueOf(cmd)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return errs.ErrInvalidCommand.WithArgs(name, "nil")
	}
	if r.commands.Has(name) {
		return errs.ErrDuplicateCommand.WithArgs(name)
	}

	typeName := reflect.Indirect(v).Type().Name()
	entry := newCommand(lookupDoc(docs, typeName), nil)

	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !strings.HasPrefix(m.Name, executePrefix) {
			continue
		}
		run, ok := v.Method(i).Interface().(func([]string) error)
		if !ok {
			return errs.ErrInvalidCommandMethod.WithArgs(m.Name, typeName)
		}

		suffix := strings.TrimPrefix(m.Name, executePrefix)
		if suffix == "" {
			entry.run = run
			continue
		}
		entry.subCommands.Set(strcase.ToKebab(suffix), &subCommand{
			doc: lookupDoc(docs, typeName+"."+m.Name),
			run: run,
		})
	}

	if entry.run == nil && entry.subCommands.Len() == 0 {
		return errs.ErrInvalidCommand.WithArgs(name, fmt.Sprintf("%s has no %s methods", typeName, executePrefix))
	}
	r.commands.Set(name, entry)

	return nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	return r.commands.Has(name)
}

// Commands returns the command names in registration order
func (r *Registry) Commands() []string {
	return r.commands.Keys()
}

// SubCommands returns the sub command names of name in registration order
func (r *Registry) SubCommands(name string) []string {
	cmd, found := r.commands.Get(name)
	if !found || cmd.subCommands.Len() == 0 {
		return nil
	}

	return cmd.subCommands.Keys()
}

// ResolveDocSource returns the doc comment of a command or sub command
func (r *Registry) ResolveDocSource(name, sub string) (string, error) {
	cmd, found := r.commands.Get(name)
	if !found {
		return "", errs.ErrCommandNotFound.WithArgs(name)
	}
	if sub == "" {
		return cmd.doc, nil
	}

	s, found := cmd.subCommands.Get(sub)
	if !found {
		return "", errs.ErrSubCommandNotFound.WithArgs(sub, name)
	}

	return s.doc, nil
}

// Resolve returns the function to run for args: a sub command when args[1] names one,
// the command itself otherwise. The remaining arguments are returned along with it.
func (r *Registry) Resolve(args []string) (CommandFunc, []string, error) {
	if len(args) == 0 {
		return nil, nil, errs.ErrCommandNotFound.WithArgs("")
	}

	name := args[0]
	cmd, found := r.commands.Get(name)
	if !found {
		return nil, nil, errs.ErrCommandNotFound.WithArgs(name)
	}

	if len(args) > 1 {
		if s, found := cmd.subCommands.Get(args[1]); found && s.run != nil {
			return s.run, args[2:], nil
		}
	}
	if cmd.run == nil {
		if len(args) > 1 {
			return nil, nil, errs.ErrSubCommandNotFound.WithArgs(args[1], name)
		}
		return nil, nil, errs.ErrCommandNotFound.WithArgs(name)
	}

	return cmd.run, args[1:], nil
}

func newCommand(doc string, run CommandFunc) *command {
	return &command{
		doc:         doc,
		run:         run,
		subCommands: orderedmap.NewOrderedMap[string, *subCommand](),
	}
}

func lookupDoc(docs DocLookup, symbol string) string {
	if docs == nil {
		return ""
	}
	doc, _ := docs.Doc(symbol)

	return doc
}

// NewHelp parses the doc comment of a command, or of one of its sub commands when sub
// is not empty. The help of a command lists the first description line of each of its
// sub commands.
func NewHelp(catalog CommandCatalog, name, sub, program string) (*Help, error) {
	doc, err := catalog.ResolveDocSource(name, sub)
	if err != nil {
		return nil, err
	}

	h := Parse(doc, DefaultSubstitutionToken, program)
	if sub != "" {
		return h, nil
	}

	for _, s := range catalog.SubCommands(name) {
		subDoc, err := catalog.ResolveDocSource(name, s)
		if err != nil {
			return nil, err
		}
		h.AddSubCommand(s, Parse(subDoc, DefaultSubstitutionToken, program).ShortDescription())
	}

	return h, nil
}
