// Package completion generates shell completion scripts for console commands, their
// sub commands and options.
package completion

import (
	"sort"
	"strings"

	"github.com/napalu/gohelp/errs"
)

// Flag is an option a command accepts. Either name may be empty.
type Flag struct {
	Long        string
	Short       string
	Description string
}

// Names returns the flag as typed on the command line: --long and -s
func (f Flag) Names() []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}

	return names
}

// Command is a completable command. Sub commands are not nested further.
type Command struct {
	Name        string
	Description string
	Flags       []Flag
	SubCommands []Command
}

// Data holds the commands of a program in the order they are offered
type Data struct {
	Commands []Command
}

// Generator renders a completion script for one shell
type Generator interface {
	Generate(program string, data Data) string
}

var generators = map[string]Generator{
	"bash": &BashGenerator{},
	"fish": &FishGenerator{},
	"zsh":  &ZshGenerator{},
}

// GetGenerator returns the generator for shell
func GetGenerator(shell string) (Generator, error) {
	g, ok := generators[strings.ToLower(shell)]
	if !ok {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return g, nil
}

// Shells returns the supported shell names
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for name := range generators {
		shells = append(shells, name)
	}
	sort.Strings(shells)

	return shells
}

// functionName turns program into a valid shell function name
func functionName(program string) string {
	return "_" + strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, program)
}

// singleQuote quotes s for POSIX shells and fish alike
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func escapeFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// zshItem formats a _describe entry "name:description", escaping colons in the name
func zshItem(name, description string) string {
	return singleQuote(strings.ReplaceAll(name, ":", `\:`) + ":" + description)
}
