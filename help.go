// Package gohelp builds help screens for console applications from documentation
// comments.
//
// A doc comment is free text followed by tag lines:
//
//	/**
//	 * Shows help.
//	 *
//	 * @usage $0 help [name]
//	 * @arg name The command
//	 * @opt --verbose -v Print more
//	 * @example `$0 help foo` show foo help
//	 */
//
// Parse turns such a comment into a Help, Renderer formats a Help as text and
// HelpCommand wires both to a CommandCatalog so a Console gets a generic help command.
package gohelp

import (
	"strings"

	"github.com/napalu/gohelp/types/orderedmap"
)

// DefaultSubstitutionToken is replaced by the program name in usage and example text
const DefaultSubstitutionToken = "$0"

// Option describes an @opt or @flag tag. Either name may be empty.
type Option struct {
	LongName    string
	ShortFlag   string
	Description string
}

// Example describes an @example tag
type Example struct {
	Code        string
	Description string
}

// Help is the structured content of a doc comment.
//
// Description is the first paragraph, LongDescription everything after the first
// blank line (empty when there is none). Args keeps declaration order; a repeated
// @arg replaces the description without moving the argument. SubCommands is filled
// when the help of a command with sub commands is assembled, see NewHelp.
type Help struct {
	Description     string
	LongDescription string
	Usage           string
	Args            *orderedmap.OrderedMap[string, string]
	Options         []Option
	SubCommands     *orderedmap.OrderedMap[string, string]
	Examples        []Example
}

// NewEmptyHelp returns a Help without content
func NewEmptyHelp() *Help {
	return &Help{
		Args:        orderedmap.NewOrderedMap[string, string](),
		SubCommands: orderedmap.NewOrderedMap[string, string](),
	}
}

// ShortDescription returns the first line of the description
func (h *Help) ShortDescription() string {
	short, _, _ := strings.Cut(h.Description, "\n")
	return short
}

// AddSubCommand records a sub command and its one-line description
func (h *Help) AddSubCommand(name, description string) {
	h.SubCommands.Set(name, description)
}

// String renders the help with the default renderer
func (h *Help) String() string {
	return NewRenderer().Render(h)
}
