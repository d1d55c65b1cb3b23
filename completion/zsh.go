package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator describes commands, sub commands and flags with their descriptions
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(program string, data Data) string {
	fn := functionName(program)
	var sb strings.Builder

	fmt.Fprintf(&sb, "#compdef %s\n\n", program)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	sb.WriteString("    local -a commands\n    commands=(\n")
	for _, cmd := range data.Commands {
		fmt.Fprintf(&sb, "        %s\n", zshItem(cmd.Name, cmd.Description))
	}
	sb.WriteString(`    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        return
    fi

    local -a items
    case "${words[2]}" in
`)

	for _, cmd := range data.Commands {
		var items []string
		for _, sub := range cmd.SubCommands {
			items = append(items, zshItem(sub.Name, sub.Description))
		}
		for _, f := range cmd.Flags {
			for _, name := range f.Names() {
				items = append(items, zshItem(name, f.Description))
			}
		}
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "        %s)\n            items=(\n", singleQuote(cmd.Name))
		for _, item := range items {
			fmt.Fprintf(&sb, "                %s\n", item)
		}
		sb.WriteString("            )\n            ;;\n")
	}

	sb.WriteString(`    esac

    (( ${#items} )) && _describe -t items 'argument' items
}

`)
	fmt.Fprintf(&sb, "%s \"$@\"\n", fn)

	return sb.String()
}
