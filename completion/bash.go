package completion

import (
	"fmt"
	"strings"
)

// BashGenerator completes command names first, then the sub commands and flags of the
// chosen command.
type BashGenerator struct{}

func (g *BashGenerator) Generate(program string, data Data) string {
	fn := functionName(program)
	var sb strings.Builder

	fmt.Fprintf(&sb, "# bash completion for %s\n", program)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	sb.WriteString(`    local cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd="" words="" i
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            cmd="${COMP_WORDS[i]}"
            break
        fi
    done

    case "$cmd" in
`)

	names := make([]string, 0, len(data.Commands))
	for _, cmd := range data.Commands {
		names = append(names, cmd.Name)
	}
	fmt.Fprintf(&sb, "        \"\") words=%s ;;\n", singleQuote(strings.Join(names, " ")))

	for _, cmd := range data.Commands {
		var words []string
		for _, sub := range cmd.SubCommands {
			words = append(words, sub.Name)
		}
		for _, f := range cmd.Flags {
			words = append(words, f.Names()...)
		}
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "        %s) words=%s ;;\n", singleQuote(cmd.Name), singleQuote(strings.Join(words, " ")))
	}

	sb.WriteString(`    esac

    COMPREPLY=( $(compgen -W "$words" -- "$cur") )
}
`)
	fmt.Fprintf(&sb, "complete -F %s %s\n", fn, program)

	return sb.String()
}
