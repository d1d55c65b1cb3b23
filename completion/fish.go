package completion

import (
	"fmt"
	"strings"
)

// FishGenerator emits one complete call per command, sub command and flag
type FishGenerator struct{}

func (g *FishGenerator) Generate(program string, data Data) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# fish completion for %s\n", program)
	fmt.Fprintf(&sb, "complete -c %s -f\n", program)

	for _, cmd := range data.Commands {
		fmt.Fprintf(&sb, "complete -c %s -n __fish_use_subcommand -a %s -d %s\n",
			program, escapeFish(cmd.Name), escapeFish(cmd.Description))
	}

	for _, cmd := range data.Commands {
		cond := escapeFish("__fish_seen_subcommand_from " + cmd.Name)
		for _, sub := range cmd.SubCommands {
			fmt.Fprintf(&sb, "complete -c %s -n %s -a %s -d %s\n",
				program, cond, escapeFish(sub.Name), escapeFish(sub.Description))
		}
		for _, f := range cmd.Flags {
			line := fmt.Sprintf("complete -c %s -n %s", program, cond)
			if f.Long != "" {
				line += " -l " + f.Long
			}
			if f.Short != "" {
				line += " -s " + f.Short
			}
			sb.WriteString(line + " -d " + escapeFish(f.Description) + "\n")
		}
	}

	return sb.String()
}
