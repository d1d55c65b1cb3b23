package gohelp

import (
	"github.com/napalu/gohelp/completion"
)

// CompletionData collects the commands of catalog with their sub commands and options
// for completion scripts. Descriptions are the first description line.
func CompletionData(catalog CommandCatalog, program string) (completion.Data, error) {
	var data completion.Data

	for _, name := range catalog.Commands() {
		h, err := NewHelp(catalog, name, "", program)
		if err != nil {
			return data, err
		}

		cmd := completion.Command{
			Name:        name,
			Description: h.ShortDescription(),
			Flags:       completionFlags(h.Options),
		}
		for _, sub := range catalog.SubCommands(name) {
			sh, err := NewHelp(catalog, name, sub, program)
			if err != nil {
				return data, err
			}
			cmd.SubCommands = append(cmd.SubCommands, completion.Command{
				Name:        sub,
				Description: sh.ShortDescription(),
				Flags:       completionFlags(sh.Options),
			})
		}
		data.Commands = append(data.Commands, cmd)
	}

	return data, nil
}

func completionFlags(options []Option) []completion.Flag {
	var flags []completion.Flag
	for _, opt := range options {
		flags = append(flags, completion.Flag{
			Long:        opt.LongName,
			Short:       opt.ShortFlag,
			Description: opt.Description,
		})
	}

	return flags
}

// Completion returns the completion script of the console commands for shell
func (c *Console) Completion(shell string) (string, error) {
	g, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	data, err := CompletionData(c.registry, c.program)
	if err != nil {
		return "", err
	}

	return g.Generate(c.program, data), nil
}
