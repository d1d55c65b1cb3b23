package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/gohelp"
	"github.com/napalu/gohelp/table"
)

// Prints a greeting for every name.
//
// Names are greeted in the order they are given.
//
// @usage $0 greet <name> [name...]
// @arg name Who to greet
// @example `$0 greet world` Greets the world
// @example `$0 greet loud world` Greets the world loudly
type greetCommand struct {
	out io.Writer
}

// Greets politely.
//
// @usage $0 greet <name> [name...]
// @arg name Who to greet
func (g *greetCommand) Execute(args []string) error {
	return g.greet(args, "Hello, %s.\n")
}

// Greets loudly.
//
// @usage $0 greet loud <name> [name...]
// @arg name Who to greet
func (g *greetCommand) ExecuteLoud(args []string) error {
	for i, a := range args {
		args[i] = strings.ToUpper(a)
	}
	return g.greet(args, "HELLO, %s!\n")
}

func (g *greetCommand) greet(names []string, format string) error {
	if len(names) == 0 {
		names = []string{"world"}
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(g.out, format, name); err != nil {
			return err
		}
	}

	return nil
}

// Lays out comma separated rows as a table.
//
// Every argument is a row, cells are separated by commas. The first row is the
// header.
//
// @usage $0 table [framed|bordered] <row> [row...]
// @arg row Comma separated cells
// @example `$0 table framed name,size a.txt,12` Framed listing
type tableCommand struct {
	out io.Writer
}

// Writes the rows tab separated.
//
// @usage $0 table <row> [row...]
func (c *tableCommand) Execute(args []string) error {
	return c.write(args)
}

// Draws a frame around every cell.
//
// @usage $0 table framed <row> [row...]
func (c *tableCommand) ExecuteFramed(args []string) error {
	return c.write(args, table.WithFrame(true), table.WithBorder(true))
}

// Draws a border around the rows.
//
// @usage $0 table bordered <row> [row...]
func (c *tableCommand) ExecuteBordered(args []string) error {
	return c.write(args, table.WithBorder(true))
}

func (c *tableCommand) write(args []string, configs ...table.ConfigureTableFunc) error {
	rows := make([][]string, 0, len(args))
	for _, a := range args {
		rows = append(rows, strings.Split(a, ","))
	}

	configs = append(configs,
		table.WithRows(rows),
		table.WithHeaderRow(len(rows) > 1),
		table.WithSkipEmptyColumns(true),
		table.WithWriter(c.out))
	tbl, err := table.New(configs...)
	if err != nil {
		return err
	}

	return tbl.Write()
}

// Prints a shell completion script for all commands.
//
// Supported shells are bash, zsh and fish. Without argument a bash script is printed.
//
// @usage $0 completion [shell]
// @arg shell bash, zsh or fish
// @example `$0 completion zsh > ~/.zfunc/_$0` Installs zsh completion
type completionCommand struct {
	console *gohelp.Console
	out     io.Writer
}

// Prints the completion script.
func (c *completionCommand) Execute(args []string) error {
	shell := "bash"
	if len(args) > 0 {
		shell = args[0]
	}

	script, err := c.console.Completion(shell)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, script)

	return err
}
