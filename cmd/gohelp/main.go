// Command gohelp is a small console showing generated help screens.
//
//	gohelp [--no-color] [--lang de] [--catalog commands.yaml] [command [sub command] [args...]]
package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/napalu/gohelp"
	"github.com/napalu/gohelp/docsource"
	"github.com/napalu/gohelp/i18n"
	"github.com/napalu/goopt/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

//go:embed commands.go
var commandSource string

// version is set with -ldflags "-X main.version=..."
var version = "dev"

type Config struct {
	NoColor bool   `goopt:"name:no-color;desc:Disable colored output"`
	Lang    string `goopt:"name:lang;desc:Language of the help output (en, de, fr)"`
	Catalog string `goopt:"name:catalog;desc:YAML or TOML file documenting additional commands"`
	Verbose bool   `goopt:"name:verbose;desc:Log debug information"`
}

func main() {
	cfg := &Config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		parser.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Verbose, cfg.NoColor)

	var args []string
	for _, p := range parser.GetPositionalArgs() {
		args = append(args, p.Value)
	}

	console, err := newConsole(filepath.Base(os.Args[0]), cfg, os.Stdout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start console")
	}

	logger.Debug().Strs("args", args).Msg("running")
	if err := console.Run(args); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newConsole(program string, cfg *Config, out io.Writer, logger zerolog.Logger) (*gohelp.Console, error) {
	configs := []gohelp.ConfigureConsoleFunc{gohelp.WithWriter(out)}

	if cfg.NoColor {
		configs = append(configs, gohelp.WithStyle(gohelp.PlainStyle{}))
	}

	if cfg.Lang != "" {
		tag, err := language.Parse(cfg.Lang)
		if err != nil {
			return nil, err
		}
		bundle := i18n.Default()
		matched := bundle.MatchLanguage(tag)
		bundle.SetDefaultLanguage(matched)
		logger.Debug().Str("requested", tag.String()).Str("language", matched.String()).Msg("help language")
		configs = append(configs, gohelp.WithTranslator(bundle))
	}

	if cfg.Catalog != "" {
		reg, err := gohelp.LoadRegistryFile(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("catalog", cfg.Catalog).Strs("commands", reg.Commands()).Msg("catalog loaded")
		configs = append(configs, gohelp.WithRegistry(reg))
	}

	console, err := gohelp.NewConsole(program, configs...)
	if err != nil {
		return nil, err
	}

	if err := registerCommands(console, out); err != nil {
		return nil, err
	}

	return console, nil
}

func registerCommands(console *gohelp.Console, out io.Writer) error {
	docs, err := docsource.ParseSource("commands.go", commandSource)
	if err != nil {
		return err
	}

	if err := console.Register("greet", &greetCommand{out: out}, docs); err != nil {
		return err
	}
	if err := console.Register("table", &tableCommand{out: out}, docs); err != nil {
		return err
	}
	if err := console.Register("completion", &completionCommand{console: console, out: out}, docs); err != nil {
		return err
	}

	return console.RegisterFunc("version", "Prints the version.\n\n@usage $0 version", func(args []string) error {
		_, err := fmt.Fprintf(out, "%s %s\n", console.Program(), version)
		return err
	})
}
