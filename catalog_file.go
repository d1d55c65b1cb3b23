package gohelp

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/napalu/gohelp/errs"
	"gopkg.in/yaml.v3"
)

// Catalog file formats understood by LoadRegistry
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// catalogFile is the document layout of a catalog file:
//
//	commands:
//	  - name: greet
//	    doc: |
//	      Says hello.
//	      @usage $0 greet <name>
//	    sub_commands:
//	      - name: loud
//	        doc: Says hello loudly.
type catalogFile struct {
	Commands []catalogCommand `yaml:"commands" toml:"commands"`
}

type catalogCommand struct {
	Name        string           `yaml:"name" toml:"name"`
	Doc         string           `yaml:"doc" toml:"doc"`
	SubCommands []catalogCommand `yaml:"sub_commands" toml:"sub_commands"`
}

// LoadRegistryFile reads a catalog file. The format follows the file extension:
// .yaml, .yml or .toml.
func LoadRegistryFile(path string) (*Registry, error) {
	format, err := catalogFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrLoadingCatalog.WithArgs(path).Wrap(err)
	}
	defer f.Close()

	reg, err := LoadRegistry(f, format)
	if err != nil {
		return nil, errs.ErrLoadingCatalog.WithArgs(path).Wrap(err)
	}

	return reg, nil
}

// LoadRegistry reads a catalog document in the given format (FormatYAML or FormatTOML)
func LoadRegistry(r io.Reader, format string) (*Registry, error) {
	var doc catalogFile

	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, errs.ErrUnsupportedCatalogFormat.WithArgs(format)
	}

	reg := NewRegistry()
	for _, cmd := range doc.Commands {
		if err := reg.Register(cmd.Name, cmd.Doc); err != nil {
			return nil, err
		}
		for _, sub := range cmd.SubCommands {
			if err := reg.AddSubCommand(cmd.Name, sub.Name, sub.Doc); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func catalogFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errs.ErrUnsupportedCatalogFormat.WithArgs(ext)
	}
}
