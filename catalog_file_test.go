package gohelp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/gohelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `commands:
  - name: greet
    doc: |
      Says hello.

      @usage $0 greet <name>
      @arg name Who to greet
  - name: remote
    doc: Manages remotes.
    sub_commands:
      - name: add
        doc: Adds a remote.
      - name: remove
        doc: Removes a remote.
`

const tomlCatalog = `[[commands]]
name = "greet"
doc = """
Says hello.

@usage $0 greet <name>
@arg name Who to greet
"""

[[commands]]
name = "remote"
doc = "Manages remotes."

[[commands.sub_commands]]
name = "add"
doc = "Adds a remote."

[[commands.sub_commands]]
name = "remove"
doc = "Removes a remote."
`

func assertCatalog(t *testing.T, reg *Registry) {
	t.Helper()

	assert.Equal(t, []string{"greet", "remote"}, reg.Commands())
	assert.Equal(t, []string{"add", "remove"}, reg.SubCommands("remote"))

	h, err := NewHelp(reg, "greet", "", "app")
	require.NoError(t, err)
	assert.Equal(t, "Says hello.", h.Description)
	assert.Equal(t, "app greet <name>", h.Usage)

	h, err = NewHelp(reg, "remote", "", "app")
	require.NoError(t, err)
	short, _ := h.SubCommands.Get("remove")
	assert.Equal(t, "Removes a remote.", short)
}

func TestLoadRegistry(t *testing.T) {
	tests := []struct {
		name   string
		format string
		doc    string
	}{
		{"yaml", FormatYAML, yamlCatalog},
		{"yml", "yml", yamlCatalog},
		{"toml", FormatTOML, tomlCatalog},
		{"upper case format", "TOML", tomlCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := LoadRegistry(strings.NewReader(tt.doc), tt.format)
			require.NoError(t, err)
			assertCatalog(t, reg)
		})
	}
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(strings.NewReader("{}"), "json")
	assert.ErrorIs(t, err, errs.ErrUnsupportedCatalogFormat)

	_, err = LoadRegistry(strings.NewReader("commands: [ {name: a"), FormatYAML)
	assert.Error(t, err)

	_, err = LoadRegistry(strings.NewReader("[[commands]\nname ="), FormatTOML)
	assert.Error(t, err)

	dup := "commands:\n  - name: a\n  - name: a\n"
	_, err = LoadRegistry(strings.NewReader(dup), FormatYAML)
	assert.ErrorIs(t, err, errs.ErrDuplicateCommand)

	reg, err := LoadRegistry(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, reg.Commands())
}

func TestLoadRegistryFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"catalog.yaml": yamlCatalog,
		"catalog.yml":  yamlCatalog,
		"catalog.toml": tomlCatalog,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			reg, err := LoadRegistryFile(path)
			require.NoError(t, err)
			assertCatalog(t, reg)
		})
	}
}

func TestLoadRegistryFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRegistryFile(filepath.Join(dir, "catalog.json"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedCatalogFormat)

	_, err = LoadRegistryFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, errs.ErrLoadingCatalog)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[[commands]\nname ="), 0o644))
	_, err = LoadRegistryFile(broken)
	assert.ErrorIs(t, err, errs.ErrLoadingCatalog)
}
