package gohelp

import (
	"testing"

	"github.com/napalu/gohelp/completion"
	"github.com/napalu/gohelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionData(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("deploy", "Deploys.\nthe app\n@opt --force -f Skip checks"))
	require.NoError(t, reg.AddSubCommand("deploy", "roll-back", "Rolls back.\n@flag -q Quiet"))
	require.NoError(t, reg.Register("version", "Prints the version."))

	data, err := CompletionData(reg, "app")
	require.NoError(t, err)

	want := completion.Data{Commands: []completion.Command{
		{
			Name:        "deploy",
			Description: "Deploys.",
			Flags:       []completion.Flag{{Long: "force", Short: "f", Description: "Skip checks"}},
			SubCommands: []completion.Command{{
				Name:        "roll-back",
				Description: "Rolls back.",
				Flags:       []completion.Flag{{Short: "q", Description: "Quiet"}},
			}},
		},
		{Name: "version", Description: "Prints the version."},
	}}
	assert.Equal(t, want, data)
}

func TestConsole_Completion(t *testing.T) {
	c, _ := newTestConsole(t)
	require.NoError(t, c.RegisterFunc("greet", "Says hello.", func(args []string) error { return nil }))

	script, err := c.Completion("bash")
	require.NoError(t, err)
	assert.Contains(t, script, `"") words='help greet' ;;`)

	script, err = c.Completion("fish")
	require.NoError(t, err)
	assert.Contains(t, script, "-a 'greet' -d 'Says hello.'")

	_, err = c.Completion("tcsh")
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)
}
