package completion

import (
	"testing"

	"github.com/napalu/gohelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testData = Data{
	Commands: []Command{
		{
			Name:        "deploy",
			Description: "Deploys the app's code.",
			Flags: []Flag{
				{Long: "force", Short: "f", Description: "Skip checks"},
				{Long: "dry-run", Description: "Only print"},
			},
			SubCommands: []Command{
				{Name: "roll-back", Description: "Rolls back."},
			},
		},
		{Name: "help", Description: "Displays help."},
	},
}

func TestGetGenerator(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "BASH"} {
		g, err := GetGenerator(shell)
		require.NoError(t, err, shell)
		assert.NotNil(t, g)
	}

	_, err := GetGenerator("powershell")
	assert.ErrorIs(t, err, errs.ErrUnsupportedShell)

	assert.Equal(t, []string{"bash", "fish", "zsh"}, Shells())
}

func TestFlagNames(t *testing.T) {
	assert.Equal(t, []string{"--force", "-f"}, Flag{Long: "force", Short: "f"}.Names())
	assert.Equal(t, []string{"-f"}, Flag{Short: "f"}.Names())
	assert.Empty(t, Flag{}.Names())
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate("my-app", testData)

	assert.Contains(t, script, "_my_app() {\n")
	assert.Contains(t, script, `        "") words='deploy help' ;;`)
	assert.Contains(t, script, `        'deploy') words='roll-back --force -f --dry-run' ;;`)
	assert.NotContains(t, script, `'help') words=`)
	assert.Contains(t, script, "complete -F _my_app my-app\n")
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate("app", testData)

	assert.Contains(t, script, "#compdef app\n")
	assert.Contains(t, script, `        'deploy:Deploys the app'\''s code.'`)
	assert.Contains(t, script, `        'help:Displays help.'`)
	assert.Contains(t, script, "        'deploy')\n            items=(\n                'roll-back:Rolls back.'\n")
	assert.Contains(t, script, `                '--force:Skip checks'`)
	assert.Contains(t, script, `                '-f:Skip checks'`)
	assert.Contains(t, script, "_app \"$@\"\n")
}

func TestFishGenerator(t *testing.T) {
	script := (&FishGenerator{}).Generate("app", testData)

	want := "# fish completion for app\n" +
		"complete -c app -f\n" +
		`complete -c app -n __fish_use_subcommand -a 'deploy' -d 'Deploys the app\'s code.'` + "\n" +
		`complete -c app -n __fish_use_subcommand -a 'help' -d 'Displays help.'` + "\n" +
		`complete -c app -n '__fish_seen_subcommand_from deploy' -a 'roll-back' -d 'Rolls back.'` + "\n" +
		`complete -c app -n '__fish_seen_subcommand_from deploy' -l force -s f -d 'Skip checks'` + "\n" +
		`complete -c app -n '__fish_seen_subcommand_from deploy' -l dry-run -d 'Only print'` + "\n"
	assert.Equal(t, want, script)
}
