package gohelp

import (
	"regexp"
	"strings"
	"testing"

	"github.com/napalu/gohelp/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "description usage arguments and examples",
			text: "Shows help.\n\n@usage $0 help [name]\n@arg name The command\n@example `$0 help foo` show foo help",
			want: "Shows help.\n\n" +
				"Usage:\n  app help [name]\n\n" +
				"Arguments:\n  name\tThe command\n\n" +
				"Examples:\n  show foo help:\n    app help foo",
		},
		{
			name: "options with long and short names",
			text: "Lists things.\n@opt --verbose -v Print more\n@opt -q Quiet\n@example `$0 ls`",
			want: "Lists things.\n\n" +
				"Options:\n" +
				"  --verbose\t-v\tPrint more\n" +
				"           \t-q\tQuiet     \n\n" +
				"Examples:\n    app ls",
		},
		{
			name: "options without short flags drop the empty column",
			text: "@opt --all All of them\n@opt --none None\n@usage $0 ls",
			want: "Usage:\n  app ls\n\n" +
				"Options:\n" +
				"  --all \tAll of them\n" +
				"  --none\tNone",
		},
		{
			name: "long description after the tables",
			text: "Summary.\n\nDetails follow.\n@arg a First\n@arg bb Second",
			want: "Summary.\n\n" +
				"Arguments:\n  a \tFirst \n  bb\tSecond\n\n" +
				"Details follow.",
		},
		{
			name: "description only",
			text: "Just text.",
			want: "Just text.",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Parse(tt.text, DefaultSubstitutionToken, "app")
			assert.Equal(t, tt.want, NewRenderer().Render(h))
		})
	}
}

func TestRenderer_OptionsAbsentWhenEmpty(t *testing.T) {
	h := Parse("Shows help.\n\n@usage $0 help [name]\n@arg name The command", DefaultSubstitutionToken, "app")

	out := NewRenderer().Render(h)
	assert.NotContains(t, out, "Options:")
	assert.Contains(t, out, "Arguments:")
}

func TestRenderer_SubCommands(t *testing.T) {
	h := Parse("Deploys.\n@usage $0 deploy [sub]", DefaultSubstitutionToken, "app")
	h.AddSubCommand("roll-back", "Rolls back.")
	h.AddSubCommand("status", "Shows state.")

	want := "Deploys.\n\n" +
		"Usage:\n  app deploy [sub]\n\n" +
		"Sub commands:\n" +
		"  roll-back\tRolls back. \n" +
		"  status   \tShows state."
	assert.Equal(t, want, h.String())
}

func TestRenderer_TranslatedHeadings(t *testing.T) {
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)

	h := Parse("Zeigt Hilfe.\n@usage $0 hilfe\n@arg name Der Befehl", DefaultSubstitutionToken, "app")
	out := NewRenderer().WithTranslator(bundle).Render(h)

	assert.Contains(t, out, "Verwendung:\n  app hilfe")
	assert.Contains(t, out, "Argumente:\n  name\tDer Befehl")
	assert.NotContains(t, out, "Usage:")
}

func TestRenderer_ColorStyleKeepsLayout(t *testing.T) {
	text := "Lists things.\n\nMore.\n@usage $0 ls\n@arg path Where\n@opt --verbose -v Print more\n@opt -q Quiet\n@example `$0 ls /` root"
	h := Parse(text, DefaultSubstitutionToken, "app")
	h.AddSubCommand("all", "Everything")

	plain := NewRenderer().Render(h)
	colored := NewRenderer().WithStyle(NewColorStyle()).Render(h)

	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[33mUsage:\x1b[0m")
	assert.Contains(t, colored, "\x1b[32m--verbose\x1b[0m\t")
	assert.Equal(t, plain, stripANSI(colored))
}

func TestRenderer_NilOptionsFallBack(t *testing.T) {
	r := NewRenderer().WithStyle(nil).WithTranslator(nil)

	assert.Equal(t, PlainStyle{}, r.Style())
	out := r.Render(Parse("@usage $0 x", DefaultSubstitutionToken, "app"))
	assert.True(t, strings.HasPrefix(out, "Usage:"))
}
