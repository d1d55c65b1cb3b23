package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWindows(t *testing.T) {
	t.Setenv("GOHELP_TARGET", "prod")

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"simple", "help greet", []string{"help", "greet"}, false},
		{"double quotes", `greet "bob smith"`, []string{"greet", "bob smith"}, false},
		{"single quotes", "greet 'bob smith'", []string{"greet", "bob smith"}, false},
		{"empty quotes", `greet ""`, []string{"greet", ""}, false},
		{"caret escape", "echo ^| pipe", []string{"echo", "|", "pipe"}, false},
		{"double caret", "echo ^^", []string{"echo", "^"}, false},
		{"escaped quote", `echo "say \"hi\""`, []string{"echo", `say "hi"`}, false},
		{"backslash pairs", `echo a\\\\"b c"`, []string{"echo", `a\\b c`}, false},
		{"literal backslashes", `dir C:\temp\x`, []string{"dir", `C:\temp\x`}, false},
		{"variable", "deploy %GOHELP_TARGET%", []string{"deploy", "prod"}, false},
		{"unclosed percent", "echo 50%", []string{"echo", "50%"}, false},
		{"variable in quotes stays", `echo "%GOHELP_TARGET%"`, []string{"echo", "%GOHELP_TARGET%"}, false},
		{"unterminated quote", `echo "open`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
