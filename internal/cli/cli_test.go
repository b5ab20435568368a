package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/tcalc/internal/calc"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{name: "single labels", args: []string{"2", "+", "2", "="}, want: []string{"2", "+", "2", "="}},
		{name: "runs", args: []string{"12+3", "="}, want: []string{"1", "2", "+", "3", "="}},
		{name: "aliases", args: []string{"3x3*2/1"}, want: []string{"3", "×", "3", "×", "2", "÷", "1"}},
		{name: "multi character labels", args: []string{"5", "+/-", "<-", "c"}, want: []string{"5", "+/-", "<-", "C"}},
		{name: "glyphs", args: []string{"6÷2×1"}, want: []string{"6", "÷", "2", "×", "1"}},
		{name: "unknown button", args: []string{"2^3"}, wantErr: true},
		{name: "nothing to press", args: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabels(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPressAll(t *testing.T) {
	steps := pressAll(calc.New(), []string{"3", "×", "3", "=", "+", "1", "="})
	require.Len(t, steps, 7)
	assert.Equal(t, "9", steps[3].Display)
	assert.Equal(t, "10", steps[6].Display)
}

func TestPressCommandFinal(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"2+2", "="}, "4"},
		{[]string{"5/0", "="}, calc.ErrorText},
		{[]string{"2+*", "="}, calc.ErrorText},
		{[]string{"50", "%"}, "0.5"},
		{[]string{"5", "+/-", "+/-"}, "5"},
		{[]string{"3x3", "=", "+1", "="}, "10"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"press", "--final"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestPressCommandTree(t *testing.T) {
	out, err := execute(t, "press", "1", "+", "2", "=")
	require.NoError(t, err)

	for _, want := range []string{"1", "+", "1+2", "3"} {
		assert.Contains(t, out, want)
	}
}

func TestPressCommandUnknownButton(t *testing.T) {
	_, err := execute(t, "press", "2^2")
	assert.Error(t, err)
}

func TestKeypadCommand(t *testing.T) {
	out, err := execute(t, "keypad")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(calc.Keypad))
	for i, row := range calc.Keypad {
		for _, label := range row {
			assert.Contains(t, lines[i], label)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tcalc 1.2.3 (abc123) built on 2026-01-01")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, "config", "init", "--output", path)
	assert.Error(t, err, "init must refuse to overwrite without --force")

	out, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "default")
}

func TestConfigValidateRejectsBadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o600))

	out, err := execute(t, "config", "validate", "--config", path)
	assert.Error(t, err)
	assert.Contains(t, out, "invalid theme")
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: minimal\n"), 0o600))

	out, err := execute(t, "config", "show", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"theme": "minimal"`)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "theme: minimal")

	_, err = execute(t, "config", "show", "--config", path, "--format", "xml")
	assert.Error(t, err)
}
