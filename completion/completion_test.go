package completion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/sarge/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testData = Data{
	Flags: []Flag{
		{Long: "help", Short: "h", Description: "Get help."},
		{Long: "kittens", Short: "k", Description: "K is for kittens", TakesValue: true},
		{Long: "snake", Description: "it's [long]"},
	},
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate("sarge-demo", testData)

	assert.Contains(t, script, "function __sarge_demo_completion()")
	assert.Contains(t, script, "--kittens|-k)")
	assert.Contains(t, script, "local flags=(--help -h --kittens -k --snake)")
	assert.True(t, strings.HasSuffix(script, "complete -F __sarge_demo_completion sarge-demo\n"))
}

func TestBashGenerator_NoValueFlags(t *testing.T) {
	script := (&BashGenerator{}).Generate("prog", Data{Flags: []Flag{{Long: "help"}}})
	assert.NotContains(t, script, "case")
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate("prog", testData)

	assert.True(t, strings.HasPrefix(script, "#compdef prog\n"))
	assert.Contains(t, script, `'*'{-h,--help}'[Get help.]' \`)
	assert.Contains(t, script, `'*'{-k,--kittens}'[K is for kittens]:value:' \`)
	assert.Contains(t, script, `'*--snake[it'\''s \[long\]]' \`)
}

func TestFishGenerator(t *testing.T) {
	script := (&FishGenerator{}).Generate("prog", testData)

	assert.Equal(t, "complete -c prog -l help -s h -d 'Get help.'\n"+
		"complete -c prog -l kittens -s k -r -d 'K is for kittens'\n"+
		"complete -c prog -l snake -d 'it\\'s [long]'\n", script)
}

func TestPowerShellGenerator(t *testing.T) {
	script := (&PowerShellGenerator{}).Generate("prog", testData)

	assert.Contains(t, script, "-CommandName 'prog'")
	assert.Contains(t, script, "@{ Name = '--kittens'; Description = 'K is for kittens' }")
	assert.Contains(t, script, "@{ Name = '-k'; Description = 'K is for kittens' }")
	assert.Contains(t, script, "@{ Name = '--snake'; Description = 'it''s [long]' }")
}

func TestGetGenerator(t *testing.T) {
	assert.IsType(t, &BashGenerator{}, GetGenerator("bash"))
	assert.IsType(t, &ZshGenerator{}, GetGenerator("zsh"))
	assert.IsType(t, &FishGenerator{}, GetGenerator("fish"))
	assert.IsType(t, &PowerShellGenerator{}, GetGenerator("powershell"))
	assert.IsType(t, &BashGenerator{}, GetGenerator("unknown"))
}

func TestManager(t *testing.T) {
	tests := []struct {
		shell    string
		fileName string
	}{
		{"bash", "prog"},
		{"zsh", "_prog"},
		{"fish", "prog.fish"},
		{"powershell", "prog.ps1"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			m, err := NewManager(tt.shell, "/usr/local/bin/prog")
			require.NoError(t, err)
			assert.Equal(t, "prog", m.ProgramName)
			assert.Equal(t, tt.fileName, m.FileName())

			_, err = m.Save(t.TempDir())
			assert.Error(t, err, "nothing generated yet")

			m.Accept(testData)
			dir := filepath.Join(t.TempDir(), "completions")
			path, err := m.Save(dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.fileName), path)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, m.Script(), string(content))
		})
	}
}

func TestNewManager_UnsupportedShell(t *testing.T) {
	_, err := NewManager("tcsh", "prog")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}
