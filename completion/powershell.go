package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $flags = @(`, programName))

	for _, flag := range data.Flags {
		desc := flag.Description
		if desc == "" {
			desc = flag.Long
		}
		for _, word := range flagWords(flag) {
			script.WriteString(fmt.Sprintf(`
        @{ Name = '%s'; Description = '%s' }`, word, escapePowerShell(desc)))
		}
	}

	script.WriteString(`
    )

    $flags | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`)

	return script.String()
}

// escapePowerShell escapes desc for a single-quoted string
func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}
