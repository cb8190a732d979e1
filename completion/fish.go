package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s -l %s", programName, flag.Long)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.TakesValue {
			cmd += " -r"
		}
		if flag.Description != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.Description))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}

func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)

	return strings.ReplaceAll(desc, "'", "\\'")
}
