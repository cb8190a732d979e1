package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %s

_arguments -s \`, programName))

	for _, flag := range data.Flags {
		desc := escapeZsh(flag.Description)
		value := ""
		if flag.TakesValue {
			value = ":value:"
		}

		if flag.Short == "" {
			script.WriteString(fmt.Sprintf(`
    '*--%s[%s]%s' \`, flag.Long, desc, value))
			continue
		}
		script.WriteString(fmt.Sprintf(`
    '*'{-%s,--%s}'[%s]%s' \`, flag.Short, flag.Long, desc, value))
	}

	script.WriteString(`
    '*:text:_files'
`)

	return script.String()
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, `'`, `'\''`)
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")

	return s
}
