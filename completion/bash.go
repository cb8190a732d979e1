package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := shellFuncName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
`, fn))

	// flags consuming the next word suppress flag completion
	var valueFlags []string
	for _, flag := range data.Flags {
		if flag.TakesValue {
			valueFlags = append(valueFlags, flagWords(flag)...)
		}
	}
	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
    case "${prev}" in
        %s)
            COMPREPLY=()
            return
            ;;
    esac
`, strings.Join(valueFlags, "|")))
	}

	var words []string
	for _, flag := range data.Flags {
		words = append(words, flagWords(flag)...)
	}
	script.WriteString(fmt.Sprintf(`
    if [[ "$cur" == -* ]]; then
        local flags=(%s)
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%s_completion %s
`, strings.Join(words, " "), fn, programName))

	return script.String()
}

// flagWords returns the command-line spellings of flag, long form first
func flagWords(flag Flag) []string {
	words := []string{"--" + flag.Long}
	if flag.Short != "" {
		words = append(words, "-"+flag.Short)
	}

	return words
}

func shellFuncName(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, programName)
}
