package sarge

import (
	"io"

	"github.com/napalu/sarge/completion"
)

// CompletionData returns the flags of the Parser in the form used by the shell completion generators
func (p *Parser) CompletionData() completion.Data {
	var data completion.Data
	for _, flag := range p.registry.Flags() {
		data.Flags = append(data.Flags, completion.Flag{
			Long:        flag.Long,
			Short:       flag.Short,
			Description: flag.Description,
			TakesValue:  flag.RequiresValue,
		})
	}

	return data
}

// PrintCompletion writes the completion script of programName for shell (bash, zsh, fish or
// powershell) to w
func (p *Parser) PrintCompletion(w io.Writer, shell, programName string) error {
	manager, err := completion.NewManager(shell, programName)
	if err != nil {
		return err
	}
	manager.Accept(p.CompletionData())
	_, err = io.WriteString(w, manager.Script())

	return err
}
