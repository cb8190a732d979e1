package completion

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/napalu/sarge/errs"
)

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the generator for shell, defaulting to bash
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return &BashGenerator{}
	}
}

// Shells lists the supported shells
func Shells() []string {
	return []string{"bash", "zsh", "fish", "powershell"}
}

type Manager struct {
	Shell       string
	ProgramName string
	generator   Generator
	script      string
}

// NewManager creates a completion manager which can be used to generate and save completion scripts
// for a given shell
func NewManager(shell, programName string) (*Manager, error) {
	if !isSupported(shell) {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the completion script from the provided data
func (m *Manager) Accept(data Data) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the previously generated completion script
func (m *Manager) Script() string {
	return m.script
}

// FileName returns the conventional file name of the completion script for the shell
func (m *Manager) FileName() string {
	conventions := m.fileConventions()

	return conventions.Prefix + m.ProgramName + conventions.Extension
}

// Save writes the previously generated completion script to dir, creating dir if needed,
// and returns the path of the written file
func (m *Manager) Save(dir string) (string, error) {
	if m.script == "" {
		return "", fmt.Errorf("no completion script generated")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create completion directory: %w", err)
	}

	path := filepath.Join(dir, m.FileName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, nil
}

func (m *Manager) fileConventions() FileInfo {
	switch m.Shell {
	case "zsh":
		return FileInfo{Prefix: "_"}
	case "fish":
		return FileInfo{Extension: ".fish"}
	case "powershell":
		return FileInfo{Extension: ".ps1"}
	default:
		return FileInfo{}
	}
}

func isSupported(shell string) bool {
	for _, s := range Shells() {
		if s == shell {
			return true
		}
	}

	return false
}
