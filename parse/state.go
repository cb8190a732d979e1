package parse

// State is a forward-only cursor over the tokens of one parse pass
type State interface {
	Pos() int           // Get the current position
	CurrentArg() string // Get the current argument
	Advance() bool      // Move to the next argument
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument of args
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list, -1 before the first Advance
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}
