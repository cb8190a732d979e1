package sarge

import (
	"io"
	"log/slog"
	"os"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/parse"
	"golang.org/x/text/language"
)

// Parser classifies command-line tokens against a Registry. Each call to Parse
// produces a fresh Result; the flag definitions are never modified by parsing.
// The Parser remembers the last successful Result so that it can be queried
// directly, which makes a Parser unsuitable for concurrent Parse calls. Use the
// returned Result when parsing from several goroutines.
type Parser struct {
	registry    *Registry
	permissive  bool
	logger      *slog.Logger
	description string
	usage       string
	lang        language.Tag
	last        *Result
}

// NewParser returns a strict Parser for registry
func NewParser(registry *Registry) *Parser {
	return &Parser{
		registry: registry,
		logger:   discardLogger(),
		lang:     language.English,
	}
}

// Parse runs one pass over the supplied arguments and returns its Result.
// In strict mode (the default) unknown flags and flags following a text
// argument abort the pass; in permissive mode unknown flags are skipped and
// flags may follow text arguments. On failure the returned error is a
// *ParseError wrapping one of the errs sentinels and the previous Result is
// forgotten.
func (p *Parser) Parse(args []string) (*Result, error) {
	p.last = nil
	if p.registry == nil {
		return nil, errs.ErrNilRegistry
	}

	result, err := parseArgs(p.registry, parse.NewState(args), p.permissive, p.logger)
	if err != nil {
		return nil, err
	}
	p.last = result

	return result, nil
}

// ParseString splits argString with shell quoting rules and parses the resulting arguments
func (p *Parser) ParseString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		p.last = nil
		return nil, errs.ErrSplitArgs.Wrap(err)
	}

	return p.Parse(args)
}

// ParseOSArgs parses the arguments of the running program, without the program name
func (p *Parser) ParseOSArgs() (*Result, error) {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}

	return p.Parse(args)
}

// Parse is the stateless form of Parser.Parse
func Parse(registry *Registry, args []string, permissive bool) (*Result, error) {
	if registry == nil {
		return nil, errs.ErrNilRegistry
	}

	return parseArgs(registry, parse.NewState(args), permissive, discardLogger())
}

// SetPermissive switches permissive mode and returns the previous value
func (p *Parser) SetPermissive(permissive bool) bool {
	old := p.permissive
	p.permissive = permissive

	return old
}

// Permissive returns true when unknown flags are skipped instead of rejected
func (p *Parser) Permissive() bool {
	return p.permissive
}

// AddFlag defines flag in the Parser's Registry under the long name flagName
func (p *Parser) AddFlag(flagName string, flag *Flag) error {
	if flag == nil {
		return errs.ErrNilFlag
	}
	if p.registry == nil {
		p.registry = NewRegistry()
	}
	f := *flag
	f.Long = flagName

	return p.registry.DefineFlag(&f)
}

// Registry returns the flag definitions used by the Parser
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Description returns the program description shown in help output
func (p *Parser) Description() string {
	return p.description
}

// Usage returns the usage text shown in help output
func (p *Parser) Usage() string {
	return p.usage
}

// Language returns the language used for help labels
func (p *Parser) Language() language.Tag {
	return p.lang
}

// Result returns the Result of the last successful parse, or nil
func (p *Parser) Result() *Result {
	return p.last
}

// Parsed returns true when the last parse succeeded
func (p *Parser) Parsed() bool {
	return p.last != nil
}

// Flag returns the value of flag name from the last successful parse. See Result.Flag.
func (p *Parser) Flag(name string) (string, bool) {
	return p.last.Flag(name)
}

// Exists returns true when flag name was matched by the last successful parse
func (p *Parser) Exists(name string) bool {
	return p.last.Exists(name)
}

// HasValue returns true when a value was bound to flag name by the last successful parse
func (p *Parser) HasValue(name string) bool {
	return p.last.HasValue(name)
}

// Positional returns the text argument at index from the last successful parse
func (p *Parser) Positional(index int) (string, bool) {
	return p.last.Positional(index)
}

// Positionals returns the text arguments of the last successful parse
func (p *Parser) Positionals() []string {
	return p.last.Positionals()
}

// MatchedFlagCount returns the number of flag matches of the last successful parse
func (p *Parser) MatchedFlagCount() int {
	return p.last.MatchedFlagCount()
}

// PrintHelp writes the description, usage and flag table to w
func (p *Parser) PrintHelp(w io.Writer) error {
	return NewRenderer(p).Render(w)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
