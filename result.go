package sarge

// flagResult is the outcome of one parse pass for one flag
type flagResult struct {
	matched  bool
	hasValue bool
	value    string
}

// Result holds the outcome of a single successful parse pass: which flags were
// matched, the values bound to them and the positional (text) arguments in
// the order they appeared. A Result is never modified after Parse returns it.
type Result struct {
	registry     *Registry
	flags        map[string]*flagResult
	positionals  []string
	matchedCount int
}

func newResult(registry *Registry) *Result {
	return &Result{
		registry:    registry,
		flags:       map[string]*flagResult{},
		positionals: []string{},
	}
}

func (r *Result) match(flag *Flag) {
	fr, ok := r.flags[flag.Long]
	if !ok {
		fr = &flagResult{}
		r.flags[flag.Long] = fr
	}
	fr.matched = true
	r.matchedCount++
}

func (r *Result) bind(flag *Flag, value string) {
	fr := r.flags[flag.Long]
	fr.value = value
	fr.hasValue = true
}

func (r *Result) addPositional(arg string) {
	r.positionals = append(r.positionals, arg)
}

func (r *Result) lookup(name string) (*Flag, *flagResult, bool) {
	if r == nil {
		return nil, nil, false
	}
	flag, found := r.registry.Lookup(name)
	if !found {
		return nil, nil, false
	}
	fr, matched := r.flags[flag.Long]

	return flag, fr, matched && fr.matched
}

// Flag returns the value bound to the flag called name (long name first, then short
// name) and true when the flag was matched. The value is empty for flags which take
// no value, and for a value flag which ended the input; use HasValue to tell the
// two cases of an empty value apart.
func (r *Result) Flag(name string) (string, bool) {
	flag, fr, found := r.lookup(name)
	if !found {
		return "", false
	}
	if !flag.RequiresValue {
		return "", true
	}

	return fr.value, true
}

// Exists returns true when the flag called name was matched
func (r *Result) Exists(name string) bool {
	_, _, found := r.lookup(name)

	return found
}

// HasValue returns true when a value token was bound to the flag called name
func (r *Result) HasValue(name string) bool {
	flag, fr, found := r.lookup(name)

	return found && flag.RequiresValue && fr.hasValue
}

// Positional returns the text argument at the zero-based index
func (r *Result) Positional(index int) (string, bool) {
	if r == nil || index < 0 || index >= len(r.positionals) {
		return "", false
	}

	return r.positionals[index], true
}

// Positionals returns a copy of the text arguments in order of appearance
func (r *Result) Positionals() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.positionals))
	copy(out, r.positionals)

	return out
}

// PositionalCount returns the number of text arguments
func (r *Result) PositionalCount() int {
	if r == nil {
		return 0
	}

	return len(r.positionals)
}

// MatchedFlagCount returns the number of flag matches in the pass. Every occurrence
// counts, so "-aa" counts two.
func (r *Result) MatchedFlagCount() int {
	if r == nil {
		return 0
	}

	return r.matchedCount
}

// MatchedFlags returns the long names of the matched flags in definition order
func (r *Result) MatchedFlags() []string {
	if r == nil {
		return nil
	}
	var names []string
	for _, flag := range r.registry.Flags() {
		if fr, ok := r.flags[flag.Long]; ok && fr.matched {
			names = append(names, flag.Long)
		}
	}

	return names
}
