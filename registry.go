package sarge

import (
	"unicode/utf8"

	"github.com/napalu/sarge/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry is the ordered set of flags known to a Parser. Long names and short
// names are unique; duplicates are rejected when they are defined.
// A Registry is not safe for concurrent modification.
type Registry struct {
	flags *orderedmap.OrderedMap[string, *Flag]
	short map[string]*Flag
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		flags: orderedmap.New[string, *Flag](),
		short: map[string]*Flag{},
	}
}

// Define appends a flag built from its parts. See DefineFlag.
func (r *Registry) Define(short, long, description string, requiresValue bool) error {
	return r.DefineFlag(&Flag{
		Short:         short,
		Long:          long,
		Description:   description,
		RequiresValue: requiresValue,
	})
}

// DefineFlag appends a copy of flag to the registry. It fails when the long name is
// empty or already defined, or when the short name is longer than one character,
// is "-" or is already used by another flag.
func (r *Registry) DefineFlag(flag *Flag) error {
	if flag == nil {
		return errs.ErrNilFlag
	}
	r.ensureInit()

	if flag.Long == "" {
		return errs.ErrEmptyFlag
	}
	if _, exists := r.flags.Get(flag.Long); exists {
		return errs.ErrFlagAlreadyExists.WithArgs(flag.Long)
	}
	if flag.Short != "" {
		if utf8.RuneCountInString(flag.Short) != 1 || !utf8.ValidString(flag.Short) || flag.Short == shortPrefix {
			return errs.ErrInvalidShortFlag.WithArgs(flag.Short, flag.Long)
		}
		if existing, exists := r.short[flag.Short]; exists {
			return errs.ErrShortFlagConflict.WithArgs(flag.Short, flag.Long, existing.Long)
		}
	}

	f := *flag
	r.flags.Set(f.Long, &f)
	if f.Short != "" {
		r.short[f.Short] = &f
	}

	return nil
}

// DefineAll is the batch form of DefineFlag. It stops at the first flag which
// cannot be defined; flags before it remain defined.
func (r *Registry) DefineAll(flags []*Flag) error {
	for _, flag := range flags {
		if err := r.DefineFlag(flag); err != nil {
			return err
		}
	}

	return nil
}

// FindByLong returns the flag whose long name is name
func (r *Registry) FindByLong(name string) (*Flag, bool) {
	if r == nil || r.flags == nil {
		return nil, false
	}

	return r.flags.Get(name)
}

// FindByShort returns the flag whose short name is name
func (r *Registry) FindByShort(name string) (*Flag, bool) {
	if r == nil || r.short == nil {
		return nil, false
	}
	flag, found := r.short[name]

	return flag, found
}

// Lookup resolves name as a long name first and as a short name second
func (r *Registry) Lookup(name string) (*Flag, bool) {
	if flag, found := r.FindByLong(name); found {
		return flag, true
	}

	return r.FindByShort(name)
}

// Flags returns the defined flags in definition order
func (r *Registry) Flags() []*Flag {
	if r == nil || r.flags == nil {
		return nil
	}

	flags := make([]*Flag, 0, r.flags.Len())
	for pair := r.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Value)
	}

	return flags
}

// Len returns the number of defined flags
func (r *Registry) Len() int {
	if r == nil || r.flags == nil {
		return 0
	}

	return r.flags.Len()
}

func (r *Registry) ensureInit() {
	if r.flags == nil {
		r.flags = orderedmap.New[string, *Flag]()
	}
	if r.short == nil {
		r.short = map[string]*Flag{}
	}
}
