package sarge

import (
	"strconv"
	"time"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/internal/util"
	"github.com/napalu/sarge/types"
)

// Value returns the value bound to flag name, falling back to the DefaultValue of its
// definition. It fails with errs.ErrFlagNotFound when name is not defined or was not
// matched and has no default, and with errs.ErrFlagHasNoValue when the flag takes no
// value or ended the input without one.
func (r *Result) Value(name string) (string, error) {
	if r == nil {
		return "", errs.ErrFlagNotFound.WithArgs(name)
	}
	flag, found := r.registry.Lookup(name)
	if !found {
		return "", errs.ErrFlagNotFound.WithArgs(name)
	}
	if !flag.RequiresValue {
		return "", errs.ErrFlagHasNoValue.WithArgs(flag.Long)
	}

	fr, matched := r.flags[flag.Long]
	if matched && fr.hasValue {
		return fr.value, nil
	}
	if flag.DefaultValue != "" {
		return flag.DefaultValue, nil
	}
	if matched {
		return "", errs.ErrFlagHasNoValue.WithArgs(flag.Long)
	}

	return "", errs.ErrFlagNotFound.WithArgs(name)
}

// GetOrDefault returns the value of flag name (see Value) or defaultValue if there is none
func (r *Result) GetOrDefault(name string, defaultValue string) string {
	value, err := r.Value(name)
	if err != nil {
		return defaultValue
	}

	return value
}

// Bool returns whether a flag which takes no value was matched. For a value flag the
// value is parsed with strconv.ParseBool.
func (r *Result) Bool(name string) (bool, error) {
	if r == nil {
		return false, errs.ErrFlagNotFound.WithArgs(name)
	}
	flag, found := r.registry.Lookup(name)
	if !found {
		return false, errs.ErrFlagNotFound.WithArgs(name)
	}
	if !flag.RequiresValue {
		return r.Exists(name), nil
	}

	var val bool
	err := r.convert(name, &val, nil)

	return val, err
}

// Int attempts to convert the value of flag name to an integer of bitSize bits
func (r *Result) Int(name string, bitSize int) (int64, error) {
	value, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseInt(value, 10, bitSize)
	if err != nil {
		return 0, errs.ErrParseInt.WithArgs(value, name).Wrap(err)
	}

	return val, nil
}

// Float attempts to convert the value of flag name to a float of bitSize bits
func (r *Result) Float(name string, bitSize int) (float64, error) {
	value, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(value, bitSize)
	if err != nil {
		return 0, errs.ErrParseFloat.WithArgs(value, name).Wrap(err)
	}

	return val, nil
}

// Duration attempts to convert the value of flag name with time.ParseDuration
func (r *Result) Duration(name string) (time.Duration, error) {
	var val time.Duration
	err := r.convert(name, &val, nil)

	return val, err
}

// Time attempts to convert the value of flag name to a time. Most common date formats
// are recognized.
func (r *Result) Time(name string) (time.Time, error) {
	var val time.Time
	err := r.convert(name, &val, nil)

	return val, err
}

// List splits the value of flag name on ',', '|' and ' '
func (r *Result) List(name string) ([]string, error) {
	return r.ListWith(name, nil)
}

// ListWith splits the value of flag name on the runes matched by delimiterFunc
func (r *Result) ListWith(name string, delimiterFunc types.ListDelimiterFunc) ([]string, error) {
	var val []string
	err := r.convert(name, &val, delimiterFunc)

	return val, err
}

func (r *Result) convert(name string, data any, delimiterFunc types.ListDelimiterFunc) error {
	value, err := r.Value(name)
	if err != nil {
		return err
	}

	return util.ConvertString(value, data, name, delimiterFunc)
}
