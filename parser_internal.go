package sarge

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/parse"
)

// parseArgs is the single pass over the arguments. pending is the value flag
// waiting for the next token, which is bound to it verbatim.
func parseArgs(registry *Registry, state parse.State, permissive bool, logger *slog.Logger) (*Result, error) {
	result := newResult(registry)

	var pending *Flag
	for state.Advance() {
		arg := state.CurrentArg()

		if pending != nil {
			result.bind(pending, arg)
			logger.Debug("bound value", "pos", state.Pos(), "flag", pending.Long, "value", arg)
			pending = nil
			continue
		}

		if !isFlag(arg) {
			result.addPositional(arg)
			logger.Debug("positional", "pos", state.Pos(), "arg", arg)
			continue
		}

		if !permissive && result.PositionalCount() > 0 {
			return nil, newParseError(state, errs.ErrFlagsAfterPositionals.WithArgs(arg))
		}

		var err error
		if isLongFlag(arg) {
			pending, err = parseLongFlag(result, registry, state, permissive, logger)
		} else {
			pending, err = parseShortCluster(result, registry, state, permissive, logger)
		}
		if err != nil {
			return nil, err
		}
	}

	if pending != nil {
		logger.Debug("input ended before value", "flag", pending.Long)
	}

	return result, nil
}

func parseLongFlag(result *Result, registry *Registry, state parse.State, permissive bool, logger *slog.Logger) (*Flag, error) {
	arg := state.CurrentArg()
	name := strings.TrimPrefix(arg, longPrefix)

	flag, found := registry.FindByLong(name)
	if !found {
		if permissive {
			logger.Debug("skipped unknown long flag", "pos", state.Pos(), "arg", arg)
			return nil, nil
		}
		return nil, newParseError(state, errs.ErrUnknownLongFlag.WithArgs(arg))
	}

	result.match(flag)
	logger.Debug("matched long flag", "pos", state.Pos(), "flag", flag.Long)
	if flag.RequiresValue {
		return flag, nil
	}

	return nil, nil
}

// parseShortCluster matches each character of a -abc cluster. Only the last
// character may require a value.
func parseShortCluster(result *Result, registry *Registry, state parse.State, permissive bool, logger *slog.Logger) (*Flag, error) {
	arg := state.CurrentArg()
	cluster := strings.TrimPrefix(arg, shortPrefix)

	for i := 0; i < len(cluster); {
		// invalid UTF-8 decodes with size 1, so short keeps the byte as typed
		_, size := utf8.DecodeRuneInString(cluster[i:])
		short := cluster[i : i+size]
		i += size
		flag, found := registry.FindByShort(short)
		if !found {
			if permissive {
				logger.Debug("skipped unknown short flag", "pos", state.Pos(), "short", short)
				continue
			}
			return nil, newParseError(state, errs.ErrUnknownShortFlag.WithArgs(shortPrefix+short))
		}

		result.match(flag)
		logger.Debug("matched short flag", "pos", state.Pos(), "short", short, "flag", flag.Long)
		if !flag.RequiresValue {
			continue
		}
		if i < len(cluster) {
			return nil, newParseError(state, errs.ErrValueFlagNotAtClusterEnd.WithArgs(short))
		}

		return flag, nil
	}

	return nil, nil
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, shortPrefix)
}

func isLongFlag(arg string) bool {
	return strings.HasPrefix(arg, longPrefix)
}

func newParseError(state parse.State, err error) *ParseError {
	return &ParseError{
		Pos: state.Pos(),
		Arg: state.CurrentArg(),
		Err: err,
	}
}
