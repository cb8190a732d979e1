package sarge

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/parse"
	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add("-abk tabby foo", false)
	f.Add("--kittens -x", false)
	f.Add("-akb", true)
	f.Add("pos1 -a", false)
	f.Add("pos1 -a", true)
	f.Add("--bogus", true)
	f.Add("-", false)
	f.Add("-- value", true)
	f.Add("-漢字 こんにちは", true)
	f.Add("-a\xff漢 k", false)
	f.Add("-n -123.45 -k", false)
	f.Fuzz(func(t *testing.T, rawArgs string, permissive bool) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}

		r := NewRegistry()
		_ = r.DefineAll([]*Flag{
			{Short: "a", Long: "apple"},
			{Short: "b", Long: "bear"},
			{Short: "k", Long: "kittens", RequiresValue: true},
			{Short: "n", Long: "number", RequiresValue: true},
			{Short: "漢", Long: "kanji"},
			{Long: "snake"},
		})
		p := NewParser(r)
		p.SetPermissive(permissive)

		result, err := p.Parse(args)
		if err != nil {
			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
			assert.True(t, pe.Pos >= 0 && pe.Pos < len(args))
			assert.Equal(t, args[pe.Pos], pe.Arg)
			assert.True(t, strings.HasPrefix(pe.Arg, "-"), "only flag tokens fail")
			if permissive {
				assert.True(t, errors.Is(err, errs.ErrValueFlagNotAtClusterEnd))
			}
			assert.NotContains(t, err.Error(), "%!")
			return
		}

		// every token is a flag, a value or a text argument
		assert.LessOrEqual(t, result.PositionalCount(), len(args))
		for _, pos := range result.Positionals() {
			assert.Contains(t, args, pos)
		}
		for _, name := range result.MatchedFlags() {
			assert.True(t, result.Exists(name))
		}
		assert.GreaterOrEqual(t, result.MatchedFlagCount(), len(result.MatchedFlags()))

		// parsing the same input again gives the same outcome
		again, err := p.Parse(args)
		assert.NoError(t, err)
		assert.Equal(t, result.MatchedFlags(), again.MatchedFlags())
		assert.Equal(t, result.Positionals(), again.Positionals())

		var buf bytes.Buffer
		assert.NoError(t, p.PrintHelp(&buf))
		assert.NotContains(t, buf.String(), "%!")
	})
}
