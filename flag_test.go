package sarge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFlag(t *testing.T) {
	flag := NewFlag(
		WithLongFlag("kittens"),
		WithShortFlag("k"),
		WithDescription("K is for kittens"),
		WithValue(true),
		WithDefaultValue("tabby"),
	)

	assert.Equal(t, &Flag{
		Short:         "k",
		Long:          "kittens",
		Description:   "K is for kittens",
		RequiresValue: true,
		DefaultValue:  "tabby",
	}, flag)
}

func TestFlag_SetStopsOnError(t *testing.T) {
	failing := func(flag *Flag, err *error) {
		*err = errors.New("boom")
	}

	flag := &Flag{}
	err := flag.Set(WithLongFlag("a"), failing, WithShortFlag("b"))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "a", flag.Long)
	assert.Empty(t, flag.Short)
}

func TestFlag_String(t *testing.T) {
	tests := []struct {
		name string
		flag *Flag
		want string
	}{
		{
			name: "long only",
			flag: &Flag{Long: "snake"},
			want: "--snake",
		},
		{
			name: "short and value",
			flag: &Flag{Long: "kittens", Short: "k", RequiresValue: true},
			want: "--kittens or -k <val>",
		},
		{
			name: "description",
			flag: &Flag{Long: "help", Short: "h", Description: "show help"},
			want: `--help or -h "show help"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flag.String())
		})
	}
}
