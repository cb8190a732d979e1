package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWindows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple",
			input: "--kittens cat foo",
			want:  []string{"--kittens", "cat", "foo"},
		},
		{
			name:  "double quotes",
			input: `-k "two cats"`,
			want:  []string{"-k", "two cats"},
		},
		{
			name:  "empty quoted argument",
			input: `-k ""`,
			want:  []string{"-k", ""},
		},
		{
			name:  "caret escape",
			input: "-k ^\"cat",
			want:  []string{"-k", `"cat`},
		},
		{
			name:  "backslash before quote",
			input: `-k "a\"b"`,
			want:  []string{"-k", `a"b`},
		},
		{
			name:  "literal backslashes",
			input: `C:\dir\file`,
			want:  []string{`C:\dir\file`},
		},
		{
			name:    "unterminated quote",
			input:   `-k "cat`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
