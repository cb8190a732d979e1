//go:build !windows

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "flags and value",
			input: "--kittens cat foo",
			want:  []string{"--kittens", "cat", "foo"},
		},
		{
			name:  "quoted value",
			input: `-k "two cats" 'and a dog'`,
			want:  []string{"-k", "two cats", "and a dog"},
		},
		{
			name:  "escaped quotes",
			input: `-k \"cat\"`,
			want:  []string{"-k", `"cat"`},
		},
		{
			name:  "multiple spaces",
			input: "-ab   --snake    text",
			want:  []string{"-ab", "--snake", "text"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "variables are not expanded",
			input: "-k $HOME",
			want:  []string{"-k", "$HOME"},
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
