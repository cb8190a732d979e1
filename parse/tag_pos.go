package parse

import (
	"strconv"
	"strings"

	"github.com/napalu/sarge/errs"
)

// PositionData represents a parsed position configuration
type PositionData struct {
	Index int // Zero-based index into the text arguments
}

// Position parses the value of a pos tag key, a non-negative index
func Position(input string) (*PositionData, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return nil, errs.ErrInvalidPosition.WithArgs(input)
	}
	idx, err := strconv.Atoi(value)
	if err != nil {
		return nil, errs.ErrInvalidPosition.WithArgs(input).Wrap(err)
	}
	if idx < 0 {
		return nil, errs.ErrInvalidPosition.WithArgs(input)
	}

	return &PositionData{Index: idx}, nil
}
