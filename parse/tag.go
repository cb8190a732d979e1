package parse

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/types"
)

// TagName is the struct tag key read by UnmarshalTagFormat
const TagName = "sarge"

// UnmarshalTagFormat parses a `sarge` struct tag of the form
//
//	name:kittens;short:k;desc:K is for kittens;value:true;default:tabby
//
// or, for a field holding a text argument, pos:0.
// Keys may appear in any order and all are optional. An empty tag yields an
// empty TagConfig.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*types.TagConfig, error) {
	config := &types.TagConfig{}
	if strings.TrimSpace(tag) == "" {
		return config, nil
	}

	for _, part := range strings.Split(tag, ";") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}

		switch strings.TrimSpace(key) {
		case "name":
			config.Name = value
		case "short":
			config.Short = value
		case "desc":
			config.Description = value
		case "default":
			config.Default = value
		case "value":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part).Wrap(err)
			}
			config.RequiresValue = &b
		case "pos":
			pos, err := Position(value)
			if err != nil {
				return nil, err
			}
			config.Position = &pos.Index
		default:
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}
	}

	return config, nil
}

// InferRequiresValue reports whether a field of type t should consume a value token.
// Booleans are presence flags, everything else takes a value.
func InferRequiresValue(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Kind() != reflect.Bool
}
