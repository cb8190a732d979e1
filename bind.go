package sarge

import (
	"errors"
	"reflect"

	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/internal/util"
	"github.com/napalu/sarge/parse"
)

// fieldFlag links a struct field to the flag defined for it, or to a text argument
// when position is set
type fieldFlag struct {
	index    int
	name     string
	flag     *Flag
	position *int
}

// NewRegistryFromStruct defines one flag per exported field of structWithTags. Fields are
// described by `sarge` tags:
//
//	type Options struct {
//		Kittens string `sarge:"short:k;desc:K is for kittens"`
//		Help    bool   `sarge:"short:h;desc:show help"`
//		File    string `sarge:"pos:0"`
//		Skip    string `sarge:"-"`
//	}
//
// The long name defaults to DefaultFlagNameConverter applied to the field name. Bool
// fields take no value unless the tag says value:true; all other fields take a value.
// Fields tagged with pos define no flag; Unmarshal fills them from text arguments.
func NewRegistryFromStruct[T any](structWithTags *T) (*Registry, error) {
	if structWithTags == nil {
		return nil, errs.ErrBindNil
	}
	fields, err := structFlags(reflect.TypeOf(structWithTags))
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, f := range fields {
		if f.flag == nil {
			continue
		}
		if err := registry.DefineFlag(f.flag); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// NewParserFromStruct returns a Parser whose flags are defined by the fields of
// structWithTags (see NewRegistryFromStruct). configs are applied afterwards.
func NewParserFromStruct[T any](structWithTags *T, configs ...ConfigureParserFunc) (*Parser, error) {
	registry, err := NewRegistryFromStruct(structWithTags)
	if err != nil {
		return nil, err
	}

	return NewParserWith(append([]ConfigureParserFunc{WithRegistry(registry)}, configs...)...)
}

// Unmarshal copies the outcome of a parse into the fields of v, a pointer to a struct
// described by `sarge` tags. Bool presence flags are set when matched; value flags are
// converted from their bound value or their default; pos fields are converted from the
// text argument at their index. Fields whose flag or text argument is absent and which
// have no default are left untouched.
func Unmarshal(result *Result, v any) error {
	if v == nil {
		return errs.ErrBindNil
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return errs.ErrPointerToStructExpected.WithArgs(val.Type().String())
	}

	fields, err := structFlags(val.Type())
	if err != nil {
		return err
	}

	target := val.Elem()
	for _, f := range fields {
		field := target.Field(f.index)
		if f.position != nil {
			if value, found := result.Positional(*f.position); found {
				if err := util.ConvertString(value, field.Addr().Interface(), f.name, nil); err != nil {
					return err
				}
			}
			continue
		}
		if !f.flag.RequiresValue {
			if result.Exists(f.flag.Long) {
				field.SetBool(true)
			} else if f.flag.DefaultValue != "" {
				if err := util.ConvertString(f.flag.DefaultValue, field.Addr().Interface(), f.flag.Long, nil); err != nil {
					return err
				}
			}
			continue
		}

		value, err := result.Value(f.flag.Long)
		if errors.Is(err, errs.ErrFlagNotFound) || errors.Is(err, errs.ErrFlagHasNoValue) {
			continue
		}
		if err != nil {
			return err
		}
		if err := util.ConvertString(value, field.Addr().Interface(), f.flag.Long, nil); err != nil {
			return err
		}
	}

	return nil
}

func structFlags(t reflect.Type) ([]fieldFlag, error) {
	t = util.UnwrapType(t)
	if t.Kind() != reflect.Struct {
		return nil, errs.ErrPointerToStructExpected.WithArgs(t.String())
	}

	var fields []fieldFlag
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup(parse.TagName)
		if ok && tag == "-" {
			continue
		}
		if !util.CanConvert(reflect.New(field.Type).Interface()) {
			return nil, errs.ErrUnsupportedFieldType.WithArgs(field.Type.String(), field.Name)
		}

		config, err := parse.UnmarshalTagFormat(tag, field)
		if err != nil {
			return nil, err
		}
		if config.Position != nil {
			fields = append(fields, fieldFlag{index: i, name: field.Name, position: config.Position})
			continue
		}

		requiresValue := parse.InferRequiresValue(field.Type)
		if config.RequiresValue != nil {
			requiresValue = *config.RequiresValue
		}
		if !requiresValue && field.Type.Kind() != reflect.Bool {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, "value:false")
		}

		name := config.Name
		if name == "" {
			name = DefaultFlagNameConverter(field.Name)
		}

		fields = append(fields, fieldFlag{
			index: i,
			name:  field.Name,
			flag: &Flag{
				Short:         config.Short,
				Long:          name,
				Description:   config.Description,
				RequiresValue: requiresValue,
				DefaultValue:  config.Default,
			},
		})
	}

	return fields, nil
}
