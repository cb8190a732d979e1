package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/types"
)

// DefaultListDelimiter splits list values on ',', '|' and ' '
func DefaultListDelimiter(matchOn rune) bool {
	return matchOn == ',' || matchOn == '|' || matchOn == ' '
}

// ConvertString converts value and stores it in data, which must be a pointer to one of
// the supported types. flag names the flag the value belongs to and is only used in
// error messages. A nil delimiterFunc selects DefaultListDelimiter.
func ConvertString(value string, data any, flag string, delimiterFunc types.ListDelimiterFunc) error {
	if delimiterFunc == nil {
		delimiterFunc = DefaultListDelimiter
	}

	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return errs.ErrParseBool.WithArgs(value, flag).Wrap(err)
		}
		*t = val
	case *int:
		return convertInt(value, flag, strconv.IntSize, t)
	case *int8:
		return convertInt(value, flag, 8, t)
	case *int16:
		return convertInt(value, flag, 16, t)
	case *int32:
		return convertInt(value, flag, 32, t)
	case *int64:
		return convertInt(value, flag, 64, t)
	case *uint:
		return convertUint(value, flag, strconv.IntSize, t)
	case *uint8:
		return convertUint(value, flag, 8, t)
	case *uint16:
		return convertUint(value, flag, 16, t)
	case *uint32:
		return convertUint(value, flag, 32, t)
	case *uint64:
		return convertUint(value, flag, 64, t)
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return errs.ErrParseFloat.WithArgs(value, flag).Wrap(err)
		}
		*t = float32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrParseFloat.WithArgs(value, flag).Wrap(err)
		}
		*t = val
	case *[]int:
		values := strings.FieldsFunc(value, delimiterFunc)
		temp := make([]int, len(values))
		for i, v := range values {
			if err := convertInt(v, flag, strconv.IntSize, &temp[i]); err != nil {
				return err
			}
		}
		*t = temp
	case *[]float64:
		values := strings.FieldsFunc(value, delimiterFunc)
		temp := make([]float64, len(values))
		for i, v := range values {
			val, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errs.ErrParseFloat.WithArgs(v, flag).Wrap(err)
			}
			temp[i] = val
		}
		*t = temp
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return errs.ErrParseDuration.WithArgs(value, flag).Wrap(err)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseAny(value)
		if err != nil {
			return errs.ErrParseTime.WithArgs(value, flag).Wrap(err)
		}
		*t = val
	default:
		return errs.ErrUnsupportedFieldType.WithArgs(typeName(data), flag)
	}

	return nil
}

// CanConvert reports whether ConvertString accepts data
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string, *bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64, *[]int, *[]float64,
		*time.Duration, *time.Time:
		return true
	}

	return false
}

func convertInt[T ~int | ~int8 | ~int16 | ~int32 | ~int64](value, flag string, bitSize int, out *T) error {
	val, err := strconv.ParseInt(value, 10, bitSize)
	if err != nil {
		return errs.ErrParseInt.WithArgs(value, flag).Wrap(err)
	}
	*out = T(val)

	return nil
}

func convertUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](value, flag string, bitSize int, out *T) error {
	val, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return errs.ErrParseInt.WithArgs(value, flag).Wrap(err)
	}
	*out = T(val)

	return nil
}
