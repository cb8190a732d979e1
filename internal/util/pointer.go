package util

import (
	"reflect"
)

// UnwrapType recursively unwraps pointer types and returns the underlying type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

func typeName(data any) string {
	t := reflect.TypeOf(data)
	if t == nil {
		return "nil"
	}

	return UnwrapType(t).String()
}
