package util

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapType(t *testing.T) {
	assert.Equal(t, reflect.String, UnwrapType(reflect.TypeOf(ptr(ptr("x")))).Kind())
	assert.Equal(t, reflect.Struct, UnwrapType(reflect.TypeOf(&struct{}{})).Kind())
	assert.Equal(t, reflect.Int, UnwrapType(reflect.TypeOf(1)).Kind())
}

func ptr[T any](v T) *T {
	return &v
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nil", typeName(nil))
	assert.Equal(t, "int", typeName(ptr(ptr(1))))
	assert.Equal(t, "map[string]int", typeName(map[string]int{}))
}
