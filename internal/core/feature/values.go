package feature

import (
	"fmt"
	"reflect"
)

// checkValue accepts scalars (string, bool, integers, floats) and slices or
// arrays of scalars. []any is accepted when every element is a scalar.
func checkValue(key string, value any) error {
	if value == nil {
		return &UnsupportedValueTypeError{Key: key, Type: "nil"}
	}
	v := reflect.ValueOf(value)
	if isScalarKind(v.Kind()) {
		return nil
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elem := v.Type().Elem()
		if isScalarKind(elem.Kind()) {
			return nil
		}
		if elem.Kind() != reflect.Interface {
			return &UnsupportedValueTypeError{Key: key, Type: v.Type().String()}
		}
		for i := 0; i < v.Len(); i++ {
			e := v.Index(i)
			if e.IsNil() || !isScalarKind(e.Elem().Kind()) {
				return &UnsupportedValueTypeError{Key: key, Type: fmt.Sprintf("%s element %d", v.Type(), i)}
			}
		}
		return nil
	}
	return &UnsupportedValueTypeError{Key: key, Type: v.Type().String()}
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// copyValue returns a value that shares no backing storage with v. Only
// slices need copying; scalars and arrays are already values.
func copyValue(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice || v.IsNil() {
		return value
	}
	out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	reflect.Copy(out, v)
	return out.Interface()
}

// copyValues deep-copies a checked value map.
func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = copyValue(v)
	}
	return out
}
