package cast

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrNil is returned when a nil value is coerced to text.
var ErrNil = errors.New("cannot convert nil")

// To converts v to type T.
func To[T Type](v any) (T, error) {
	var zero T

	switch t := any(zero).(type) {
	case int:
		return toIntOrBase[T, int](v)
	case int32:
		return toIntOrBase[T, int32](v)
	case int64:
		return toIntOrBase[T, int64](v)
	case uint:
		return toIntOrBase[T, uint](v)
	case uint64:
		return toIntOrBase[T, uint64](v)
	case string:
		return toBase[T, string](v)
	case bool:
		return toBase[T, bool](v)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T", t, v)
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Text coerces v to its textual form: strings and byte slices as they are,
// fmt.Stringer and error values through their methods, numbers and booleans
// in their canonical decimal form. A nil v fails with ErrNil.
func Text(v any) (string, error) {
	if v == nil {
		return "", ErrNil
	}

	return To[string](v)
}

// toInt converts to the integer type I using safemath to avoid
// overflow/underflow and then re-types the result as T (which is the caller's
// type parameter).
func toInt[T any, I Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T (which is the caller's type parameter).
func toBase[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toIntOrBase converts v to the integer type I. Integer inputs go through
// safemath, anything else (numeric strings, floats) through cast.ToE.
func toIntOrBase[T any, I IntersectionType](v any) (T, error) {
	if isIntVal(v) {
		return toInt[T, I](v)
	}

	return toBase[T, I](v)
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
