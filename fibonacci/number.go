package fibonacci

import (
	"math"
	"reflect"
	"strconv"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

type numberKind uint8

const (
	kindInt numberKind = iota + 1
	kindUint
	kindFloat
)

// float64 bounds of the int64 range: [-2^63, 2^63).
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// Number is a numeric argument normalized at the API boundary. It remembers
// the field it was supplied for so that conversion errors name it.
type Number struct {
	field string
	kind  numberKind
	i     int64
	u     uint64
	f     float64
}

// ParseNumber converts v into a Number. Every Go integer kind except uintptr
// and every floating-point kind is accepted, including named types built on
// them. Anything else fails with a TypeError naming field.
func ParseNumber(field string, v any) (Number, error) {
	if v == nil {
		return Number{}, apperrors.NewTypeError(field, "a number", v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number{field: field, kind: kindInt, i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number{field: field, kind: kindUint, u: rv.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return Number{field: field, kind: kindFloat, f: rv.Float()}, nil
	default:
		return Number{}, apperrors.NewTypeError(field, "a number", v)
	}
}

// IsFloat reports whether the value was supplied as a floating-point type,
// whatever its value.
func (n Number) IsFloat() bool { return n.kind == kindFloat }

// IsInteger reports whether the value is a whole number.
func (n Number) IsInteger() bool {
	if n.kind != kindFloat {
		return true
	}
	return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
}

// Sign returns -1, 0 or +1. NaN reports 0.
func (n Number) Sign() int {
	switch n.kind {
	case kindInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		}
	case kindUint:
		if n.u > 0 {
			return 1
		}
	case kindFloat:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		}
	}
	return 0
}

// Ceil rounds the value up to the nearest integer. Integers are returned
// unchanged. Non-finite values and results outside the int64 range fail with
// a ValidationError.
func (n Number) Ceil() (int64, error) {
	return n.toInt64(math.Ceil)
}

// Trunc truncates the value toward zero. It fails like Ceil.
func (n Number) Trunc() (int64, error) {
	return n.toInt64(math.Trunc)
}

// TruncSaturating truncates toward zero and clamps finite values outside the
// int64 range to its limits. Only non-finite values fail.
func (n Number) TruncSaturating() (int64, error) {
	v, err := n.toInt64(math.Trunc)
	if err == nil {
		return v, nil
	}
	if n.kind == 0 || n.kind == kindFloat && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return 0, err
	}
	if n.Sign() < 0 {
		return math.MinInt64, nil
	}
	return math.MaxInt64, nil
}

// String formats the value the way it was supplied.
func (n Number) String() string {
	switch n.kind {
	case kindInt:
		return strconv.FormatInt(n.i, 10)
	case kindUint:
		return strconv.FormatUint(n.u, 10)
	case kindFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return "<nil>"
}

func (n Number) toInt64(round func(float64) float64) (int64, error) {
	switch n.kind {
	case kindInt:
		return n.i, nil
	case kindUint:
		if n.u > math.MaxInt64 {
			return 0, n.outOfRange()
		}
		return int64(n.u), nil
	case kindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return 0, apperrors.ValidationError{Field: n.field, Message: "must be a finite number, got " + n.String()}
		}
		r := round(n.f)
		if r < minInt64Float || r >= maxInt64Float {
			return 0, n.outOfRange()
		}
		return int64(r), nil
	}
	return 0, apperrors.NewTypeError(n.field, "a number", nil)
}

func (n Number) outOfRange() error {
	return apperrors.ValidationError{Field: n.field, Message: n.String() + " is outside the int64 range"}
}
