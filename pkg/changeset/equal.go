package changeset

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

var (
	jsonNumberType = reflect.TypeOf(json.Number(""))
	timeType       = reflect.TypeOf(time.Time{})
)

// Equal reports structural equality of two values.
//
// Pointers and interfaces are followed; a nil pointer equals nil. Numbers of
// any Go numeric kind (and json.Number) compare by value, so a decoded
// float64(120) equals int(120). Strings never equal numbers. Sequences compare
// element-wise in order, maps by key set and per-key value, regardless of
// insertion order. time.Time values compare with Time.Equal.
func Equal(a, b any) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	a, b = indirect(a), indirect(b)
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && !b.IsValid()
	}

	if a.Type() == timeType || b.Type() == timeType {
		if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() {
			return false
		}
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	}

	if isNumber(a) || isNumber(b) {
		return isNumber(a) && isNumber(b) && numbersEqual(a, b)
	}

	switch a.Kind() {
	case reflect.String:
		return b.Kind() == reflect.String && a.String() == b.String()

	case reflect.Bool:
		return b.Kind() == reflect.Bool && a.Bool() == b.Bool()

	case reflect.Slice, reflect.Array:
		if b.Kind() != reflect.Slice && b.Kind() != reflect.Array {
			return false
		}
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if b.Kind() != reflect.Map || a.Len() != b.Len() {
			return false
		}
		bKey := b.Type().Key()
		iter := a.MapRange()
		for iter.Next() {
			k := iter.Key()
			if !k.Type().ConvertibleTo(bKey) {
				return false
			}
			bv := b.MapIndex(k.Convert(bKey))
			if !bv.IsValid() || !equalValue(iter.Value(), bv) {
				return false
			}
		}
		return true

	case reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	default:
		if a.CanInterface() && b.CanInterface() {
			return reflect.DeepEqual(a.Interface(), b.Interface())
		}
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNumber(v reflect.Value) bool {
	if v.Type() == jsonNumberType {
		return true
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

type number struct {
	i     int64
	f     float64
	isInt bool
	ok    bool
}

func toNumber(v reflect.Value) number {
	if v.Type() == jsonNumberType {
		s := v.String()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return number{i: i, f: float64(i), isInt: true, ok: true}
		}
		f, err := strconv.ParseFloat(s, 64)
		return number{f: f, ok: err == nil}
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		return number{i: i, f: float64(i), isInt: true, ok: true}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > 1<<63-1 {
			return number{f: float64(u), ok: true}
		}
		return number{i: int64(u), f: float64(u), isInt: true, ok: true}
	default:
		f := v.Float()
		if f == float64(int64(f)) {
			return number{i: int64(f), f: f, isInt: true, ok: true}
		}
		return number{f: f, ok: true}
	}
}

func numbersEqual(a, b reflect.Value) bool {
	x, y := toNumber(a), toNumber(b)
	if !x.ok || !y.ok {
		return false
	}
	if x.isInt && y.isInt {
		return x.i == y.i
	}
	return x.f == y.f
}
