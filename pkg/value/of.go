package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// Of converts a native Go value into a Value.
//
// nil and nil pointers become Null; pointers are otherwise dereferenced.
// Slices and arrays become Seq, maps become Map with keys rendered by fmt,
// funcs become Func and time.Time becomes Date. Structs, channels and other
// shapes become Other. Values of type Value are returned unchanged.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return String(t.String())
	case time.Time:
		return Date(t)
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			items[i] = Of(it)
		}
		return Value{kind: KindSeq, seq: items}
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, it := range t {
			m[k] = Of(it)
		}
		return Value{kind: KindMap, m: m}
	}

	return ofReflect(reflect.ValueOf(x))
}

func ofReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return Of(rv.Elem().Interface())
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = Of(rv.Index(i).Interface())
		}
		return Value{kind: KindSeq, seq: items}
	case reflect.Map:
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = Of(iter.Value().Interface())
		}
		return Value{kind: KindMap, m: m}
	case reflect.Func:
		if rv.IsNil() {
			return Null()
		}
		return Func(rv.Interface())
	default:
		return Other(rv.Interface())
	}
}
