package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Text coerces v into display text. The boolean is false for Undefined and
// Null, which have no text form and yield "".
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindUndefined, KindNull:
		return "", false
	case KindString:
		return v.s, true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return FormatNumber(v.f), true
	case KindDate:
		if !v.valid {
			return "", true
		}
		return v.t.Format(time.RFC3339Nano), true
	case KindSeq, KindMap:
		b, err := json.Marshal(v.jsonValue())
		if err != nil {
			return fmt.Sprint(v.Native()), true
		}
		return string(b), true
	default:
		return fmt.Sprint(v.raw), true
	}
}

// String implements fmt.Stringer. Undefined and Null render as their kind name.
func (v Value) String() string {
	if s, ok := v.Text(); ok {
		return s
	}
	return v.kind.String()
}

// FormatNumber renders f with the shortest decimal representation that
// round-trips: 12345 -> "12345", 123.45 -> "123.45". Very large or very
// small magnitudes use exponent notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Native converts v back into plain Go values: nil, bool, int64, float64,
// string, []any, map[string]any, time.Time, or the wrapped payload.
func (v Value) Native() any {
	switch v.kind {
	case KindUndefined, KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, it := range v.seq {
			out[i] = it.Native()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, it := range v.m {
			out[k] = it.Native()
		}
		return out
	case KindDate:
		if !v.valid {
			return nil
		}
		return v.t
	default:
		return v.raw
	}
}

// jsonValue is Native with shapes JSON cannot carry mapped to encodable ones.
func (v Value) jsonValue() any {
	switch v.kind {
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil
		}
		return v.f
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, it := range v.seq {
			out[i] = it.jsonValue()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, it := range v.m {
			out[k] = it.jsonValue()
		}
		return out
	case KindFunc:
		return nil
	case KindOther:
		return fmt.Sprint(v.raw)
	default:
		return v.Native()
	}
}
