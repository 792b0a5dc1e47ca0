package options

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
)

// Kind identifies which variant a Value carries.
type Kind uint8

const (
	// KindRaw marks values outside the editor option value-space (floats,
	// nested mappings, mixed lists, null). They pass through every stage
	// untouched.
	KindRaw Kind = iota
	KindText
	KindInt
	KindBool
	KindList
	// KindCallback marks text that holds a client-side function literal.
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindCallback:
		return "callback"
	default:
		return "raw"
	}
}

var callbackPattern = regexp.MustCompile(`^\s*(?:function\s*\(|\([^()]*\)\s*=>)`)

// IsCallbackSource reports whether text has the shape of a client function
// literal (`function (...) {...}` or `(...) => ...`).
func IsCallbackSource(text string) bool {
	return callbackPattern.MatchString(text)
}

// Value is a single editor option value. The zero Value is a raw nil.
type Value struct {
	kind Kind
	text string
	num  int
	flag bool
	list []string
	raw  any
}

// Text builds a plain text value. Callback-shaped text is not detected here;
// use ValueOf for boundary conversion.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int builds an integer value.
func Int(n int) Value { return Value{kind: KindInt, num: n} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List builds an ordered text sequence. The input slice is copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string{}, items...)}
}

// Callback builds a client function literal value from its source text.
func Callback(source string) Value { return Value{kind: KindCallback, text: source} }

// Raw wraps a value the encoder does not know about.
func Raw(v any) Value { return Value{kind: KindRaw, raw: v} }

// ValueOf converts a decoded document value into a Value. Strings that look
// like function literals become callbacks, lists made only of strings become
// KindList, integral numbers become KindInt. Anything else is kept as raw.
func ValueOf(v any) Value {
	switch typed := v.(type) {
	case Value:
		return typed.clone()
	case string:
		if IsCallbackSource(typed) {
			return Callback(typed)
		}
		return Text(typed)
	case bool:
		return Bool(typed)
	case int:
		return Int(typed)
	case int8:
		return Int(int(typed))
	case int16:
		return Int(int(typed))
	case int32:
		return Int(int(typed))
	case int64:
		if typed < math.MinInt || typed > math.MaxInt {
			return Raw(typed)
		}
		return Int(int(typed))
	case uint8:
		return Int(int(typed))
	case uint16:
		return Int(int(typed))
	case uint32:
		return Int(int(typed))
	case uint:
		if typed > math.MaxInt {
			return Raw(typed)
		}
		return Int(int(typed))
	case uint64:
		if typed > math.MaxInt {
			return Raw(typed)
		}
		return Int(int(typed))
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return ValueOf(n)
		}
		if f, err := typed.Float64(); err == nil {
			return Raw(f)
		}
		return Raw(typed.String())
	case []string:
		return List(typed...)
	case []any:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return Raw(typed)
			}
			items = append(items, s)
		}
		return List(items...)
	default:
		return Raw(v)
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Text returns the text for KindText and KindCallback values.
func (v Value) Text() (string, bool) {
	if v.kind != KindText && v.kind != KindCallback {
		return "", false
	}
	return v.text, true
}

// Int returns the integer for KindInt values.
func (v Value) Int() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// Bool returns the flag for KindBool values.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// List returns a copy of the items for KindList values.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]string{}, v.list...), true
}

// Interface returns the plain Go value: string, int, bool, []string, the
// callback source string, or the raw payload.
func (v Value) Interface() any {
	switch v.kind {
	case KindText, KindCallback:
		return v.text
	case KindInt:
		return v.num
	case KindBool:
		return v.flag
	case KindList:
		return append([]string{}, v.list...)
	default:
		return v.raw
	}
}

// Equal reports whether two values carry the same variant and payload. Raw
// payloads are compared by their JSON encoding.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText, KindCallback:
		return v.text == other.text
	case KindInt:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindList:
		return slices.Equal(v.list, other.list)
	default:
		left, lerr := json.Marshal(v.raw)
		right, rerr := json.Marshal(other.raw)
		if lerr != nil || rerr != nil {
			return false
		}
		return string(left) == string(right)
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindText, KindCallback:
		return v.text
	default:
		return fmt.Sprint(v.Interface())
	}
}

func (v Value) clone() Value {
	if v.kind == KindList {
		v.list = append([]string{}, v.list...)
	}
	return v
}
