// Package record turns raw scraped table cells into typed values. A Value is
// a small tagged union so missing data stays explicitly missing instead of
// masquerading as a zero or a NaN.
package record

import (
	"strconv"
	"time"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one typed cell. The zero Value is Missing.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	t    time.Time
}

func MissingValue() Value         { return Value{} }
func IntValue(v int64) Value      { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value  { return Value{kind: KindFloat, f: v} }
func TextValue(v string) Value    { return Value{kind: KindText, s: v} }
func BoolValue(v bool) Value      { return Value{kind: KindBool, b: v} }
func DateValue(v time.Time) Value { return Value{kind: KindDate, t: v} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }

func (v Value) Int() int64      { return v.i }
func (v Value) Float() float64  { return v.f }
func (v Value) Text() string    { return v.s }
func (v Value) Bool() bool      { return v.b }
func (v Value) Date() time.Time { return v.t }

// Num returns the value as a float64 for arithmetic. The second return is
// false for anything that is not an Int or Float.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Interface returns the native Go value, or nil when missing. Used for JSON
// serialization of dataset rows.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindBool:
		return v.b
	case KindDate:
		return v.t.Format("2006-01-02")
	default:
		return nil
	}
}

// String renders the value for CSV output. Missing renders as the empty
// string so downstream tools read it as absent rather than zero.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}
