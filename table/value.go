package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the typed values a cell can hold.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Value is a cell's typed value. The zero Value is empty.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	t    time.Time
	d    time.Duration
}

func EmptyValue() Value           { return Value{} }
func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func IntValue(i int64) Value      { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value  { return Value{kind: KindFloat, f: f} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func DateValue(t time.Time) Value { return Value{kind: KindDate, t: t} }
func DurationValue(d time.Duration) Value {
	return Value{kind: KindDuration, d: d}
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) Str() string             { return v.str }
func (v Value) Int() int64              { return v.i }
func (v Value) Float() float64          { return v.f }
func (v Value) Bool() bool              { return v.b }
func (v Value) Date() time.Time         { return v.t }
func (v Value) Duration() time.Duration { return v.d }

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	case KindDuration:
		return v.d == o.d
	}
	return false
}

// Text renders the canonical textual form of the value: decimal for numbers,
// "true"/"false" for booleans, ISO 8601 for dates and durations.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02T15:04:05")
	case KindDuration:
		return FormatISODuration(v.d)
	default:
		return ""
	}
}

// Native returns the value as a plain Go scalar, or nil when empty.
func (v Value) Native() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindDate:
		return v.t
	case KindDuration:
		return v.d
	default:
		return nil
	}
}

// FormatISODuration renders d as an ISO 8601 duration like "PT1H30M15S".
func FormatISODuration(d time.Duration) string {
	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}
	sb.WriteString("PT")
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	fmt.Fprintf(&sb, "%02dH%02dM", h, m)
	if d%time.Second == 0 {
		fmt.Fprintf(&sb, "%02dS", d/time.Second)
	} else {
		fmt.Fprintf(&sb, "%06.3fS", d.Seconds())
	}
	return sb.String()
}

// ParseISODuration parses time-only ISO 8601 durations like "PT1H30M15S".
func ParseISODuration(s string) (time.Duration, error) {
	neg := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "PT") {
		return 0, fmt.Errorf("invalid ISO duration: %q", s)
	}
	rest = rest[2:]
	var d time.Duration
	num := ""
	for _, c := range rest {
		switch {
		case c >= '0' && c <= '9' || c == '.':
			num += string(c)
		case c == 'H' || c == 'M' || c == 'S':
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO duration: %q", s)
			}
			switch c {
			case 'H':
				d += time.Duration(f * float64(time.Hour))
			case 'M':
				d += time.Duration(f * float64(time.Minute))
			case 'S':
				d += time.Duration(f * float64(time.Second))
			}
			num = ""
		default:
			return 0, fmt.Errorf("invalid ISO duration: %q", s)
		}
	}
	if num != "" {
		return 0, fmt.Errorf("invalid ISO duration: %q", s)
	}
	if neg {
		d = -d
	}
	return d, nil
}
