package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LegacyValueString renders a constant value the way emitted
// signatures expect it: decimal integers, long constants with an L
// suffix, float constants with an f suffix, quoted and escaped
// strings and characters, and division expressions for the
// non-finite floating point values.
func LegacyValueString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return strconv.Quote(val)
	case rune:
		return quoteChar(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10) + "L"
	case float32:
		switch {
		case math.IsNaN(float64(val)):
			return "(0.0f/0.0f)"
		case math.IsInf(float64(val), 1):
			return "(1.0f/0.0f)"
		case math.IsInf(float64(val), -1):
			return "(-1.0f/0.0f)"
		}
		return floatString(float64(val), 32) + "f"
	case float64:
		switch {
		case math.IsNaN(val):
			return "(0.0/0.0)"
		case math.IsInf(val, 1):
			return "(1.0/0.0)"
		case math.IsInf(val, -1):
			return "(-1.0/0.0)"
		}
		return floatString(val, 64)
	}
	return fmt.Sprintf("%v", v)
}

// LegacyValueString renders the field's constant using the declared
// type to disambiguate the use site: the same numeric payload prints
// as 'a' for a char field, 97L for a long field and 97 for an int
// field.
func (f *FieldItem) LegacyValueString() string {
	prim, ok := f.typ.(*PrimitiveType)
	if ok && f.constant != nil {
		switch prim.Kind {
		case PrimitiveChar:
			if n, ok := asInt64(f.constant); ok {
				return quoteChar(rune(n))
			}
		case PrimitiveLong:
			if n, ok := asInt64(f.constant); ok {
				return strconv.FormatInt(n, 10) + "L"
			}
		case PrimitiveByte, PrimitiveShort, PrimitiveInt:
			if n, ok := asInt64(f.constant); ok {
				return strconv.FormatInt(n, 10)
			}
		}
	}
	return LegacyValueString(f.constant)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
	}
	return 0, false
}

// floatString keeps a decimal point so 1 renders as 1.0.
func floatString(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func quoteChar(r rune) string {
	switch r {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	}
	if r < 0x20 || r > 0x7e {
		return fmt.Sprintf("'\\u%04x'", r)
	}
	return "'" + string(r) + "'"
}
