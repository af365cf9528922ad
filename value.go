package flatfield

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// stringify renders an arbitrary value as text for string-typed handling.
// nil and nil pointers render as "", matching an absent value in a record.
// Pointers are unwrapped before the Stringer check so a typed nil never
// reaches a value-receiver String method.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return stringify(rv.Elem().Interface())
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// floatValue coerces a presented value to float64 for numeric rendering.
// Unlike the parse path this is strict: text must be a complete number,
// since a caller formatting a record supplies values it already controls.
func floatValue(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		return parseFloatStrict(v)
	case []byte:
		return parseFloatStrict(string(v))
	default:
		return parseFloatStrict(stringify(v))
	}
}

func parseFloatStrict(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// timeValue unpacks a time.Time or non-nil *time.Time.
func timeValue(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}
