package bind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Stringify renders a data value the way the engine writes and compares it:
// nil becomes the empty string, booleans become "true"/"false", numbers use
// their minimal decimal form, and sequences join their element-wise
// stringifications with commas. Everything that matches in this package
// matches through this one rule.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}

	if entries, ok := sequence(value); ok {
		parts := make([]string, len(entries))
		for i, entry := range entries {
			parts[i] = Stringify(entry)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", value)
}

// sequence normalizes slice and array values to []any. Strings and byte
// slices stay scalar.
func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []byte, string:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

func looseEqual(a, b any) bool {
	return Stringify(a) == Stringify(b)
}
