package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToInt converts numeric values and numeric strings to int.
// The second return value is false when val holds no integer.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint16:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return ToInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(v, ":")))
		if err != nil {
			return 0, false
		}
		return i, true
	case []byte:
		return ToInt(string(v))
	default:
		return 0, false
	}
}

// ToBool converts bools, "1"/"true" strings and 1 to true.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case string:
		s := strings.TrimSpace(v)
		return s == "1" || strings.EqualFold(s, "true")
	default:
		return false
	}
}
