package util

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// CleanFloat maps NaN and Inf to 0 so values stay JSON encodable.
func CleanFloat(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0.0
	}
	return value
}

// GetValueAsString coerces loosely typed payload values to string. JSON
// numbers arrive as float64; integral ids are rendered without a decimal
// point ("118", not "118.000000").
func GetValueAsString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// GetValueAsFloat64 coerces loosely typed payload values to float64, falling
// back to defaultValue for anything unparseable.
func GetValueAsFloat64(value interface{}, defaultValue float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return defaultValue
		}
		return parsed
	default:
		return defaultValue
	}
}
