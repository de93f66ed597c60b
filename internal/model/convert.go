package model

import (
	"strconv"
	"time"
)

// TimeLayout — формат хранения времени в документах: RFC3339 с
// фиксированной шириной дробной части, чтобы лексикографический
// порядок строк совпадал с хронологическим.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// asString приводит значение поля документа к строке.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// asFloat приводит число документа к float64. JSON декодирует числа
// как float64, Firestore может вернуть int64.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// asTime приводит значение поля к времени: RFC3339-строка или time.Time.
func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
