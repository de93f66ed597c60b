package normalize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ClubStock/internal/model"
)

// Пакет normalize приводит свободно набранные записи инвентаря
// (заголовки в любом из известных написаний, числа строками) к
// каноническому виду для записи в хранилище документов.

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// текстовые поля; item обрабатывается отдельно — у него нет «тихого»
// значения по умолчанию для потребителей (пустой item невалиден).
var textFields = []string{model.FieldType, model.FieldUnit, model.FieldPIC, model.FieldNote}

var numericFields = []string{model.FieldCurrentQty, model.FieldTotalQty}

// Normalize приводит запись к каноническому payload.
//
// partial=false: каждое каноническое поле получает значение (числа — 0,
// текст — пустая строка). partial=true: в результат попадают только
// поля с явным разрешимым значением, чтобы апдейт не затирал
// сохранённое; unitPrice при этом никогда не подменяется нулём.
//
// Normalize не возвращает ошибку: сбой на одной строке не должен
// прерывать пакетный импорт, поэтому при панике возвращается
// минимальная запись-заглушка.
func Normalize(raw map[string]any, partial bool) (rec map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			rec = fallbackRecord(raw)
		}
	}()

	rec = map[string]any{}

	if v, ok := textValue(Lookup(raw, model.FieldItem)); ok {
		rec[model.FieldItem] = v
	} else if !partial {
		rec[model.FieldItem] = ""
	}

	for _, field := range textFields {
		if v, ok := textValue(Lookup(raw, field)); ok {
			rec[field] = v
		} else if !partial {
			rec[field] = ""
		}
	}

	for _, field := range numericFields {
		if n, ok := numberValue(Lookup(raw, field)); ok {
			rec[field] = n
		} else if !partial {
			rec[field] = float64(0)
		}
	}

	// unitPrice: при partial отсутствующая цена выпадает из payload
	// целиком — записать 0 значило бы потерять состояние «цена не задана».
	if n, ok := numberValue(Lookup(raw, model.FieldUnitPrice)); ok {
		rec[model.FieldUnitPrice] = n
	} else if !partial {
		rec[model.FieldUnitPrice] = float64(0)
	}

	return rec
}

// Lookup ищет значение канонического поля в записи: сначала сам
// канонический ключ, затем алиасы в порядке приоритета. Каждый вариант
// проверяется на точное совпадение ключа, потом на вхождение подстроки.
func Lookup(raw map[string]any, field string) (any, bool) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	candidates := append([]string{field}, Aliases[field]...)
	for _, alias := range candidates {
		alias = strings.ToLower(alias)
		for _, k := range keys {
			if strings.ToLower(strings.TrimSpace(k)) == alias {
				if v := raw[k]; v != nil {
					return v, true
				}
			}
		}
		for _, k := range keys {
			if strings.Contains(strings.ToLower(k), alias) {
				if v := raw[k]; v != nil {
					return v, true
				}
			}
		}
	}
	return nil, false
}

func numberValue(v any, ok bool) (float64, bool) {
	if !ok {
		return 0, false
	}
	return Number(v)
}

func textValue(v any, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return Text(v)
}

// Number разбирает числовое значение ячейки. nil, пустая строка и "-"
// считаются отсутствием значения; из строки перед разбором убирается
// всё, кроме цифр, точки и минуса.
func Number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" || s == "-" {
			return 0, false
		}
		s = nonNumeric.ReplaceAllString(s, "")
		if s == "" || s == "-" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text разбирает текстовое значение ячейки: обрезает пробелы, пустую
// строку и "-" считает отсутствием значения.
func Text(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "", false
	}
	return s, true
}

// fallbackRecord — запись-заглушка для строки, на которой нормализация
// упала: имя берётся из наиболее похожего сырого поля либо "Unknown",
// количества нулевые.
func fallbackRecord(raw map[string]any) map[string]any {
	item := "Unknown"
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "item") || strings.Contains(lk, "tên") {
			if s, sok := raw[k].(string); sok && strings.TrimSpace(s) != "" {
				item = strings.TrimSpace(s)
				break
			}
		}
	}
	return map[string]any{
		model.FieldItem:       item,
		model.FieldType:       "",
		model.FieldCurrentQty: float64(0),
		model.FieldTotalQty:   float64(0),
		model.FieldUnit:       "",
		model.FieldUnitPrice:  float64(0),
		model.FieldPIC:        "",
		model.FieldNote:       "",
	}
}
