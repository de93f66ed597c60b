package sheet

import (
	"strconv"
	"strings"

	"ClubStock/internal/model"
	"ClubStock/internal/normalize"
)

// Пакет sheet находит строку заголовка в уже распарсенной таблице
// (2D-массив ячеек) и проецирует остальные строки в сырые записи для
// нормализатора. Декодирование XLSX/CSV — забота вызывающей стороны.

// maxHeaderScan — сколько первых строк просматривается в поисках
// заголовка: выше обычно лежат титулы и пустые строки.
const maxHeaderScan = 15

// DetectHeaderRow ищет строку заголовка и строит карту
// «каноническое поле → индекс колонки».
//
// Строка считается заголовком, только если в ней нашлась колонка Item
// и хотя бы одна из колонок Type/Quantity в другой позиции — защита от
// случайного совпадения одной ячейки сразу с несколькими ролями.
// Возвращает карту, индекс строки заголовка и признак успеха.
func DetectHeaderRow(rows [][]any) (map[string]int, int, bool) {
	limit := len(rows)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}

	for ri := 0; ri < limit; ri++ {
		cells := rows[ri]

		itemIdx := matchColumn(cells, model.FieldItem)
		typeIdx := matchColumn(cells, model.FieldType)
		qtyIdx := matchColumn(cells, model.FieldCurrentQty)

		if itemIdx < 0 {
			continue
		}
		if !(typeIdx >= 0 && typeIdx != itemIdx) && !(qtyIdx >= 0 && qtyIdx != itemIdx) {
			continue
		}

		colMap := map[string]int{}
		for _, field := range normalize.Fields {
			if idx := matchColumn(cells, field); idx >= 0 {
				colMap[field] = idx
			}
		}
		// Полная карта обязана содержать колонку Item; иначе строка
		// бракуется и поиск продолжается.
		if _, ok := colMap[model.FieldItem]; !ok {
			continue
		}
		return colMap, ri, true
	}
	return nil, 0, false
}

// ProjectRows проецирует строки после заголовка в сырые записи по
// карте колонок. Пустые строки не выбрасываются: их отсеет и посчитает
// импортёр.
func ProjectRows(rows [][]any, headerIdx int, colMap map[string]int) []map[string]any {
	records := make([]map[string]any, 0, len(rows))
	for ri := headerIdx + 1; ri < len(rows); ri++ {
		row := rows[ri]
		rec := map[string]any{}
		for field, ci := range colMap {
			if ci < len(row) {
				rec[field] = row[ci]
			}
		}
		records = append(records, rec)
	}
	return records
}

// Records — полный конвейер чтения таблицы: поиск заголовка и проекция.
// Если заголовок не найден, первая строка трактуется как буквальные
// имена полей — свободное сопоставление с алиасами сделает нормализатор.
func Records(rows [][]any) []map[string]any {
	if colMap, headerIdx, ok := DetectHeaderRow(rows); ok {
		return ProjectRows(rows, headerIdx, colMap)
	}

	if len(rows) < 2 {
		return nil
	}
	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = cellText(cell)
	}

	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := map[string]any{}
		for ci, key := range headers {
			if key == "" || ci >= len(row) {
				continue
			}
			rec[key] = row[ci]
		}
		records = append(records, rec)
	}
	return records
}

// matchColumn возвращает индекс первой колонки, текст которой содержит
// любой из алиасов поля, или -1.
func matchColumn(cells []any, field string) int {
	aliases := append([]string{field}, normalize.Aliases[field]...)
	for ci, cell := range cells {
		text := strings.ToLower(cellText(cell))
		if text == "" {
			continue
		}
		for _, alias := range aliases {
			if strings.Contains(text, strings.ToLower(alias)) {
				return ci
			}
		}
	}
	return -1
}

func cellText(cell any) string {
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
