package normalize

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"ClubStock/internal/model"
)

func TestNormalize_AliasEquivalence(t *testing.T) {
	// одно и то же количество в трёх написаниях заголовка
	variants := []map[string]any{
		{"Current Qty": "12"},
		{"Số lượng tồn": "12"},
		{"currentQty": 12},
	}
	for _, raw := range variants {
		rec := Normalize(raw, false)
		assert.Equal(t, float64(12), rec[model.FieldCurrentQty], "raw=%v", raw)
	}
}

func TestNormalize_NumericIdempotence(t *testing.T) {
	for _, s := range []string{"0", "3", "12.5", "1200000"} {
		rec := Normalize(map[string]any{"Qty": s}, false)
		first := rec[model.FieldCurrentQty].(float64)

		// прогоняем значение через строку и нормализуем снова
		again := Normalize(map[string]any{"Qty": strconv.FormatFloat(first, 'f', -1, 64)}, false)
		assert.Equal(t, first, again[model.FieldCurrentQty])
	}
}

func TestNormalize_NumericCleaning(t *testing.T) {
	// валюта и разделители разрядов вычищаются перед разбором
	rec := Normalize(map[string]any{"Unit Price": "1,200,000 đ"}, false)
	assert.Equal(t, float64(1200000), rec[model.FieldUnitPrice])
}

func TestNormalize_DashAndEmptyAreMissing(t *testing.T) {
	rec := Normalize(map[string]any{"Qty": "-", "Total": "", "Note": "-"}, false)
	assert.Equal(t, float64(0), rec[model.FieldCurrentQty])
	assert.Equal(t, float64(0), rec[model.FieldTotalQty])
	assert.Equal(t, "", rec[model.FieldNote])
}

func TestNormalize_PartialVsFullDefaults(t *testing.T) {
	raw := map[string]any{"Item": "Banner"}

	full := Normalize(raw, false)
	assert.Equal(t, float64(0), full[model.FieldUnitPrice])
	assert.Equal(t, float64(0), full[model.FieldCurrentQty])
	assert.Equal(t, "", full[model.FieldType])

	partial := Normalize(raw, true)
	assert.Equal(t, "Banner", partial[model.FieldItem])
	// незаполненные поля не попадают в частичный payload вовсе
	_, hasPrice := partial[model.FieldUnitPrice]
	assert.False(t, hasPrice)
	_, hasQty := partial[model.FieldCurrentQty]
	assert.False(t, hasQty)
	_, hasType := partial[model.FieldType]
	assert.False(t, hasType)
}

func TestNormalize_PartialBlankPriceDropped(t *testing.T) {
	// явно пустая цена при частичном обновлении не должна стать нулём
	partial := Normalize(map[string]any{"Item": "Banner", "Unit Price": ""}, true)
	_, hasPrice := partial[model.FieldUnitPrice]
	assert.False(t, hasPrice)
}

func TestNormalize_FullRecordShape(t *testing.T) {
	rec := Normalize(map[string]any{
		"Loại":        "Decor",
		"Tên":         " Banner ",
		"Số lượng tồn": "5",
		"Tổng số lượng": "8",
		"Đơn vị":      "cái",
		"Giá đơn vị":  "15000",
		"P.I.C":       "Minh",
		"Ghi chú":     "kho A",
	}, false)

	assert.Equal(t, "Decor", rec[model.FieldType])
	assert.Equal(t, "Banner", rec[model.FieldItem])
	assert.Equal(t, float64(5), rec[model.FieldCurrentQty])
	assert.Equal(t, float64(8), rec[model.FieldTotalQty])
	assert.Equal(t, "cái", rec[model.FieldUnit])
	assert.Equal(t, float64(15000), rec[model.FieldUnitPrice])
	assert.Equal(t, "Minh", rec[model.FieldPIC])
	assert.Equal(t, "kho A", rec[model.FieldNote])
}

func TestLookup_PriorityOrder(t *testing.T) {
	// точное совпадение раннего алиаса важнее позднего
	v, ok := Lookup(map[string]any{"Total": "5", "Total Quantity": "7"}, model.FieldTotalQty)
	assert.True(t, ok)
	assert.Equal(t, "7", v)
}

func TestNormalize_UnparseableTypesAreDefaults(t *testing.T) {
	// ячейки несовместимых типов не должны ронять нормализацию
	rec := Normalize(map[string]any{
		"Item": map[string]any{"oops": 1},
		"Qty":  []any{"x"},
	}, false)
	assert.Equal(t, "", rec[model.FieldItem])
	assert.Equal(t, float64(0), rec[model.FieldCurrentQty])
}
