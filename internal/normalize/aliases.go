package normalize

import "ClubStock/internal/model"

// Fields — канонические поля записи инвентаря в порядке колонок
// привычных клубу таблиц.
var Fields = []string{
	model.FieldType,
	model.FieldItem,
	model.FieldCurrentQty,
	model.FieldTotalQty,
	model.FieldUnit,
	model.FieldUnitPrice,
	model.FieldPIC,
	model.FieldNote,
}

// Aliases — допустимые написания заголовка для каждого канонического
// поля, в порядке приоритета. Сопоставление регистронезависимое;
// сам канонический ключ всегда проверяется первым.
var Aliases = map[string][]string{
	model.FieldType:       {"type", "loại"},
	model.FieldItem:       {"item", "tên", "vật phẩm"},
	model.FieldCurrentQty: {"current quantity", "current qty", "qty", "số lượng tồn"},
	model.FieldTotalQty:   {"total quantity", "total qty", "tổng số lượng", "total"},
	model.FieldUnit:       {"unit", "đơn vị"},
	model.FieldUnitPrice:  {"unit price", "unitprice", "giá đơn vị"},
	model.FieldPIC:        {"p.i.c", "pic", "phụ trách"},
	model.FieldNote:       {"note", "ghi chú"},
}
