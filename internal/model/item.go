package model

import "time"

// Канонические ключи полей документа инвентаря — в таком виде записи
// лежат в хранилище документов.
const (
	FieldType       = "type"
	FieldItem       = "item"
	FieldCurrentQty = "currentQty"
	FieldTotalQty   = "totalQty"
	FieldUnit       = "unit"
	FieldUnitPrice  = "unitPrice"
	FieldPIC        = "pic"
	FieldNote       = "note"
	FieldUpdatedAt  = "updatedAt"
)

// InventoryItem — единица инвентаря клуба.
// UnitPrice — указатель: отсутствие цены и нулевая цена различаются.
type InventoryItem struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Item       string    `json:"item"`
	CurrentQty float64   `json:"current_qty"`
	TotalQty   float64   `json:"total_qty"`
	Unit       string    `json:"unit"`
	UnitPrice  *float64  `json:"unit_price,omitempty"`
	PIC        string    `json:"pic,omitempty"`
	Note       string    `json:"note,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemFromDoc восстанавливает InventoryItem из полей документа.
// Значения приходят из JSON или Firestore, поэтому числа и время
// приводятся толерантно к типу.
func ItemFromDoc(id string, fields map[string]any) InventoryItem {
	it := InventoryItem{
		ID:         id,
		Type:       asString(fields[FieldType]),
		Item:       asString(fields[FieldItem]),
		CurrentQty: asFloat(fields[FieldCurrentQty]),
		TotalQty:   asFloat(fields[FieldTotalQty]),
		Unit:       asString(fields[FieldUnit]),
		PIC:        asString(fields[FieldPIC]),
		Note:       asString(fields[FieldNote]),
		UpdatedAt:  asTime(fields[FieldUpdatedAt]),
	}
	if v, ok := fields[FieldUnitPrice]; ok && v != nil {
		price := asFloat(v)
		it.UnitPrice = &price
	}
	return it
}
