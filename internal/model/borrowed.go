package model

import "time"

// Ключи полей документа выданного предмета.
const (
	FieldInventoryID = "inventoryId"
	FieldQuantity    = "quantity"
	FieldBorrowedBy  = "borrowedBy"
	FieldStatus      = "status"
	FieldBorrowedAt  = "borrowedAt"
	FieldReturnedAt  = "returnedAt"
)

// Статусы записи о выдаче.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
)

// BorrowedItem — запись журнала выдачи: предмет, взятый со склада.
// Item/Type/Unit — денормализованные копии полей исходного предмета
// на момент выдачи.
type BorrowedItem struct {
	ID          string     `json:"id"`
	InventoryID string     `json:"inventory_id"`
	Item        string     `json:"item"`
	Type        string     `json:"type,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Quantity    float64    `json:"quantity"`
	BorrowedBy  string     `json:"borrowed_by,omitempty"`
	Status      string     `json:"status"`
	BorrowedAt  time.Time  `json:"borrowed_at"`
	ReturnedAt  *time.Time `json:"returned_at,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// BorrowedFromDoc восстанавливает BorrowedItem из полей документа.
func BorrowedFromDoc(id string, fields map[string]any) BorrowedItem {
	b := BorrowedItem{
		ID:          id,
		InventoryID: asString(fields[FieldInventoryID]),
		Item:        asString(fields[FieldItem]),
		Type:        asString(fields[FieldType]),
		Unit:        asString(fields[FieldUnit]),
		Quantity:    asFloat(fields[FieldQuantity]),
		BorrowedBy:  asString(fields[FieldBorrowedBy]),
		Status:      asString(fields[FieldStatus]),
		BorrowedAt:  asTime(fields[FieldBorrowedAt]),
		Note:        asString(fields[FieldNote]),
	}
	if v, ok := fields[FieldReturnedAt]; ok && v != nil {
		t := asTime(v)
		if !t.IsZero() {
			b.ReturnedAt = &t
		}
	}
	return b
}

// Fields собирает поля документа для записи о выдаче.
// returnedAt хранится как nil до возврата.
func (b BorrowedItem) Fields() map[string]any {
	fields := map[string]any{
		FieldInventoryID: b.InventoryID,
		FieldItem:        b.Item,
		FieldType:        b.Type,
		FieldUnit:        b.Unit,
		FieldQuantity:    b.Quantity,
		FieldBorrowedBy:  b.BorrowedBy,
		FieldStatus:      b.Status,
		FieldBorrowedAt:  b.BorrowedAt.UTC().Format(TimeLayout),
		FieldNote:        b.Note,
	}
	if b.ReturnedAt != nil {
		fields[FieldReturnedAt] = b.ReturnedAt.UTC().Format(TimeLayout)
	} else {
		fields[FieldReturnedAt] = nil
	}
	return fields
}
