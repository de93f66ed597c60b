package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ClubStock/internal/model"
)

func TestInventoryRepository_AddAndList(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	item, err := r.Add(ctx, map[string]any{"Item": "Banner", "Qty": "5", "Total": "8"})
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Banner", item.Item)
	assert.Equal(t, float64(5), item.CurrentQty)
	assert.Equal(t, float64(8), item.TotalQty)
	assert.False(t, item.UpdatedAt.IsZero())

	items, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestInventoryRepository_ListOrderedByName(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	for _, name := range []string{"Chair", "Aloe", "Banner"} {
		_, err := r.Add(ctx, map[string]any{"Item": name})
		assert.NoError(t, err)
	}

	items, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Aloe", items[0].Item)
	assert.Equal(t, "Banner", items[1].Item)
	assert.Equal(t, "Chair", items[2].Item)
}

func TestInventoryRepository_OnlyRemainingFilter(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	_, err := r.Add(ctx, map[string]any{"Item": "Empty", "Qty": "0"})
	assert.NoError(t, err)
	_, err = r.Add(ctx, map[string]any{"Item": "Stocked", "Qty": "3"})
	assert.NoError(t, err)

	all, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	remaining, err := r.List(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "Stocked", remaining[0].Item)
}

func TestInventoryRepository_ListEmptyCollection(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))

	// коллекции ещё нет — пустой список, не ошибка
	items, err := r.List(context.Background(), false)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryRepository_UpdatePartial(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	price := "15000"
	item, err := r.Add(ctx, map[string]any{"Item": "Banner", "Qty": "5", "Unit Price": price})
	assert.NoError(t, err)

	// частичное обновление количества не трогает имя и цену
	assert.NoError(t, r.Update(ctx, item.ID, map[string]any{"Qty": "2"}))

	items, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Banner", items[0].Item)
	assert.Equal(t, float64(2), items[0].CurrentQty)
	assert.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, float64(15000), *items[0].UnitPrice)
}

func TestInventoryRepository_UpdateBlankPriceKeepsStored(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	item, err := r.Add(ctx, map[string]any{"Item": "Banner", "Unit Price": "15000"})
	assert.NoError(t, err)

	// пустая цена в форме не должна обнулить сохранённую
	assert.NoError(t, r.Update(ctx, item.ID, map[string]any{"Unit Price": ""}))

	items, _ := r.List(ctx, false)
	assert.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, float64(15000), *items[0].UnitPrice)
}

func TestInventoryRepository_Delete(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	item, err := r.Add(ctx, map[string]any{"Item": "Banner"})
	assert.NoError(t, err)
	assert.NoError(t, r.Delete(ctx, item.ID))

	items, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryRepository_DuplicateNamesAllowed(t *testing.T) {
	r := NewInventoryRepository(newTestStore(t))
	ctx := context.Background()

	// одинаковые имена — две независимые записи
	_, err := r.Add(ctx, map[string]any{model.FieldItem: "Banner"})
	assert.NoError(t, err)
	_, err = r.Add(ctx, map[string]any{model.FieldItem: "Banner"})
	assert.NoError(t, err)

	items, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
