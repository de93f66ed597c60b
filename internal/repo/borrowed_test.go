package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ClubStock/internal/model"
)

func mkBorrowed(inventoryID, item string, qty float64, at time.Time) model.BorrowedItem {
	return model.BorrowedItem{
		InventoryID: inventoryID,
		Item:        item,
		Unit:        "cái",
		Quantity:    qty,
		Status:      model.StatusBorrowed,
		BorrowedAt:  at,
	}
}

func TestBorrowedRepository_CreateAndList(t *testing.T) {
	r := NewBorrowedRepository(newTestStore(t))
	ctx := context.Background()

	created, err := r.Create(ctx, mkBorrowed("inv1", "Banner", 2, time.Now().UTC()))
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items, err := r.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Banner", items[0].Item)
	assert.Equal(t, float64(2), items[0].Quantity)
	assert.Equal(t, model.StatusBorrowed, items[0].Status)
	assert.Nil(t, items[0].ReturnedAt)
}

func TestBorrowedRepository_ListNewestFirst(t *testing.T) {
	r := NewBorrowedRepository(newTestStore(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	_, err := r.Create(ctx, mkBorrowed("inv1", "Old", 1, base))
	assert.NoError(t, err)
	_, err = r.Create(ctx, mkBorrowed("inv2", "New", 1, base.Add(30*time.Minute)))
	assert.NoError(t, err)

	items, err := r.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "New", items[0].Item)
	assert.Equal(t, "Old", items[1].Item)
}

func TestBorrowedRepository_StatusFilter(t *testing.T) {
	r := NewBorrowedRepository(newTestStore(t))
	ctx := context.Background()

	returned := mkBorrowed("inv1", "Done", 1, time.Now().UTC())
	returned.Status = model.StatusReturned
	_, err := r.Create(ctx, returned)
	assert.NoError(t, err)
	_, err = r.Create(ctx, mkBorrowed("inv2", "Out", 1, time.Now().UTC()))
	assert.NoError(t, err)

	borrowed, err := r.List(ctx, model.StatusBorrowed)
	assert.NoError(t, err)
	assert.Len(t, borrowed, 1)
	assert.Equal(t, "Out", borrowed[0].Item)
}

func TestBorrowedRepository_Delete(t *testing.T) {
	r := NewBorrowedRepository(newTestStore(t))
	ctx := context.Background()

	created, err := r.Create(ctx, mkBorrowed("inv1", "Banner", 1, time.Now().UTC()))
	assert.NoError(t, err)
	assert.NoError(t, r.Delete(ctx, created.ID))

	items, err := r.List(ctx, "")
	assert.NoError(t, err)
	assert.Empty(t, items)
}
