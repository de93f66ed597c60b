package repo

import (
	"context"
	"fmt"
	"time"

	"ClubStock/internal/docstore"
	"ClubStock/internal/model"
	"ClubStock/internal/normalize"
)

// CollectionInventory — имя коллекции предметов инвентаря.
const CollectionInventory = "inventory"

// InventoryRepository — единственный писатель коллекции инвентаря.
// UI-слой не мутирует собственные копии: каждое изменение проходит
// через репозиторий, кэш обновляется из результата или повторного чтения.
type InventoryRepository interface {
	// List возвращает предметы, упорядоченные по имени. onlyRemaining
	// оставляет только позиции с currentQty > 0 (фильтр в памяти).
	// Несуществующая коллекция — пустой список, не ошибка.
	List(ctx context.Context, onlyRemaining bool) ([]model.InventoryItem, error)

	// Add нормализует запись в полном режиме и создаёт документ.
	Add(ctx context.Context, raw map[string]any) (*model.InventoryItem, error)

	// Update нормализует запись в частичном режиме и пишет только
	// разрешённые поля: незатронутые значения сохраняются.
	Update(ctx context.Context, id string, raw map[string]any) error

	Delete(ctx context.Context, id string) error
}

type inventoryRepo struct {
	col docstore.Collection
}

// NewInventoryRepository создаёт репозиторий инвентаря поверх хранилища.
func NewInventoryRepository(store docstore.Store) InventoryRepository {
	return &inventoryRepo{col: store.Collection(CollectionInventory)}
}

func (r *inventoryRepo) List(ctx context.Context, onlyRemaining bool) ([]model.InventoryItem, error) {
	docs, err := r.col.Query(ctx, model.FieldItem, false)
	if err != nil {
		return nil, fmt.Errorf("inventory: list: %w", err)
	}

	items := make([]model.InventoryItem, 0, len(docs))
	for _, doc := range docs {
		item := model.ItemFromDoc(doc.ID, doc.Fields)
		if onlyRemaining && item.CurrentQty <= 0 {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *inventoryRepo) Add(ctx context.Context, raw map[string]any) (*model.InventoryItem, error) {
	fields := normalize.Normalize(raw, false)
	fields[model.FieldUpdatedAt] = time.Now().UTC().Format(model.TimeLayout)

	id, err := r.col.Insert(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("inventory: add: %w", err)
	}
	item := model.ItemFromDoc(id, fields)
	return &item, nil
}

func (r *inventoryRepo) Update(ctx context.Context, id string, raw map[string]any) error {
	fields := normalize.Normalize(raw, true)
	fields[model.FieldUpdatedAt] = time.Now().UTC().Format(model.TimeLayout)

	if err := r.col.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("inventory: update %s: %w", id, err)
	}
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		return fmt.Errorf("inventory: delete %s: %w", id, err)
	}
	return nil
}
