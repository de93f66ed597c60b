package repo

import (
	"context"
	"fmt"

	"ClubStock/internal/docstore"
	"ClubStock/internal/model"
)

// CollectionBorrowed — имя коллекции журнала выдачи.
const CollectionBorrowed = "borrowed_items"

// BorrowedRepository — доступ к записям журнала выдачи.
type BorrowedRepository interface {
	// List возвращает записи от новых к старым; непустой status —
	// фильтр по равенству (в памяти).
	List(ctx context.Context, status string) ([]model.BorrowedItem, error)

	Create(ctx context.Context, b model.BorrowedItem) (*model.BorrowedItem, error)

	Delete(ctx context.Context, id string) error
}

type borrowedRepo struct {
	col docstore.Collection
}

// NewBorrowedRepository создаёт репозиторий журнала выдачи.
func NewBorrowedRepository(store docstore.Store) BorrowedRepository {
	return &borrowedRepo{col: store.Collection(CollectionBorrowed)}
}

func (r *borrowedRepo) List(ctx context.Context, status string) ([]model.BorrowedItem, error) {
	docs, err := r.col.Query(ctx, model.FieldBorrowedAt, true)
	if err != nil {
		return nil, fmt.Errorf("borrowed: list: %w", err)
	}

	items := make([]model.BorrowedItem, 0, len(docs))
	for _, doc := range docs {
		b := model.BorrowedFromDoc(doc.ID, doc.Fields)
		if status != "" && b.Status != status {
			continue
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *borrowedRepo) Create(ctx context.Context, b model.BorrowedItem) (*model.BorrowedItem, error) {
	id, err := r.col.Insert(ctx, b.Fields())
	if err != nil {
		return nil, fmt.Errorf("borrowed: create: %w", err)
	}
	b.ID = id
	return &b, nil
}

func (r *borrowedRepo) Delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		return fmt.Errorf("borrowed: delete %s: %w", id, err)
	}
	return nil
}
