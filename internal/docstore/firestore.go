package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore — продакшен-реализация хранилища поверх Firestore.
// Лимит в MaxBatchOps операций на батч — ограничение самого Firestore,
// здесь он проверяется до отправки.
type FirestoreStore struct {
	client *firestore.Client
}

// OpenFirestore подключается к Firestore указанного проекта.
func OpenFirestore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("docstore: firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

// Close закрывает соединение с Firestore.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) Collection(name string) Collection {
	return &fsCollection{client: s.client, ref: s.client.Collection(name)}
}

type fsCollection struct {
	client *firestore.Client
	ref    *firestore.CollectionRef
}

func (c *fsCollection) Query(ctx context.Context, orderBy string, desc bool) ([]Doc, error) {
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}

	iter := c.ref.OrderBy(orderBy, dir).Documents(ctx)
	defer iter.Stop()

	var docs []Doc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// Несуществующая коллекция — пустой результат, не ошибка.
			if status.Code(err) == codes.NotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("docstore: query %s: %w", c.ref.ID, err)
		}
		docs = append(docs, Doc{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

func (c *fsCollection) Insert(ctx context.Context, fields map[string]any) (string, error) {
	ref, _, err := c.ref.Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("docstore: insert into %s: %w", c.ref.ID, err)
	}
	return ref.ID, nil
}

func (c *fsCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.ref.Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("docstore: update %s/%s: %w", c.ref.ID, id, err)
	}
	return nil
}

func (c *fsCollection) Delete(ctx context.Context, id string) error {
	if _, err := c.ref.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("docstore: delete %s/%s: %w", c.ref.ID, id, err)
	}
	return nil
}

func (c *fsCollection) NewID() string {
	return c.ref.NewDoc().ID
}

func (c *fsCollection) NewBatch() Batch {
	return &fsBatch{col: c, wb: c.client.Batch()}
}

type fsBatch struct {
	col *fsCollection
	wb  *firestore.WriteBatch
	n   int
}

func (b *fsBatch) Set(id string, fields map[string]any) {
	b.wb.Set(b.col.ref.Doc(id), fields)
	b.n++
}

func (b *fsBatch) Delete(id string) {
	b.wb.Delete(b.col.ref.Doc(id))
	b.n++
}

func (b *fsBatch) Len() int { return b.n }

func (b *fsBatch) Commit(ctx context.Context) error {
	if b.n > MaxBatchOps {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, b.n, MaxBatchOps)
	}
	if _, err := b.wb.Commit(ctx); err != nil {
		return fmt.Errorf("docstore: batch commit %s: %w", b.col.ref.ID, err)
	}
	return nil
}
