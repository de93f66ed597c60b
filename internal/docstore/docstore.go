package docstore

import (
	"context"
	"errors"
)

// MaxBatchOps — жёсткий потолок хранилища на число операций в одном
// батч-коммите.
const MaxBatchOps = 500

// ErrBatchTooLarge возвращается Commit, если в батче больше MaxBatchOps операций.
var ErrBatchTooLarge = errors.New("docstore: batch exceeds max operations")

// ErrNotFound возвращается при обращении к несуществующему документу.
var ErrNotFound = errors.New("docstore: document not found")

// Doc — документ коллекции: идентификатор и свободные поля.
type Doc struct {
	ID     string
	Fields map[string]any
}

// Store — минимальный контракт документного хранилища.
// Реализации: Firestore (продакшен) и gorm/SQLite (локально и в тестах).
type Store interface {
	Collection(name string) Collection
}

// Collection — операции над именованной коллекцией документов.
// Query выполняет полное сканирование: фильтры уровня приложения
// применяются в памяти вызывающей стороной.
type Collection interface {
	// Query возвращает все документы, упорядоченные по полю orderBy.
	// Для несуществующей коллекции — пустой срез, не ошибка.
	Query(ctx context.Context, orderBy string, desc bool) ([]Doc, error)

	// Insert создаёт документ с назначенным хранилищем id.
	Insert(ctx context.Context, fields map[string]any) (string, error)

	// Update записывает только переданные поля, не трогая остальные.
	Update(ctx context.Context, id string, fields map[string]any) error

	Delete(ctx context.Context, id string) error

	// NewID выделяет идентификатор для будущего документа (для батч-вставок).
	NewID() string

	NewBatch() Batch
}

// Batch — атомарный пакет операций записи (целиком или никак).
// Атомарность действует в пределах одного Commit; последовательность
// нескольких батчей атомарной не является.
type Batch interface {
	Set(id string, fields map[string]any)
	Delete(id string)
	Len() int
	Commit(ctx context.Context) error
}
