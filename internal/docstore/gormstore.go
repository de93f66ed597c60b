package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"
)

// document — строка таблицы documents: один документ коллекции.
// Поля документа лежат JSON-блобом в Data.
type document struct {
	Collection string `gorm:"primaryKey;size:128"`
	ID         string `gorm:"primaryKey;size:128;column:id"`
	Data       []byte `gorm:"not null"`
	UpdatedAt  time.Time
}

// GormStore — документное хранилище поверх реляционной БД через gorm.
// Сортировка и фильтрация выполняются в памяти после полного скана
// коллекции — модель доступа та же, что у документного стора.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm открывает БД по DSN (postgres:// — PostgreSQL, иначе путь к
// файлу SQLite через modernc-драйвер, без cgo) и накатывает миграцию.
func OpenGorm(dsn string) (*GormStore, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("docstore: open database: %w", err)
	}
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("docstore: migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Collection возвращает хэндл коллекции. Коллекции не требуют создания:
// пустая коллекция — это просто отсутствие строк.
func (s *GormStore) Collection(name string) Collection {
	return &gormCollection{db: s.db, name: name}
}

type gormCollection struct {
	db   *gorm.DB
	name string
}

func (c *gormCollection) Query(ctx context.Context, orderBy string, desc bool) ([]Doc, error) {
	var rows []document
	err := c.db.WithContext(ctx).
		Where("collection = ?", c.name).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("docstore: query %s: %w", c.name, err)
	}

	docs := make([]Doc, 0, len(rows))
	for _, row := range rows {
		fields := map[string]any{}
		if err := json.Unmarshal(row.Data, &fields); err != nil {
			return nil, fmt.Errorf("docstore: decode document %s/%s: %w", c.name, row.ID, err)
		}
		docs = append(docs, Doc{ID: row.ID, Fields: fields})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		less := compareFieldValues(docs[i].Fields[orderBy], docs[j].Fields[orderBy]) < 0
		if desc {
			return !less
		}
		return less
	})
	return docs, nil
}

func (c *gormCollection) Insert(ctx context.Context, fields map[string]any) (string, error) {
	id := c.NewID()
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("docstore: encode document: %w", err)
	}
	row := document{Collection: c.name, ID: id, Data: data, UpdatedAt: time.Now().UTC()}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("docstore: insert into %s: %w", c.name, err)
	}
	return id, nil
}

// Update сливает переданные поля с уже сохранёнными: непереданные
// значения не затираются.
func (c *gormCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row document
		err := tx.Where("collection = ? AND id = ?", c.name, id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("docstore: load %s/%s: %w", c.name, id, err)
		}

		existing := map[string]any{}
		if err := json.Unmarshal(row.Data, &existing); err != nil {
			return fmt.Errorf("docstore: decode %s/%s: %w", c.name, id, err)
		}
		for k, v := range fields {
			existing[k] = v
		}
		data, err := json.Marshal(existing)
		if err != nil {
			return fmt.Errorf("docstore: encode %s/%s: %w", c.name, id, err)
		}

		row.Data = data
		row.UpdatedAt = time.Now().UTC()
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("docstore: update %s/%s: %w", c.name, id, err)
		}
		return nil
	})
}

func (c *gormCollection) Delete(ctx context.Context, id string) error {
	err := c.db.WithContext(ctx).
		Where("collection = ? AND id = ?", c.name, id).
		Delete(&document{}).Error
	if err != nil {
		return fmt.Errorf("docstore: delete %s/%s: %w", c.name, id, err)
	}
	return nil
}

func (c *gormCollection) NewID() string {
	return uuid.NewString()
}

func (c *gormCollection) NewBatch() Batch {
	return &gormBatch{col: c}
}

type batchOp struct {
	id     string
	fields map[string]any // nil — удаление
}

type gormBatch struct {
	col *gormCollection
	ops []batchOp
}

func (b *gormBatch) Set(id string, fields map[string]any) {
	b.ops = append(b.ops, batchOp{id: id, fields: fields})
}

func (b *gormBatch) Delete(id string) {
	b.ops = append(b.ops, batchOp{id: id})
}

func (b *gormBatch) Len() int { return len(b.ops) }

// Commit применяет пакет в одной транзакции: всё или ничего.
func (b *gormBatch) Commit(ctx context.Context) error {
	if len(b.ops) > MaxBatchOps {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(b.ops), MaxBatchOps)
	}
	return b.col.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, op := range b.ops {
			if op.fields == nil {
				err := tx.Where("collection = ? AND id = ?", b.col.name, op.id).
					Delete(&document{}).Error
				if err != nil {
					return fmt.Errorf("docstore: batch delete %s/%s: %w", b.col.name, op.id, err)
				}
				continue
			}
			data, err := json.Marshal(op.fields)
			if err != nil {
				return fmt.Errorf("docstore: encode %s/%s: %w", b.col.name, op.id, err)
			}
			row := document{Collection: b.col.name, ID: op.id, Data: data, UpdatedAt: now}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
				UpdateAll: true,
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("docstore: batch set %s/%s: %w", b.col.name, op.id, err)
			}
		}
		return nil
	})
}

// compareFieldValues сравнивает значения поля сортировки: числа по
// величине, остальное — как строки. Отсутствующее значение идёт первым.
func compareFieldValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	fa, aNum := a.(float64)
	fb, bNum := b.(float64)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
