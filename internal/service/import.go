package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ClubStock/internal/docstore"
	"ClubStock/internal/model"
	"ClubStock/internal/normalize"
	"ClubStock/internal/repo"
	"ClubStock/internal/sheet"
)

// ImportResult — отчёт о пакетном импорте: сколько строк записано,
// сколько отброшено и сколько батчей каждой фазы успело закоммититься.
// Последовательность батчей не атомарна, поэтому при ошибке по счётчикам
// видно, в каком состоянии осталась коллекция.
type ImportResult struct {
	Imported      int `json:"imported"`
	Skipped       int `json:"skipped"`
	DeleteBatches int `json:"delete_batches"`
	InsertBatches int `json:"insert_batches"`
}

// ImportService — движок пакетного импорта инвентаря.
type ImportService struct {
	store  docstore.Store
	inv    repo.InventoryRepository
	logger *zap.SugaredLogger
}

// NewImportService создаёт сервис импорта.
func NewImportService(store docstore.Store, inv repo.InventoryRepository, logger *zap.SugaredLogger) *ImportService {
	return &ImportService{store: store, inv: inv, logger: logger}
}

// ImportSheet — конвейер для уже распарсенной таблицы: поиск заголовка,
// проекция строк и пакетный импорт.
func (s *ImportService) ImportSheet(ctx context.Context, cells [][]any) (ImportResult, error) {
	return s.BulkImport(ctx, sheet.Records(cells))
}

// BulkImport выполняет деструктивную полную замену коллекции инвентаря:
// существующие документы удаляются батчами не больше docstore.MaxBatchOps,
// затем входные строки нормализуются и записываются такими же батчами.
// Строки без имени предмета отбрасываются и считаются в Skipped.
//
// Ошибка удаления трактуется как «нечего удалять»; ошибка коммита
// вставки прерывает импорт и возвращается вместе с уже накопленным
// отчётом — тихо «удавшийся наполовину» импорт хуже явной ошибки.
func (s *ImportService) BulkImport(ctx context.Context, rows []map[string]any) (ImportResult, error) {
	var res ImportResult

	existing, err := s.inv.List(ctx, false)
	if err != nil {
		// Коллекции может ещё не быть — удалять в таком случае нечего.
		s.logger.Warnw("bulk import: reading existing inventory failed, assuming empty",
			"error", err)
		existing = nil
	}

	col := s.store.Collection(repo.CollectionInventory)

	for start := 0; start < len(existing); start += docstore.MaxBatchOps {
		end := start + docstore.MaxBatchOps
		if end > len(existing) {
			end = len(existing)
		}
		batch := col.NewBatch()
		for _, item := range existing[start:end] {
			batch.Delete(item.ID)
		}
		if err := batch.Commit(ctx); err != nil {
			s.logger.Warnw("bulk import: delete batch failed, proceeding with import",
				"batch", res.DeleteBatches+1, "error", err)
			break
		}
		res.DeleteBatches++
	}

	now := time.Now().UTC().Format(model.TimeLayout)
	payloads := make([]map[string]any, 0, len(rows))
	for _, raw := range rows {
		fields := normalize.Normalize(raw, false)

		name, _ := fields[model.FieldItem].(string)
		if strings.TrimSpace(name) == "" {
			res.Skipped++
			continue
		}

		// Вторая страховка: количества обязаны быть числами даже если
		// нормализатор вернул запись без них.
		for _, f := range []string{model.FieldCurrentQty, model.FieldTotalQty} {
			if _, ok := fields[f]; !ok {
				fields[f] = float64(0)
			}
		}
		fields[model.FieldUpdatedAt] = now
		payloads = append(payloads, fields)
	}

	for start := 0; start < len(payloads); start += docstore.MaxBatchOps {
		end := start + docstore.MaxBatchOps
		if end > len(payloads) {
			end = len(payloads)
		}
		batch := col.NewBatch()
		for _, fields := range payloads[start:end] {
			batch.Set(col.NewID(), fields)
		}
		if err := batch.Commit(ctx); err != nil {
			return res, fmt.Errorf("bulk import: insert batch %d failed: %w", res.InsertBatches+1, err)
		}
		res.InsertBatches++
		res.Imported += end - start
	}

	s.logger.Infow("bulk import finished",
		"imported", res.Imported,
		"skipped", res.Skipped,
		"delete_batches", res.DeleteBatches,
		"insert_batches", res.InsertBatches,
	)
	return res, nil
}
