package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ClubStock/internal/model"
	"ClubStock/internal/normalize"
	"ClubStock/internal/repo"
)

// DefaultUnit подставляется, когда единица измерения не указана.
const DefaultUnit = "cái"

// LedgerService — журнал выдачи: операции, которым нужны обе коллекции
// (журнал и инвентарь) одновременно.
type LedgerService struct {
	inv      repo.InventoryRepository
	borrowed repo.BorrowedRepository
	logger   *zap.SugaredLogger
}

// NewLedgerService создаёт сервис журнала выдачи.
func NewLedgerService(inv repo.InventoryRepository, borrowed repo.BorrowedRepository, logger *zap.SugaredLogger) *LedgerService {
	return &LedgerService{inv: inv, borrowed: borrowed, logger: logger}
}

// BorrowRequest — параметры выдачи. Quantity принимает сырое значение
// формы: неразборчивое количество заменяется единицей.
type BorrowRequest struct {
	InventoryID string
	Item        string
	Type        string
	Quantity    any
	Unit        string
	BorrowedBy  string
	Note        string
}

// List возвращает записи журнала, при непустом status — только с этим
// статусом.
func (s *LedgerService) List(ctx context.Context, status string) ([]model.BorrowedItem, error) {
	return s.borrowed.List(ctx, status)
}

// Borrow создаёт запись о выдаче со статусом borrowed.
//
// currentQty исходного предмета здесь намеренно не уменьшается: так
// ведёт себя существующий процесс клуба, списание при выдаче остаётся
// за вызывающей стороной. Возврат, напротив, возвращает количество
// на склад явно.
func (s *LedgerService) Borrow(ctx context.Context, req BorrowRequest) (*model.BorrowedItem, error) {
	qty, ok := normalize.Number(req.Quantity)
	if !ok || qty <= 0 {
		qty = 1
	}
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	b := model.BorrowedItem{
		InventoryID: req.InventoryID,
		Item:        req.Item,
		Type:        req.Type,
		Unit:        unit,
		Quantity:    qty,
		BorrowedBy:  req.BorrowedBy,
		Status:      model.StatusBorrowed,
		BorrowedAt:  time.Now().UTC(),
		Note:        req.Note,
	}
	created, err := s.borrowed.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("ledger: borrow: %w", err)
	}
	return created, nil
}

// Return закрывает запись о выдаче: удаляет её из журнала и возвращает
// количество на currentQty исходного предмета. Если предмет уже не
// существует, кредит количества отбрасывается с записью в лог — запись
// журнала всё равно удалена, операция считается успешной.
func (s *LedgerService) Return(ctx context.Context, borrowedID, inventoryID string, quantity float64) error {
	if err := s.borrowed.Delete(ctx, borrowedID); err != nil {
		return fmt.Errorf("ledger: return %s: %w", borrowedID, err)
	}

	items, err := s.inv.List(ctx, false)
	if err != nil {
		return fmt.Errorf("ledger: return %s: reading inventory: %w", borrowedID, err)
	}
	for _, item := range items {
		if item.ID != inventoryID {
			continue
		}
		err := s.inv.Update(ctx, item.ID, map[string]any{
			model.FieldCurrentQty: item.CurrentQty + quantity,
		})
		if err != nil {
			return fmt.Errorf("ledger: return %s: crediting quantity: %w", borrowedID, err)
		}
		return nil
	}

	s.logger.Warnw("return: inventory item missing, quantity credit dropped",
		"inventory_id", inventoryID,
		"quantity", quantity,
	)
	return nil
}

// WriteOff удаляет запись журнала без возврата количества —
// явное списание, в отличие от Return.
func (s *LedgerService) WriteOff(ctx context.Context, borrowedID string) error {
	if err := s.borrowed.Delete(ctx, borrowedID); err != nil {
		return fmt.Errorf("ledger: write off %s: %w", borrowedID, err)
	}
	return nil
}
