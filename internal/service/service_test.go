package service

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"ClubStock/internal/docstore"
	"ClubStock/internal/repo"
)

// newTestStore инициализирует изолированную in-memory SQLite
// (modernc.org/sqlite) для тестов сервисов.
func newTestStore(t *testing.T) docstore.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := docstore.OpenGorm(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	return store
}

func newImportService(t *testing.T) (*ImportService, repo.InventoryRepository) {
	t.Helper()
	store := newTestStore(t)
	inv := repo.NewInventoryRepository(store)
	return NewImportService(store, inv, zap.NewNop().Sugar()), inv
}

func newLedgerService(t *testing.T) (*LedgerService, repo.InventoryRepository, repo.BorrowedRepository) {
	t.Helper()
	store := newTestStore(t)
	inv := repo.NewInventoryRepository(store)
	borrowed := repo.NewBorrowedRepository(store)
	return NewLedgerService(inv, borrowed, zap.NewNop().Sugar()), inv, borrowed
}
