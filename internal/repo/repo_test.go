package repo

import (
	"fmt"
	"strings"
	"testing"

	"ClubStock/internal/docstore"
)

// newTestStore инициализирует изолированную in-memory SQLite
// (modernc.org/sqlite) для тестов репозиториев.
func newTestStore(t *testing.T) docstore.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := docstore.OpenGorm(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	return store
}
