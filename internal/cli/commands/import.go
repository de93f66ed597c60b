package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"ClubStock/internal/cli/api"
	"ClubStock/internal/config"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Полная замена инвентаря содержимым JSON-файла строк таблицы"
}
func (importCmd) Usage() string { return "import <rows.json>" }

// importReport повторяет форму ответа сервера.
type importReport struct {
	Imported      int    `json:"imported"`
	Skipped       int    `json:"skipped"`
	DeleteBatches int    `json:"delete_batches"`
	InsertBatches int    `json:"insert_batches"`
	Error         string `json:"error,omitempty"`
}

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("rows file must be a JSON array of cell rows: %w", err)
	}

	fmt.Fprintf(Out, "→ Импорт %d строк (полная замена)...\n", len(rows))
	resp, body, err := api.PostJSON(cfg.ServerURL+"/api/inventory/import", map[string]any{"rows": rows})
	if err != nil {
		return err
	}

	var report importReport
	if err := json.Unmarshal(body, &report); err != nil {
		return fmt.Errorf("unexpected server response: %s", body)
	}

	if resp.StatusCode != http.StatusOK {
		// частичный отчёт важен: по нему видно, какие батчи успели записаться
		fmt.Fprintf(Out, "× Импорт прерван: %s\n", report.Error)
		fmt.Fprintf(Out, "  батчей удаления: %d, батчей вставки: %d, записано: %d\n",
			report.DeleteBatches, report.InsertBatches, report.Imported)
		return fmt.Errorf("import failed")
	}

	fmt.Fprintf(Out, "✓ Импортировано: %d, пропущено: %d\n", report.Imported, report.Skipped)
	return nil
}

func init() { RegisterCmd(importCmd{}) }
