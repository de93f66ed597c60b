package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ClubStock/internal/repo"
	"ClubStock/internal/service"
)

// InventoryHandler обслуживает CRUD инвентаря и пакетный импорт.
type InventoryHandler struct {
	Inv      repo.InventoryRepository
	Importer *service.ImportService
	Logger   *zap.SugaredLogger
}

// NewInventoryHandler создаёт хендлер инвентаря.
func NewInventoryHandler(inv repo.InventoryRepository, importer *service.ImportService, logger *zap.SugaredLogger) *InventoryHandler {
	return &InventoryHandler{Inv: inv, Importer: importer, Logger: logger}
}

// List отдаёт инвентарь; ?only_remaining=1 — только позиции в наличии.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyRemaining := false
	switch r.URL.Query().Get("only_remaining") {
	case "1", "true":
		onlyRemaining = true
	}

	items, err := h.Inv.List(r.Context(), onlyRemaining)
	if err != nil {
		h.Logger.Errorw("List: repository error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, items)
}

// Add принимает сырую запись формы — нормализация на стороне репозитория.
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.Logger.Warnw("Add: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.Inv.Add(r.Context(), raw)
	if err != nil {
		h.Logger.Errorw("Add: repository error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusCreated, item)
}

// Update патчит только присланные поля.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Inv.Update(r.Context(), id, raw); err != nil {
		h.Logger.Errorw("Update: repository error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Inv.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: repository error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportRequest — тело запроса импорта: уже распарсенные ячейки
// таблицы (строки × колонки). Декодирование файла делает UI.
type ImportRequest struct {
	Rows [][]any `json:"rows"`
}

// ImportResponse — отчёт импорта; при ошибке счётчики показывают,
// сколько батчей успело закоммититься.
type ImportResponse struct {
	service.ImportResult
	Error string `json:"error,omitempty"`
}

// Import выполняет полную замену инвентаря содержимым таблицы.
func (h *InventoryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Import: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if len(req.Rows) == 0 {
		http.Error(w, "no rows to import", http.StatusBadRequest)
		return
	}

	res, err := h.Importer.ImportSheet(r.Context(), req.Rows)
	if err != nil {
		h.Logger.Errorw("Import: bulk import failed", "error", err, "result", res)
		writeJSON(w, h.Logger, http.StatusInternalServerError, ImportResponse{ImportResult: res, Error: err.Error()})
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, ImportResponse{ImportResult: res})
}
