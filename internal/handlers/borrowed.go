package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ClubStock/internal/service"
)

// BorrowedHandler обслуживает журнал выдачи.
type BorrowedHandler struct {
	Ledger *service.LedgerService
	Logger *zap.SugaredLogger
}

// NewBorrowedHandler создаёт хендлер журнала выдачи.
func NewBorrowedHandler(ledger *service.LedgerService, logger *zap.SugaredLogger) *BorrowedHandler {
	return &BorrowedHandler{Ledger: ledger, Logger: logger}
}

// List отдаёт записи журнала; ?status=borrowed — фильтр по статусу.
func (h *BorrowedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Ledger.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.Logger.Errorw("List: ledger error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusOK, items)
}

// BorrowRequestDTO — тело запроса выдачи. Quantity принимается как есть:
// число или строка из формы, неразборчивое значение станет единицей.
type BorrowRequestDTO struct {
	InventoryID string `json:"inventory_id"`
	Item        string `json:"item"`
	Type        string `json:"type,omitempty"`
	Quantity    any    `json:"quantity,omitempty"`
	Unit        string `json:"unit,omitempty"`
	BorrowedBy  string `json:"borrowed_by,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Borrow создаёт запись о выдаче.
func (h *BorrowedHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Borrow: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.InventoryID == "" || req.Item == "" {
		http.Error(w, "inventory_id and item are required", http.StatusBadRequest)
		return
	}

	item, err := h.Ledger.Borrow(r.Context(), service.BorrowRequest{
		InventoryID: req.InventoryID,
		Item:        req.Item,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		BorrowedBy:  req.BorrowedBy,
		Note:        req.Note,
	})
	if err != nil {
		h.Logger.Errorw("Borrow: ledger error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.Logger, http.StatusCreated, item)
}

// ReturnRequestDTO — тело запроса возврата.
type ReturnRequestDTO struct {
	InventoryID string  `json:"inventory_id"`
	Quantity    float64 `json:"quantity"`
}

// Return закрывает выдачу и возвращает количество на склад.
func (h *BorrowedHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Return: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Ledger.Return(r.Context(), id, req.InventoryID, req.Quantity); err != nil {
		h.Logger.Errorw("Return: ledger error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WriteOff удаляет запись журнала без возврата количества.
func (h *BorrowedHandler) WriteOff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Ledger.WriteOff(r.Context(), id); err != nil {
		h.Logger.Errorw("WriteOff: ledger error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
