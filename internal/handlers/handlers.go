package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"ClubStock/internal/config"
	"ClubStock/internal/middleware"
	"ClubStock/internal/repo"
	"ClubStock/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	inv repo.InventoryRepository,
	importer *service.ImportService,
	ledger *service.LedgerService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	// UI — браузерная SPA, живёт на другом origin
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	// Handlers
	invHandler := NewInventoryHandler(inv, importer, logger)
	borrowedHandler := NewBorrowedHandler(ledger, logger)

	// Inventory routes
	r.Get("/api/inventory", invHandler.List)
	r.Post("/api/inventory", invHandler.Add)
	r.Patch("/api/inventory/{id}", invHandler.Update)
	r.Delete("/api/inventory/{id}", invHandler.Delete)
	r.Post("/api/inventory/import", invHandler.Import)

	// Borrow ledger routes
	r.Get("/api/borrowed", borrowedHandler.List)
	r.Post("/api/borrowed", borrowedHandler.Borrow)
	r.Post("/api/borrowed/{id}/return", borrowedHandler.Return)
	r.Delete("/api/borrowed/{id}", borrowedHandler.WriteOff)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ; ошибка кодирования здесь уже не
// исправима, только лог.
func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("failed to encode response", "error", err)
	}
}
