package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"ClubStock/internal/config"
	"ClubStock/internal/docstore"
	"ClubStock/internal/handlers"
	"ClubStock/internal/middleware"
	"ClubStock/internal/repo"
	"ClubStock/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище документов: Firestore при заданном проекте, иначе БД через gorm.
	var store docstore.Store
	if cfg.FirestoreProject != "" {
		fs, err := docstore.OpenFirestore(ctx, cfg.FirestoreProject)
		if err != nil {
			sugar.Fatalw("failed to connect to Firestore", "project", cfg.FirestoreProject, "error", err)
		}
		defer func() {
			if err := fs.Close(); err != nil {
				sugar.Errorw("Failed to close Firestore client", "error", err)
			}
		}()
		store = fs
	} else {
		gs, err := docstore.OpenGorm(cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("failed to initialize database", "error", err)
		}
		store = gs
	}

	invRepo := repo.NewInventoryRepository(store)
	borrowedRepo := repo.NewBorrowedRepository(store)
	importer := service.NewImportService(store, invRepo, sugar)
	ledger := service.NewLedgerService(invRepo, borrowedRepo, sugar)

	h := handlers.NewHandler(invRepo, importer, ledger, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"FirestoreProject", cfg.FirestoreProject,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
