package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/arjunalabs/pos-backend/internal/fixtures"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/auth"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/modules/dashboard"
	"github.com/arjunalabs/pos-backend/internal/modules/invoice"
	"github.com/arjunalabs/pos-backend/internal/modules/reports"
	"github.com/arjunalabs/pos-backend/internal/modules/settings"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	dataDir := os.Getenv("POS_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := localstore.Open(dataDir)
	if err != nil {
		log.Fatal(err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewMemoryRepository(fixtures.Users())
	authService := auth.NewService(userRepo)
	auth.NewHandler(authService, store).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(fixtures.Items(), fixtures.Categories())
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Checkout & invoice ──────────────────────────────────
	checkoutService := checkout.NewService(store, catalogRepo)
	checkout.NewHandler(checkoutService, store).RegisterRoutes(router)

	settingsService := settings.NewService(store)
	settings.NewHandler(settingsService).RegisterRoutes(router)

	invoice.NewHandler(store, settingsService).RegisterRoutes(router)

	// ── Reporting ───────────────────────────────────────────
	reportsService := reports.NewService(fixtures.History(), store)
	reports.NewHandler(reportsService).RegisterRoutes(router)

	dashboardService := dashboard.NewService(fixtures.History(), fixtures.TopSellingItem)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Arjuna POS API starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
