package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PanaderiaApp/app/config"
	"PanaderiaApp/app/database"
	"PanaderiaApp/app/services"
	"PanaderiaApp/app/store"
)

// App is the composition root: it owns the store and wires every service to
// it. The presentation layer calls the services and re-reads the collections
// after each mutation; nothing here pushes events.
type App struct {
	Config            *config.AppConfig
	LoggerService     *services.LoggerService
	AuthService       *services.AuthService
	ProductService    *services.ProductService
	IngredientService *services.IngredientService
	RecipeService     *services.RecipeService
	SalesService      *services.SalesService
	ReportService     *services.ReportService

	store     *store.Store
	localDB   *database.LocalDB
	persister *database.Persister
}

// NewApp loads configuration, restores the last persisted state (or the
// seeded default) and builds the service graph.
func NewApp() (*App, error) {
	cfg := config.Load()
	logger := services.NewLoggerService(cfg.LogDir)

	localDB, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	snap, err := localDB.LoadSnapshot()
	if err != nil {
		// Load already fell back to the seeded default; the session keeps
		// going on the in-memory state.
		logger.LogError("Snapshot load failed, starting from defaults", err)
	}
	st := store.FromSnapshot(snap)
	persister := database.NewPersister(localDB)

	app := &App{
		Config:            cfg,
		LoggerService:     logger,
		AuthService:       services.NewAuthService(),
		ProductService:    services.NewProductService(st, persister),
		IngredientService: services.NewIngredientService(st, persister),
		RecipeService:     services.NewRecipeService(st, persister),
		SalesService:      services.NewSalesService(st, persister),
		ReportService:     services.NewReportService(st),
		store:             st,
		localDB:           localDB,
		persister:         persister,
	}

	logger.LogInfo("Application ready", fmt.Sprintf(
		"products=%d ingredients=%d sales=%d orders=%d db=%s",
		len(st.Products()), len(st.Ingredients()), len(st.Sales()), len(st.Orders()), cfg.DBPath))
	for _, p := range app.ReportService.LowStockProducts() {
		logger.LogWarning("Low product stock", fmt.Sprintf("%s: %g (minimum %g)", p.Name, p.Stock, p.MinStock))
	}
	for _, i := range app.ReportService.LowStockIngredients() {
		logger.LogWarning("Low ingredient stock", fmt.Sprintf("%s: %g %s (minimum %g)", i.Name, i.Stock, i.Unit.Label(), i.MinStock))
	}

	return app, nil
}

// Shutdown flushes pending snapshot writes and closes resources.
func (a *App) Shutdown() {
	a.persister.Enqueue(a.store.Snapshot())
	a.persister.Close()
	if err := a.localDB.Close(); err != nil {
		a.LoggerService.LogError("Failed to close local database", err)
	}
	a.LoggerService.LogInfo("Shutdown complete")
	a.LoggerService.Close()
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Shutdown()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	app.LoggerService.LogInfo("Shutting down")
}
