package main

import (
	"context"
	"net/http"

	"StockYard/internal/config"
	"StockYard/internal/handlers"
	"StockYard/internal/middleware"
	"StockYard/internal/model"
	"StockYard/internal/repo"
	"StockYard/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	disciplineRepo := repo.NewDisciplineRepository(gormDB)
	materialRepo := repo.NewMaterialRepository(gormDB)
	transactionRepo := repo.NewTransactionRepository(gormDB)

	authService := service.NewAuthService(userRepo, cfg.AuthSecret)
	catalogService := service.NewCatalogService(disciplineRepo, materialRepo, transactionRepo)

	if cfg.SeedDemo {
		if err := seed(ctx, authService, catalogService, disciplineRepo); err != nil {
			sugar.Fatalw("failed to seed demo data", "error", err)
		}
		sugar.Infow("Demo data seeded", "user", "demo")
	}

	h := handlers.NewHandler(authService, catalogService, sugar)

	addr := cfg.BaseURL
	sugar.Infow(
		"Starting server",
		"addr", addr,
	)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

// seed loads a small demo inventory and a demo/demo1234 account. Inserts are
// name-keyed and skipped when present, so re-running with -seed is safe.
func seed(
	ctx context.Context,
	auth *service.AuthService,
	catalog *service.CatalogService,
	disciplines repo.DisciplineRepository,
) error {
	if err := auth.EnsureUser(ctx, "demo", "demo1234"); err != nil {
		return err
	}

	existing, err := disciplines.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	byName := map[string]int64{}
	for _, d := range []model.Discipline{
		{Name: "Electrical", Description: "Wiring, panels and fixtures"},
		{Name: "Plumbing", Description: "Pipes, fittings and valves"},
		{Name: "HVAC", Description: "Heating, ventilation and air conditioning"},
		{Name: "Carpentry", Description: "Lumber, sheet goods and fasteners"},
	} {
		d := d
		if err := disciplines.Create(ctx, &d); err != nil {
			return err
		}
		byName[d.Name] = d.ID
	}

	type demoMaterial struct {
		input service.MaterialInput
		stock string
	}
	str := func(s string) *string { return &s }
	disc := func(name string) *int64 { id := byName[name]; return &id }

	for _, dm := range []demoMaterial{
		{service.MaterialInput{Name: "Wire Spool 12AWG", Type: str("Consumable"), Unit: "feet", Brand: str("Southwire"), Discipline: disc("Electrical")}, "500.00"},
		{service.MaterialInput{Name: "Breaker Panel 200A", Type: str("Equipment"), Unit: "each", Brand: str("Square D"), Discipline: disc("Electrical")}, "4.00"},
		{service.MaterialInput{Name: "Copper Pipe 3/4in", Type: str("Consumable"), Unit: "feet", Discipline: disc("Plumbing")}, "120.00"},
		{service.MaterialInput{Name: "Ball Valve 1/2in", Type: str("Fitting"), Unit: "pieces", Discipline: disc("Plumbing")}, "8.00"},
		{service.MaterialInput{Name: "Duct Tape Roll", Type: str("Consumable"), Unit: "rolls", Discipline: disc("HVAC")}, "0.00"},
		{service.MaterialInput{Name: "Plywood Sheet 4x8", Type: str("Sheet Good"), Unit: "sheets", Size: str("4x8 ft"), Discipline: disc("Carpentry")}, "36.00"},
	} {
		created, err := catalog.CreateMaterial(ctx, dm.input)
		if err != nil {
			return err
		}
		qty := decimal.RequireFromString(dm.stock)
		if qty.IsZero() {
			continue
		}
		if err := catalog.RecordTransaction(ctx, &model.InventoryTransaction{
			MaterialID:      created.ID,
			QuantityChange:  qty,
			TransactionType: "Initial Stock",
		}); err != nil {
			return err
		}
	}
	return nil
}
