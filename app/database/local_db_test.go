package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/shopspring/decimal"
)

func openTestDB(t *testing.T) *database.LocalDB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "panaderia.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	db := openTestDB(t)

	snap := store.Snapshot{
		Products: []models.Product{
			{ID: "p1", Name: "Pan blanco", Stock: 7, MinStock: 2, Unit: "unidades", SalePrice: decimal.NewFromInt(500)},
		},
		Ingredients: []models.Ingredient{
			{ID: "i1", Name: "Harina", Unit: models.UnitKg, Stock: 12.5, MinStock: 5, UnitPrice: decimal.NewFromInt(2)},
		},
		Recipes: []models.Recipe{
			{ProductID: "p1", Items: []models.RecipeItem{{IngredientID: "i1", Quantity: 4}}},
		},
		Sales: []models.Sale{
			{ID: "s1", Date: "2026-08-31", ProductID: "p1", Quantity: 3,
				UnitPrice: decimal.NewFromInt(500), UnitCost: decimal.NewFromInt(8),
				Profit: decimal.NewFromInt(1476)},
		},
		Orders: []models.Order{
			{ID: "o1", Customer: "Ana", Date: "2026-08-31", Status: models.OrderStatusPending, ProductID: "p1", Quantity: 2},
		},
	}
	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Products) != 1 || loaded.Products[0].Stock != 7 {
		t.Errorf("products = %+v", loaded.Products)
	}
	if !loaded.Products[0].SalePrice.Equal(decimal.NewFromInt(500)) {
		t.Errorf("sale price = %s, want 500", loaded.Products[0].SalePrice)
	}
	if len(loaded.Ingredients) != 1 || loaded.Ingredients[0].Stock != 12.5 {
		t.Errorf("ingredients = %+v", loaded.Ingredients)
	}
	if len(loaded.Recipes) != 1 || loaded.Recipes[0].Items[0].Quantity != 4 {
		t.Errorf("recipes = %+v", loaded.Recipes)
	}
	if len(loaded.Sales) != 1 || !loaded.Sales[0].Profit.Equal(decimal.NewFromInt(1476)) {
		t.Errorf("sales = %+v", loaded.Sales)
	}
	if len(loaded.Orders) != 1 || loaded.Orders[0].Status != models.OrderStatusPending {
		t.Errorf("orders = %+v", loaded.Orders)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	db := openTestDB(t)

	first := store.SeedSnapshot()
	if err := db.SaveSnapshot(first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second := store.Snapshot{
		Products: []models.Product{
			{ID: "only", Name: "Solo", Stock: 1, MinStock: 1, Unit: "unidades", SalePrice: decimal.NewFromInt(100)},
		},
	}
	if err := db.SaveSnapshot(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Products) != 1 || loaded.Products[0].ID != "only" {
		t.Errorf("products = %+v, want the second write only", loaded.Products)
	}
}

func TestLoadSnapshotMissingReturnsSeed(t *testing.T) {
	db := openTestDB(t)

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	seed := store.SeedSnapshot()
	if len(loaded.Products) != len(seed.Products) {
		t.Errorf("products = %d, want the %d seeded defaults", len(loaded.Products), len(seed.Products))
	}
}

func TestLoadSnapshotMalformedCollectionFallsBackPerCollection(t *testing.T) {
	db := openTestDB(t)

	// Products are garbage, orders are intact. The orders must survive while
	// products fall back to the seed.
	payload := `{"productos": "not-an-array", "pedidos": [{"id": "o1", "cliente": "Ana", "fecha": "2026-08-31", "estado": "pendiente", "productoId": "p1", "cantidad": 2}]}`
	row := database.StateSnapshot{Key: database.SnapshotKey, Data: payload, UpdatedAt: time.Now().UTC()}
	if err := db.GetDB().Create(&row).Error; err != nil {
		t.Fatalf("failed to plant the malformed row: %v", err)
	}

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	seed := store.SeedSnapshot()
	if len(loaded.Products) != len(seed.Products) {
		t.Errorf("products = %d, want seed fallback of %d", len(loaded.Products), len(seed.Products))
	}
	if len(loaded.Orders) != 1 || loaded.Orders[0].Customer != "Ana" {
		t.Errorf("orders = %+v, want the stored order kept", loaded.Orders)
	}
}

func TestLoadSnapshotGarbagePayloadReturnsSeed(t *testing.T) {
	db := openTestDB(t)

	row := database.StateSnapshot{Key: database.SnapshotKey, Data: "{{{", UpdatedAt: time.Now().UTC()}
	if err := db.GetDB().Create(&row).Error; err != nil {
		t.Fatalf("failed to plant the garbage row: %v", err)
	}

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	seed := store.SeedSnapshot()
	if len(loaded.Products) != len(seed.Products) {
		t.Errorf("products = %d, want full seed fallback of %d", len(loaded.Products), len(seed.Products))
	}
}
