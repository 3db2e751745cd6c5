package database_test

import (
	"testing"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/shopspring/decimal"
)

func TestPersisterFlushesOnClose(t *testing.T) {
	db := openTestDB(t)
	p := database.NewPersister(db)

	snap := store.Snapshot{
		Products: []models.Product{
			{ID: "p1", Name: "Pan blanco", Stock: 9, MinStock: 2, Unit: "unidades", SalePrice: decimal.NewFromInt(500)},
		},
	}
	p.Enqueue(snap)
	p.Close()

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Products) != 1 || loaded.Products[0].Stock != 9 {
		t.Errorf("products = %+v, want the enqueued snapshot persisted", loaded.Products)
	}
}

func TestPersisterKeepsLatestUnderPressure(t *testing.T) {
	db := openTestDB(t)
	p := database.NewPersister(db)

	for i := 1; i <= 100; i++ {
		p.Enqueue(store.Snapshot{
			Products: []models.Product{
				{ID: "p1", Name: "Pan blanco", Stock: float64(i), MinStock: 2, Unit: "unidades", SalePrice: decimal.NewFromInt(500)},
			},
		})
	}
	p.Close()

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Products) != 1 || loaded.Products[0].Stock != 100 {
		t.Errorf("stock = %+v, want the last enqueued value 100", loaded.Products)
	}
}

func TestPersisterCloseIsIdempotent(t *testing.T) {
	p := database.NewPersister(openTestDB(t))
	p.Close()
	p.Close()
}
