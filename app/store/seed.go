package store

import (
	"PanaderiaApp/app/models"

	"github.com/shopspring/decimal"
)

// SeedSnapshot returns the default state for a fresh installation: the
// standard bakery catalog, no ingredients, recipes, sales or orders.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Products: []models.Product{
			{ID: "1", Name: "Pan blanco", Stock: 30, MinStock: 10, Unit: "unidades", SalePrice: decimal.NewFromInt(500)},
			{ID: "2", Name: "Pan integral", Stock: 20, MinStock: 8, Unit: "unidades", SalePrice: decimal.NewFromInt(600)},
			{ID: "3", Name: "Torta de chocolate", Stock: 5, MinStock: 2, Unit: "unidades", SalePrice: decimal.NewFromInt(12000)},
			{ID: "4", Name: "Pastel tres leches", Stock: 4, MinStock: 2, Unit: "unidades", SalePrice: decimal.NewFromInt(11000)},
			{ID: "5", Name: "Croissant", Stock: 12, MinStock: 5, Unit: "unidades", SalePrice: decimal.NewFromInt(900)},
			{ID: "6", Name: "Cupcake", Stock: 18, MinStock: 6, Unit: "unidades", SalePrice: decimal.NewFromInt(700)},
			{ID: "7", Name: "Galletas de mantequilla", Stock: 40, MinStock: 15, Unit: "unidades", SalePrice: decimal.NewFromInt(300)},
			{ID: "8", Name: "Empanadas", Stock: 10, MinStock: 4, Unit: "unidades", SalePrice: decimal.NewFromInt(1500)},
		},
	}
}
