package models

import "github.com/shopspring/decimal"

// Product represents a finished bakery product offered for sale.
// JSON tags match the persisted snapshot format (panaderia-app-state-v1).
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Stock     float64         `json:"stockActual"`
	MinStock  float64         `json:"stockMinimo"`
	Unit      string          `json:"unidad"` // display label, e.g. "unidades"
	SalePrice decimal.Decimal `json:"precioVenta"`
}

// IsLowStock reports whether the product is at or below its minimum stock.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
