package models

import "github.com/shopspring/decimal"

// DateFormat is the calendar-day format used for sale and order dates.
const DateFormat = "2006-01-02"

// Sale is an immutable record of a completed sale. Price and production cost
// are captured at the time of sale, not looked up live.
type Sale struct {
	ID        string          `json:"id"`
	Date      string          `json:"fecha"` // yyyy-mm-dd
	ProductID string          `json:"productoId"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
	UnitCost  decimal.Decimal `json:"costoUnitario"`
	Profit    decimal.Decimal `json:"ganancia"` // (unit price - unit cost) * quantity
}
