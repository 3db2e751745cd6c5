package services

import (
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/shopspring/decimal"
)

// ReportService derives read-only summaries from the store. It never
// mutates, so it carries no persister.
type ReportService struct {
	store *store.Store
}

// NewReportService creates a new report service.
func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// DailySalesReport aggregates the sales of one calendar day.
type DailySalesReport struct {
	Date          string          `json:"fecha"`
	Sales         []models.Sale   `json:"ventas"`
	TotalQuantity int             `json:"cantidadTotal"`
	Revenue       decimal.Decimal `json:"ingresos"`
	Cost          decimal.Decimal `json:"costos"`
	Profit        decimal.Decimal `json:"ganancia"`
}

// SalesForDay returns the sales recorded on the given yyyy-mm-dd day with
// revenue, cost and profit totals from the captured per-sale figures.
func (s *ReportService) SalesForDay(date string) DailySalesReport {
	report := DailySalesReport{
		Date:    date,
		Revenue: decimal.Zero,
		Cost:    decimal.Zero,
		Profit:  decimal.Zero,
	}
	for _, sale := range s.store.Sales() {
		if sale.Date != date {
			continue
		}
		qty := decimal.NewFromInt(int64(sale.Quantity))
		report.Sales = append(report.Sales, sale)
		report.TotalQuantity += sale.Quantity
		report.Revenue = report.Revenue.Add(sale.UnitPrice.Mul(qty))
		report.Cost = report.Cost.Add(sale.UnitCost.Mul(qty))
		report.Profit = report.Profit.Add(sale.Profit)
	}
	return report
}

// LowStockProducts lists products at or below their minimum stock.
func (s *ReportService) LowStockProducts() []models.Product {
	var low []models.Product
	for _, p := range s.store.Products() {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// LowStockIngredients lists ingredients at or below their minimum stock.
func (s *ReportService) LowStockIngredients() []models.Ingredient {
	var low []models.Ingredient
	for _, ing := range s.store.Ingredients() {
		if ing.IsLowStock() {
			low = append(low, ing)
		}
	}
	return low
}

// InventoryValue returns the sale value of the product stock on hand.
func (s *ReportService) InventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.store.Products() {
		total = total.Add(p.SalePrice.Mul(decimal.NewFromFloat(p.Stock)))
	}
	return total
}
