package services

import (
	"strings"
	"time"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesService is the sales/orders ledger: it records sale and order
// transactions, derives per-sale profit from the current recipe cost, and
// adjusts product stock.
type SalesService struct {
	*BaseService
}

// NewSalesService creates a new sales service.
func NewSalesService(st *store.Store, persister *database.Persister) *SalesService {
	return &SalesService{BaseService: NewBaseService(st, persister)}
}

// SaleItem is one line of a batch registration.
type SaleItem struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
}

// BatchResult reports the outcome of one batch line. Err is nil for lines
// that committed; failed lines are skipped without affecting the others.
type BatchResult struct {
	Index     int    `json:"index"`
	ProductID string `json:"productoId"`
	ID        string `json:"id,omitempty"`
	Err       error  `json:"-"`
}

// OrderGroup presents the orders a customer placed on one day as a single
// logical group.
type OrderGroup struct {
	Customer string         `json:"cliente"`
	Date     string         `json:"fecha"`
	Orders   []models.Order `json:"pedidos"`
}

// RecordSale validates and records a sale of the product: captures the
// current sale price and recipe cost, stamps today's date, decrements the
// product stock and appends the immutable sale record. Fails with
// InsufficientStockError (no mutation) when stock would go negative.
func (s *SalesService) RecordSale(productID string, quantity int) (models.Sale, error) {
	var sale models.Sale
	err := s.store.Update(func(tx *store.Tx) error {
		if quantity <= 0 {
			return models.Validationf("la cantidad debe ser mayor a 0")
		}
		product, ok := tx.Product(productID)
		if !ok {
			return models.Validationf("producto %s no existe", productID)
		}
		newStock := product.Stock - float64(quantity)
		if newStock < 0 {
			return &models.InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: product.Stock,
			}
		}

		unitCost := decimal.Zero
		if rec, ok := tx.Recipe(productID); ok {
			unitCost = unitCostOf(rec, tx.Ingredient)
		}

		sale = models.Sale{
			ID:        uuid.NewString(),
			Date:      time.Now().Format(models.DateFormat),
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.SalePrice,
			UnitCost:  unitCost,
			Profit:    product.SalePrice.Sub(unitCost).Mul(decimal.NewFromInt(int64(quantity))),
		}

		product.Stock = newStock
		tx.PutProduct(product)
		tx.AppendSale(sale)
		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}
	s.persist()
	return sale, nil
}

// RecordSalesBatch applies RecordSale per line in sequence. The batch is not
// atomic across lines: invalid lines are reported and skipped while the
// valid ones still commit.
func (s *SalesService) RecordSalesBatch(items []SaleItem) []BatchResult {
	results := make([]BatchResult, 0, len(items))
	for i, item := range items {
		res := BatchResult{Index: i, ProductID: item.ProductID}
		sale, err := s.RecordSale(item.ProductID, item.Quantity)
		if err != nil {
			res.Err = err
		} else {
			res.ID = sale.ID
		}
		results = append(results, res)
	}
	return results
}

// RecordOrder creates a pending order for the customer. Orders reserve no
// inventory.
func (s *SalesService) RecordOrder(customer, productID string, quantity int) (models.Order, error) {
	var order models.Order
	err := s.store.Update(func(tx *store.Tx) error {
		if strings.TrimSpace(customer) == "" {
			return models.Validationf("el cliente es obligatorio")
		}
		if quantity <= 0 {
			return models.Validationf("la cantidad debe ser mayor a 0")
		}
		if _, ok := tx.Product(productID); !ok {
			return models.Validationf("producto %s no existe", productID)
		}
		order = models.Order{
			ID:        uuid.NewString(),
			Customer:  strings.TrimSpace(customer),
			Date:      time.Now().Format(models.DateFormat),
			Status:    models.OrderStatusPending,
			ProductID: productID,
			Quantity:  quantity,
		}
		tx.AppendOrder(order)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	s.persist()
	return order, nil
}

// RecordOrdersBatch creates one order per valid line for the same customer.
// Invalid lines are reported and skipped; the rest still commit.
func (s *SalesService) RecordOrdersBatch(customer string, items []SaleItem) []BatchResult {
	results := make([]BatchResult, 0, len(items))
	for i, item := range items {
		res := BatchResult{Index: i, ProductID: item.ProductID}
		order, err := s.RecordOrder(customer, item.ProductID, item.Quantity)
		if err != nil {
			res.Err = err
		} else {
			res.ID = order.ID
		}
		results = append(results, res)
	}
	return results
}

// UpdateOrderStatus applies the one-way pendiente → entregado transition.
// Updating to the current status, or attempting the reverse transition, or
// naming an unknown order is a no-op.
func (s *SalesService) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return models.Validationf("estado %q no es válido", status)
	}
	err := s.store.Update(func(tx *store.Tx) error {
		order, ok := tx.Order(orderID)
		if !ok {
			return nil
		}
		if order.Status == status || order.Status == models.OrderStatusDelivered {
			return nil
		}
		order.Status = status
		tx.ReplaceOrder(order)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// DeleteOrders removes orders by id. Unknown ids are silently ignored.
func (s *SalesService) DeleteOrders(ids ...string) {
	if len(ids) == 0 {
		return
	}
	s.store.Update(func(tx *store.Tx) error {
		tx.DeleteOrders(ids...)
		return nil
	})
	s.persist()
}

// Sales returns the full sales ledger, oldest first.
func (s *SalesService) Sales() []models.Sale {
	return s.store.Sales()
}

// Orders returns all orders, oldest first.
func (s *SalesService) Orders() []models.Order {
	return s.store.Orders()
}

// OrdersGroupedByCustomer groups orders by (customer, date), preserving the
// order in which each group first appears.
func (s *SalesService) OrdersGroupedByCustomer() []OrderGroup {
	type key struct{ customer, date string }
	orders := s.store.Orders()

	index := make(map[key]int)
	groups := make([]OrderGroup, 0)
	for _, o := range orders {
		k := key{o.Customer, o.Date}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, OrderGroup{Customer: o.Customer, Date: o.Date})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}
