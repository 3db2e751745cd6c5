package services

import (
	"strings"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles product catalog operations.
type ProductService struct {
	*BaseService
}

// NewProductService creates a new product service.
func NewProductService(st *store.Store, persister *database.Persister) *ProductService {
	return &ProductService{BaseService: NewBaseService(st, persister)}
}

// Products lists all products.
func (s *ProductService) Products() []models.Product {
	return s.store.Products()
}

// Product looks up a product by id.
func (s *ProductService) Product(id string) (models.Product, bool) {
	return s.store.Product(id)
}

// CreateProduct validates and creates a product.
func (s *ProductService) CreateProduct(name string, stock, minStock float64, unit string, salePrice decimal.Decimal) (models.Product, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return models.Product{}, models.Validationf("el nombre es obligatorio")
	}
	if unit == "" {
		return models.Product{}, models.Validationf("la unidad es obligatoria")
	}
	if stock < 0 || minStock < 0 {
		return models.Product{}, models.Validationf("el stock no puede ser negativo")
	}
	if salePrice.IsNegative() {
		return models.Product{}, models.Validationf("el precio de venta no puede ser negativo")
	}

	product := models.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Stock:     stock,
		MinStock:  minStock,
		Unit:      unit,
		SalePrice: salePrice,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		tx.PutProduct(product)
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	s.persist()
	return product, nil
}

// UpdateSalePrice changes the sale price of a product.
func (s *ProductService) UpdateSalePrice(id string, salePrice decimal.Decimal) error {
	if salePrice.IsNegative() {
		return models.Validationf("el precio de venta no puede ser negativo")
	}
	err := s.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(id)
		if !ok {
			return models.Validationf("producto %s no existe", id)
		}
		product.SalePrice = salePrice
		tx.PutProduct(product)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// AdjustStock applies a manual stock correction. The result is clamped at 0:
// a negative delta can never drive stock below zero, the clamp absorbs the
// excess silently.
func (s *ProductService) AdjustStock(id string, delta float64) error {
	err := s.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(id)
		if !ok {
			return models.Validationf("producto %s no existe", id)
		}
		product.Stock += delta
		if product.Stock < 0 {
			product.Stock = 0
		}
		tx.PutProduct(product)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// DeleteProduct removes a product and, by cascade, its recipe.
func (s *ProductService) DeleteProduct(id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Product(id); !ok {
			return models.Validationf("producto %s no existe", id)
		}
		tx.DeleteProduct(id)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}
