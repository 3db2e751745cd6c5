package services

import (
	"math"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/shopspring/decimal"
)

// RecipeService is the recipe-costing and production engine: it prices
// recipes, computes how many units current ingredient stock supports, and
// converts ingredient stock into product stock.
type RecipeService struct {
	*BaseService
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(st *store.Store, persister *database.Persister) *RecipeService {
	return &RecipeService{BaseService: NewBaseService(st, persister)}
}

// ConsumedIngredient reports how much of one ingredient a production run used.
type ConsumedIngredient struct {
	IngredientID string  `json:"ingredienteId"`
	Quantity     float64 `json:"cantidad"`
}

// ProductionRun is the result of a successful Produce call.
type ProductionRun struct {
	ProductID       string               `json:"productoId"`
	Quantity        int                  `json:"cantidad"`
	UnitCost        decimal.Decimal      `json:"costoUnitario"`
	TotalCost       decimal.Decimal      `json:"costoTotal"`
	Consumed        []ConsumedIngredient `json:"consumidos"`
	NewProductStock float64              `json:"stockResultante"`
}

// ProfitEstimate describes the margin of producing and selling one unit.
type ProfitEstimate struct {
	UnitCost      decimal.Decimal `json:"costoUnitario"`
	UnitProfit    decimal.Decimal `json:"gananciaUnitaria"`
	MarginPercent decimal.Decimal `json:"margenPorcentaje"`
}

// UnitCost returns the production cost of one unit of the product: the sum
// over recipe entries of ingredient unit price times quantity per unit.
// A product without a recipe costs zero; that is a valid state, not an error.
func (s *RecipeService) UnitCost(productID string) decimal.Decimal {
	rec, ok := s.store.Recipe(productID)
	if !ok {
		return decimal.Zero
	}
	return unitCostOf(rec, s.store.Ingredient)
}

// ProductionCost returns the cost of producing quantity units.
func (s *RecipeService) ProductionCost(productID string, quantity int) decimal.Decimal {
	return s.UnitCost(productID).Mul(decimal.NewFromInt(int64(quantity)))
}

// ProfitEstimate computes the per-unit profit and percentage margin of the
// product against its current recipe cost.
func (s *RecipeService) ProfitEstimate(productID string) (ProfitEstimate, error) {
	product, ok := s.store.Product(productID)
	if !ok {
		return ProfitEstimate{}, models.Validationf("producto %s no existe", productID)
	}
	cost := s.UnitCost(productID)
	profit := product.SalePrice.Sub(cost)
	margin := decimal.Zero
	if product.SalePrice.IsPositive() {
		margin = profit.Div(product.SalePrice).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return ProfitEstimate{UnitCost: cost, UnitProfit: profit, MarginPercent: margin}, nil
}

// MaxProducible returns the largest quantity current ingredient stock can
// support: the minimum over recipe entries of floor(stock / quantity per
// unit), floored at 0. A missing or empty recipe yields 0, and an entry
// referencing an unknown ingredient caps the result at 0: an inconsistent
// recipe must not silently produce.
func (s *RecipeService) MaxProducible(productID string) int {
	rec, ok := s.store.Recipe(productID)
	if !ok {
		return 0
	}
	return maxProducibleOf(rec, s.store.Ingredient)
}

// Produce converts ingredient stock into product stock. The run is
// all-or-nothing: either every recipe ingredient is decremented and the
// product stock credited, or nothing changes. Fails with NoRecipeError when
// the product has no recipe, and with InsufficientStockError (carrying the
// current maximum) when quantity is not in [1, MaxProducible].
func (s *RecipeService) Produce(productID string, quantity int) (ProductionRun, error) {
	var run ProductionRun
	err := s.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(productID)
		if !ok {
			return models.Validationf("producto %s no existe", productID)
		}
		rec, ok := tx.Recipe(productID)
		if !ok {
			return &models.NoRecipeError{ProductID: productID}
		}
		max := maxProducibleOf(rec, tx.Ingredient)
		if quantity <= 0 || quantity > max {
			return &models.InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: float64(max),
			}
		}

		unitCost := unitCostOf(rec, tx.Ingredient)
		run = ProductionRun{
			ProductID: productID,
			Quantity:  quantity,
			UnitCost:  unitCost,
			TotalCost: unitCost.Mul(decimal.NewFromInt(int64(quantity))),
		}
		for _, item := range rec.Items {
			ing, _ := tx.Ingredient(item.IngredientID)
			consumed := item.Quantity * float64(quantity)
			ing.Stock -= consumed
			if ing.Stock < 0 {
				ing.Stock = 0
			}
			tx.PutIngredient(ing)
			run.Consumed = append(run.Consumed, ConsumedIngredient{
				IngredientID: item.IngredientID,
				Quantity:     consumed,
			})
		}

		product.Stock += float64(quantity)
		tx.PutProduct(product)
		run.NewProductStock = product.Stock
		return nil
	})
	if err != nil {
		return ProductionRun{}, err
	}
	s.persist()
	return run, nil
}

// unitCostOf prices a recipe against an ingredient lookup. Entries whose
// ingredient no longer exists contribute nothing; MaxProducible is what
// flags the recipe as inconsistent.
func unitCostOf(rec models.Recipe, lookup func(string) (models.Ingredient, bool)) decimal.Decimal {
	cost := decimal.Zero
	for _, item := range rec.Items {
		ing, ok := lookup(item.IngredientID)
		if !ok {
			continue
		}
		cost = cost.Add(ing.UnitPrice.Mul(decimal.NewFromFloat(item.Quantity)))
	}
	return cost
}

func maxProducibleOf(rec models.Recipe, lookup func(string) (models.Ingredient, bool)) int {
	if len(rec.Items) == 0 {
		return 0
	}
	max := math.MaxInt
	for _, item := range rec.Items {
		ing, ok := lookup(item.IngredientID)
		if !ok || item.Quantity <= 0 {
			return 0
		}
		n := int(math.Floor(ing.Stock / item.Quantity))
		if n < max {
			max = n
		}
	}
	if max < 0 {
		max = 0
	}
	return max
}
