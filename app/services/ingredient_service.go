package services

import (
	"strings"

	"PanaderiaApp/app/database"
	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientService handles raw ingredient management and recipe upserts.
type IngredientService struct {
	*BaseService
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(st *store.Store, persister *database.Persister) *IngredientService {
	return &IngredientService{BaseService: NewBaseService(st, persister)}
}

// Ingredients lists all ingredients.
func (s *IngredientService) Ingredients() []models.Ingredient {
	return s.store.Ingredients()
}

// Ingredient looks up an ingredient by id.
func (s *IngredientService) Ingredient(id string) (models.Ingredient, bool) {
	return s.store.Ingredient(id)
}

// CreateIngredient validates and creates an ingredient. The minimum stock
// threshold is derived from the unit type: kg→5, litros→10, unitarios→15.
func (s *IngredientService) CreateIngredient(name string, unit models.IngredientUnit, stock float64, unitPrice decimal.Decimal) (models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Ingredient{}, models.Validationf("el nombre es obligatorio")
	}
	if !unit.Valid() {
		return models.Ingredient{}, models.Validationf("tipo de unidad %q no es válido", unit)
	}
	if stock < 0 {
		return models.Ingredient{}, models.Validationf("el stock no puede ser negativo")
	}
	if unitPrice.IsNegative() {
		return models.Ingredient{}, models.Validationf("el precio unitario no puede ser negativo")
	}

	ingredient := models.Ingredient{
		ID:        uuid.NewString(),
		Name:      name,
		Unit:      unit,
		Stock:     stock,
		MinStock:  unit.DefaultMinStock(),
		UnitPrice: unitPrice,
	}
	err := s.store.Update(func(tx *store.Tx) error {
		tx.PutIngredient(ingredient)
		return nil
	})
	if err != nil {
		return models.Ingredient{}, err
	}
	s.persist()
	return ingredient, nil
}

// UpdateUnitPrice changes the unit price of an ingredient.
func (s *IngredientService) UpdateUnitPrice(id string, unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return models.Validationf("el precio unitario no puede ser negativo")
	}
	err := s.store.Update(func(tx *store.Tx) error {
		ingredient, ok := tx.Ingredient(id)
		if !ok {
			return models.Validationf("ingrediente %s no existe", id)
		}
		ingredient.UnitPrice = unitPrice
		tx.PutIngredient(ingredient)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// AdjustStock applies a manual stock correction, clamped at 0.
func (s *IngredientService) AdjustStock(id string, delta float64) error {
	err := s.store.Update(func(tx *store.Tx) error {
		ingredient, ok := tx.Ingredient(id)
		if !ok {
			return models.Validationf("ingrediente %s no existe", id)
		}
		ingredient.Stock += delta
		if ingredient.Stock < 0 {
			ingredient.Stock = 0
		}
		tx.PutIngredient(ingredient)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// DeleteIngredient removes an ingredient and prunes it from every recipe
// that references it. The recipes themselves survive with fewer entries.
func (s *IngredientService) DeleteIngredient(id string) error {
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Ingredient(id); !ok {
			return models.Validationf("ingrediente %s no existe", id)
		}
		tx.DeleteIngredient(id)
		return nil
	})
	if err != nil {
		return err
	}
	s.persist()
	return nil
}

// SaveRecipe sets the full recipe for a product, replacing any existing one
// (upsert semantics). Every entry must name an existing ingredient exactly
// once with a quantity greater than zero.
func (s *IngredientService) SaveRecipe(productID string, items []models.RecipeItem) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Product(productID); !ok {
			return models.Validationf("producto %s no existe", productID)
		}
		if len(items) == 0 {
			return models.Validationf("la receta debe tener al menos un ingrediente")
		}
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if item.Quantity <= 0 {
				return models.Validationf("la cantidad de %s debe ser mayor a 0", item.IngredientID)
			}
			if _, ok := tx.Ingredient(item.IngredientID); !ok {
				return models.Validationf("ingrediente %s no existe", item.IngredientID)
			}
			if seen[item.IngredientID] {
				return models.Validationf("ingrediente %s repetido en la receta", item.IngredientID)
			}
			seen[item.IngredientID] = true
		}
		recipe = models.Recipe{ProductID: productID, Items: append([]models.RecipeItem(nil), items...)}
		tx.PutRecipe(recipe)
		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}
	s.persist()
	return recipe, nil
}

// Recipe looks up the recipe for a product.
func (s *IngredientService) Recipe(productID string) (models.Recipe, bool) {
	return s.store.Recipe(productID)
}

// LowStockIngredients lists ingredients at or below their minimum stock.
func (s *IngredientService) LowStockIngredients() []models.Ingredient {
	var low []models.Ingredient
	for _, ing := range s.store.Ingredients() {
		if ing.IsLowStock() {
			low = append(low, ing)
		}
	}
	return low
}
