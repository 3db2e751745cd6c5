package models

import "github.com/shopspring/decimal"

// IngredientUnit is the measurement type of a raw ingredient.
type IngredientUnit string

const (
	UnitKg    IngredientUnit = "kg"
	UnitLiter IngredientUnit = "litros"
	UnitCount IngredientUnit = "unitarios"
)

func (u IngredientUnit) String() string {
	return string(u)
}

// Valid reports whether the unit is one of the known measurement types.
func (u IngredientUnit) Valid() bool {
	switch u {
	case UnitKg, UnitLiter, UnitCount:
		return true
	}
	return false
}

// DefaultMinStock returns the minimum stock threshold assigned to new
// ingredients of this unit type.
func (u IngredientUnit) DefaultMinStock() float64 {
	switch u {
	case UnitKg:
		return 5
	case UnitLiter:
		return 10
	case UnitCount:
		return 15
	}
	return 0
}

// Label returns the short display label for the unit.
func (u IngredientUnit) Label() string {
	switch u {
	case UnitKg:
		return "kg"
	case UnitLiter:
		return "L"
	case UnitCount:
		return "und."
	}
	return ""
}

// Ingredient represents a raw material consumed by product recipes.
type Ingredient struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Unit      IngredientUnit  `json:"tipoUnidad"`
	Stock     float64         `json:"stockActual"`
	MinStock  float64         `json:"stockMinimo"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
}

// IsLowStock reports whether the ingredient is at or below its minimum stock.
func (i Ingredient) IsLowStock() bool {
	return i.Stock <= i.MinStock
}

// RecipeItem is one ingredient line of a recipe: the quantity of the
// ingredient consumed to produce a single unit of the product.
type RecipeItem struct {
	IngredientID string  `json:"ingredienteId"`
	Quantity     float64 `json:"cantidad"`
}

// Recipe is the bill of materials for a product. A product has at most one
// recipe; saving replaces any previous one wholesale.
type Recipe struct {
	ProductID string       `json:"productoId"`
	Items     []RecipeItem `json:"ingredientes"`
}
