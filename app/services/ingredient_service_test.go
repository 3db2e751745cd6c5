package services_test

import (
	"errors"
	"testing"

	"PanaderiaApp/app/models"
	"PanaderiaApp/app/services"

	"github.com/shopspring/decimal"
)

func newIngredientService(t *testing.T) *services.IngredientService {
	t.Helper()
	return services.NewIngredientService(newTestStore(t), nil)
}

func TestCreateIngredientDerivesMinStock(t *testing.T) {
	svc := newIngredientService(t)

	cases := []struct {
		unit models.IngredientUnit
		want float64
	}{
		{models.UnitKg, 5},
		{models.UnitLiter, 10},
		{models.UnitCount, 15},
	}
	for _, tc := range cases {
		ing, err := svc.CreateIngredient("Algo "+string(tc.unit), tc.unit, 30, decimal.NewFromInt(1))
		if err != nil {
			t.Fatalf("CreateIngredient(%s) failed: %v", tc.unit, err)
		}
		if ing.MinStock != tc.want {
			t.Errorf("min stock for %s = %g, want %g", tc.unit, ing.MinStock, tc.want)
		}
	}
}

func TestCreateIngredientValidation(t *testing.T) {
	svc := newIngredientService(t)

	var verr *models.ValidationError
	if _, err := svc.CreateIngredient("", models.UnitKg, 1, decimal.NewFromInt(1)); !errors.As(err, &verr) {
		t.Errorf("empty name = %v, want ValidationError", err)
	}
	if _, err := svc.CreateIngredient("Sal", models.IngredientUnit("toneladas"), 1, decimal.NewFromInt(1)); !errors.As(err, &verr) {
		t.Errorf("bad unit = %v, want ValidationError", err)
	}
	if _, err := svc.CreateIngredient("Sal", models.UnitKg, -1, decimal.NewFromInt(1)); !errors.As(err, &verr) {
		t.Errorf("negative stock = %v, want ValidationError", err)
	}
}

func TestUpdateIngredientUnitPrice(t *testing.T) {
	svc := newIngredientService(t)

	if err := svc.UpdateUnitPrice("i1", decimal.NewFromInt(3)); err != nil {
		t.Fatalf("UpdateUnitPrice failed: %v", err)
	}
	ing, _ := svc.Ingredient("i1")
	if !ing.UnitPrice.Equal(decimal.NewFromInt(3)) {
		t.Errorf("unit price = %s, want 3", ing.UnitPrice)
	}
}

func TestAdjustIngredientStockClampsAtZero(t *testing.T) {
	svc := newIngredientService(t)

	if err := svc.AdjustStock("i1", -100); err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}
	ing, _ := svc.Ingredient("i1")
	if ing.Stock != 0 {
		t.Errorf("stock = %g, want clamp at 0", ing.Stock)
	}
}

func TestDeleteIngredientPrunesItFromRecipes(t *testing.T) {
	svc := newIngredientService(t)

	if err := svc.DeleteIngredient("i1"); err != nil {
		t.Fatalf("DeleteIngredient failed: %v", err)
	}
	rec, ok := svc.Recipe("p1")
	if !ok {
		t.Fatal("recipe should survive the ingredient deletion")
	}
	if len(rec.Items) != 0 {
		t.Errorf("recipe items = %+v, want the i1 entry pruned", rec.Items)
	}
}

func TestSaveRecipeUpserts(t *testing.T) {
	svc := newIngredientService(t)
	extra, err := svc.CreateIngredient("Levadura", models.UnitKg, 10, decimal.NewFromInt(4))
	if err != nil {
		t.Fatalf("CreateIngredient failed: %v", err)
	}

	rec, err := svc.SaveRecipe("p1", []models.RecipeItem{
		{IngredientID: "i1", Quantity: 2},
		{IngredientID: extra.ID, Quantity: 0.5},
	})
	if err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("recipe items = %d, want 2", len(rec.Items))
	}

	stored, _ := svc.Recipe("p1")
	if len(stored.Items) != 2 || stored.Items[0].Quantity != 2 {
		t.Errorf("stored recipe = %+v, want the replacement", stored)
	}
}

func TestSaveRecipeValidation(t *testing.T) {
	svc := newIngredientService(t)

	var verr *models.ValidationError
	if _, err := svc.SaveRecipe("missing", []models.RecipeItem{{IngredientID: "i1", Quantity: 1}}); !errors.As(err, &verr) {
		t.Errorf("unknown product = %v, want ValidationError", err)
	}
	if _, err := svc.SaveRecipe("p1", nil); !errors.As(err, &verr) {
		t.Errorf("empty recipe = %v, want ValidationError", err)
	}
	if _, err := svc.SaveRecipe("p1", []models.RecipeItem{{IngredientID: "i1", Quantity: 0}}); !errors.As(err, &verr) {
		t.Errorf("zero quantity = %v, want ValidationError", err)
	}
	if _, err := svc.SaveRecipe("p1", []models.RecipeItem{{IngredientID: "fantasma", Quantity: 1}}); !errors.As(err, &verr) {
		t.Errorf("unknown ingredient = %v, want ValidationError", err)
	}
	if _, err := svc.SaveRecipe("p1", []models.RecipeItem{
		{IngredientID: "i1", Quantity: 1},
		{IngredientID: "i1", Quantity: 2},
	}); !errors.As(err, &verr) {
		t.Errorf("duplicate ingredient = %v, want ValidationError", err)
	}

	// Failed saves must not clobber the existing recipe.
	rec, _ := svc.Recipe("p1")
	if len(rec.Items) != 1 || rec.Items[0].Quantity != 4 {
		t.Errorf("recipe = %+v, want the original untouched", rec)
	}
}
