package store

import (
	"sync"

	"PanaderiaApp/app/models"
)

// Snapshot is the serializable representation of the full store state. It is
// what the persistence adapter writes and what a new session loads.
type Snapshot struct {
	Products    []models.Product    `json:"productos"`
	Ingredients []models.Ingredient `json:"ingredientes"`
	Recipes     []models.Recipe     `json:"recetas"`
	Sales       []models.Sale       `json:"ventas"`
	Orders      []models.Order      `json:"pedidos"`
}

// state holds the collections. Maps give O(1) lookup; the order slices keep
// listings stable in insertion order.
type state struct {
	products        map[string]models.Product
	productOrder    []string
	ingredients     map[string]models.Ingredient
	ingredientOrder []string
	recipes         map[string]models.Recipe
	sales           []models.Sale
	orders          []models.Order
}

func newState() *state {
	return &state{
		products:    make(map[string]models.Product),
		ingredients: make(map[string]models.Ingredient),
		recipes:     make(map[string]models.Recipe),
	}
}

func copyRecipe(r models.Recipe) models.Recipe {
	r.Items = append([]models.RecipeItem(nil), r.Items...)
	return r
}

func (st *state) clone() *state {
	next := &state{
		products:        make(map[string]models.Product, len(st.products)),
		productOrder:    append([]string(nil), st.productOrder...),
		ingredients:     make(map[string]models.Ingredient, len(st.ingredients)),
		ingredientOrder: append([]string(nil), st.ingredientOrder...),
		recipes:         make(map[string]models.Recipe, len(st.recipes)),
		sales:           append([]models.Sale(nil), st.sales...),
		orders:          append([]models.Order(nil), st.orders...),
	}
	for id, p := range st.products {
		next.products[id] = p
	}
	for id, i := range st.ingredients {
		next.ingredients[id] = i
	}
	for id, r := range st.recipes {
		next.recipes[id] = copyRecipe(r)
	}
	return next
}

// Store is the single source of truth for all collections. All mutation goes
// through Update, which applies the whole function or nothing at all.
//
// Access is effectively single-threaded (one presentation actor); the mutex
// only keeps snapshot reads from the background persister race-free.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New returns an empty store.
func New() *Store {
	return &Store{st: newState()}
}

// FromSnapshot builds a store from a loaded snapshot. Duplicate ids collapse
// last-wins; a recipe is keyed by its product id.
func FromSnapshot(snap Snapshot) *Store {
	st := newState()
	for _, p := range snap.Products {
		if _, ok := st.products[p.ID]; !ok {
			st.productOrder = append(st.productOrder, p.ID)
		}
		st.products[p.ID] = p
	}
	for _, i := range snap.Ingredients {
		if _, ok := st.ingredients[i.ID]; !ok {
			st.ingredientOrder = append(st.ingredientOrder, i.ID)
		}
		st.ingredients[i.ID] = i
	}
	for _, r := range snap.Recipes {
		st.recipes[r.ProductID] = copyRecipe(r)
	}
	st.sales = append(st.sales, snap.Sales...)
	st.orders = append(st.orders, snap.Orders...)
	return &Store{st: st}
}

// Snapshot exports a copy of the full state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Products:    make([]models.Product, 0, len(s.st.products)),
		Ingredients: make([]models.Ingredient, 0, len(s.st.ingredients)),
		Recipes:     make([]models.Recipe, 0, len(s.st.recipes)),
		Sales:       append([]models.Sale(nil), s.st.sales...),
		Orders:      append([]models.Order(nil), s.st.orders...),
	}
	for _, id := range s.st.productOrder {
		snap.Products = append(snap.Products, s.st.products[id])
	}
	for _, id := range s.st.ingredientOrder {
		snap.Ingredients = append(snap.Ingredients, s.st.ingredients[id])
	}
	for _, id := range s.st.productOrder {
		if r, ok := s.st.recipes[id]; ok {
			snap.Recipes = append(snap.Recipes, copyRecipe(r))
		}
	}
	return snap
}

// Products lists all products in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.st.productOrder))
	for _, id := range s.st.productOrder {
		out = append(out, s.st.products[id])
	}
	return out
}

// Product looks up a product by id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.st.products[id]
	return p, ok
}

// Ingredients lists all ingredients in insertion order.
func (s *Store) Ingredients() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ingredient, 0, len(s.st.ingredientOrder))
	for _, id := range s.st.ingredientOrder {
		out = append(out, s.st.ingredients[id])
	}
	return out
}

// Ingredient looks up an ingredient by id.
func (s *Store) Ingredient(id string) (models.Ingredient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.st.ingredients[id]
	return i, ok
}

// Recipe looks up the recipe for a product.
func (s *Store) Recipe(productID string) (models.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.st.recipes[productID]
	if !ok {
		return models.Recipe{}, false
	}
	return copyRecipe(r), true
}

// Sales returns a copy of the sales ledger, oldest first.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Sale(nil), s.st.sales...)
}

// Orders returns a copy of the order list, oldest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.st.orders...)
}

// Update runs fn against a working copy of the state and swaps it in only if
// fn succeeds. An error from fn leaves the store untouched, which gives every
// multi-collection mutation all-or-nothing semantics.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&Tx{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// Tx is the mutable view handed to Update callbacks.
type Tx struct {
	st *state
}

// Product looks up a product by id.
func (tx *Tx) Product(id string) (models.Product, bool) {
	p, ok := tx.st.products[id]
	return p, ok
}

// PutProduct inserts or replaces a product.
func (tx *Tx) PutProduct(p models.Product) {
	if _, ok := tx.st.products[p.ID]; !ok {
		tx.st.productOrder = append(tx.st.productOrder, p.ID)
	}
	tx.st.products[p.ID] = p
}

// DeleteProduct removes a product and cascades: its recipe is removed too.
func (tx *Tx) DeleteProduct(id string) {
	if _, ok := tx.st.products[id]; !ok {
		return
	}
	delete(tx.st.products, id)
	delete(tx.st.recipes, id)
	for i, pid := range tx.st.productOrder {
		if pid == id {
			tx.st.productOrder = append(tx.st.productOrder[:i], tx.st.productOrder[i+1:]...)
			break
		}
	}
}

// Ingredient looks up an ingredient by id.
func (tx *Tx) Ingredient(id string) (models.Ingredient, bool) {
	i, ok := tx.st.ingredients[id]
	return i, ok
}

// PutIngredient inserts or replaces an ingredient.
func (tx *Tx) PutIngredient(i models.Ingredient) {
	if _, ok := tx.st.ingredients[i.ID]; !ok {
		tx.st.ingredientOrder = append(tx.st.ingredientOrder, i.ID)
	}
	tx.st.ingredients[i.ID] = i
}

// DeleteIngredient removes an ingredient and prunes it from every recipe.
// Recipes themselves survive, possibly with fewer entries.
func (tx *Tx) DeleteIngredient(id string) {
	if _, ok := tx.st.ingredients[id]; !ok {
		return
	}
	delete(tx.st.ingredients, id)
	for i, iid := range tx.st.ingredientOrder {
		if iid == id {
			tx.st.ingredientOrder = append(tx.st.ingredientOrder[:i], tx.st.ingredientOrder[i+1:]...)
			break
		}
	}
	for pid, rec := range tx.st.recipes {
		kept := rec.Items[:0]
		for _, item := range rec.Items {
			if item.IngredientID != id {
				kept = append(kept, item)
			}
		}
		rec.Items = kept
		tx.st.recipes[pid] = rec
	}
}

// Recipe looks up the recipe for a product.
func (tx *Tx) Recipe(productID string) (models.Recipe, bool) {
	r, ok := tx.st.recipes[productID]
	if !ok {
		return models.Recipe{}, false
	}
	return copyRecipe(r), true
}

// PutRecipe saves a recipe, replacing any previous one for the same product.
func (tx *Tx) PutRecipe(r models.Recipe) {
	tx.st.recipes[r.ProductID] = copyRecipe(r)
}

// AppendSale appends an immutable sale record to the ledger.
func (tx *Tx) AppendSale(sale models.Sale) {
	tx.st.sales = append(tx.st.sales, sale)
}

// AppendOrder appends an order.
func (tx *Tx) AppendOrder(o models.Order) {
	tx.st.orders = append(tx.st.orders, o)
}

// Order looks up an order by id.
func (tx *Tx) Order(id string) (models.Order, bool) {
	for _, o := range tx.st.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ReplaceOrder replaces an existing order by id. Unknown ids are a no-op.
func (tx *Tx) ReplaceOrder(o models.Order) {
	for i := range tx.st.orders {
		if tx.st.orders[i].ID == o.ID {
			tx.st.orders[i] = o
			return
		}
	}
}

// DeleteOrders removes the orders with the given ids. Unknown ids are
// silently ignored.
func (tx *Tx) DeleteOrders(ids ...string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := tx.st.orders[:0]
	for _, o := range tx.st.orders {
		if !drop[o.ID] {
			kept = append(kept, o)
		}
	}
	tx.st.orders = kept
}
