package usecase_test

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de catálogo y reportes.

type fakeCategoryRepo struct {
	categories map[string]entity.Category
}

func newFakeCategoryRepo(categories ...entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCategoryRepo) GetByIDs(ids []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			cc := c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListAllByName() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	products   map[string]entity.Product
	categories *fakeCategoryRepo
}

func newFakeProductRepo(categories *fakeCategoryRepo, products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]entity.Product), categories: categories}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int64) error {
	p := r.products[productID]
	p.QuantityInStock = quantity
	r.products[productID] = p
	return nil
}

func (r *fakeProductRepo) ListVisible(categoryIDs []string) ([]repository.ProductWithCategory, error) {
	var out []repository.ProductWithCategory
	for _, p := range r.products {
		if len(categoryIDs) > 0 && !contains(categoryIDs, p.CategoryID) {
			continue
		}
		name := ""
		if r.categories != nil {
			if c, ok := r.categories.categories[p.CategoryID]; ok {
				name = c.Name
			}
		}
		out = append(out, repository.ProductWithCategory{Product: p, CategoryName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) AdjustAllPrices(percentage decimal.Decimal) error {
	factor := decimal.NewFromInt(1).Add(percentage.Div(decimal.NewFromInt(100)))
	for id, p := range r.products {
		p.UnitPrice = p.UnitPrice.Mul(factor)
		r.products[id] = p
	}
	return nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.movements {
		if r.movements[i].ProductID == productID {
			m := r.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

// fakeReportRepo deriva los agregados de los fakes de producto y movimientos,
// con la misma semántica que las consultas SQL reales.
type fakeReportRepo struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeReportRepo) CountProductsByCategory(categoryIDs []string) ([]repository.CategoryProductCount, error) {
	counts := make(map[string]int64)
	for _, p := range r.products.products {
		if len(categoryIDs) > 0 && !contains(categoryIDs, p.CategoryID) {
			continue
		}
		name := p.CategoryID
		if c, ok := r.products.categories.categories[p.CategoryID]; ok {
			name = c.Name
		}
		counts[name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]repository.CategoryProductCount, 0, len(names))
	for _, name := range names {
		out = append(out, repository.CategoryProductCount{CategoryName: name, ProductCount: counts[name]})
	}
	return out, nil
}

func (r *fakeReportRepo) TopMovementProduct(movementType string) (*repository.TopMovementProduct, error) {
	counts := make(map[string]int64)
	for _, m := range r.movements.movements {
		if m.Type != movementType {
			continue
		}
		if p, ok := r.products.products[m.ProductID]; ok {
			counts[p.Name]++
		}
	}
	if len(counts) == 0 {
		return nil, nil
	}
	var top repository.TopMovementProduct
	for name, n := range counts {
		if n > top.MovementCount || (n == top.MovementCount && (top.ProductName == "" || name < top.ProductName)) {
			top = repository.TopMovementProduct{ProductName: name, MovementCount: n}
		}
	}
	return &top, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
