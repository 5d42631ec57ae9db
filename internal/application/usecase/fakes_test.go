package usecase_test

import (
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	// productsIn marca categorías "con productos" para los tests de delete.
	productsIn map[string]bool
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: make(map[string]*entity.Category),
		productsIn: make(map[string]bool),
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) NameExists(name, excludeID string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) ExistsByID(id string) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func (r *fakeCategoryRepo) HasProducts(id string) (bool, error) {
	return r.productsIn[id], nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	adjusted map[string]int64
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product), adjusted: make(map[string]int64)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDWithCategory(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) ListWithCategory() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CodeExists(code, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.Code == code && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) AdjustStock(id string, delta int64) (int64, error) {
	r.adjusted[id] += delta
	p := r.products[id]
	p.CurrentStock += delta
	return p.CurrentStock, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) HasMovementsForProduct(productID string) (bool, error) {
	for _, m := range r.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
