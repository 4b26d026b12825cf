package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

var searchFields = []string{"product_name"}

// Sort keys product listings support. Unknown keys fall back to product
// name ascending.
var sorts = query.SortTable{
	Default: query.Order{Field: "product_name"},
	Keys: map[string]query.Order{
		"name_desc":  {Field: "product_name", Desc: true},
		"point_desc": {Field: "ocop_point", Desc: true},
		"date_desc":  {Field: "created_at", Desc: true},
	},
}

// productRepository implements domain.ProductRepository on the generic store.
type productRepository struct {
	store *store.Repository[domain.OcopProduct, *domain.OcopProduct]
}

// NewProductRepository creates a new ProductRepository backed by the
// given GORM database.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{store: store.New[domain.OcopProduct, *domain.OcopProduct](db)}
}

func (r *productRepository) Create(ctx context.Context, p *domain.OcopProduct) error {
	return r.store.Create(ctx, p)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.OcopProduct, error) {
	return r.store.GetByID(ctx, id)
}

// List returns one page of active products, optionally scoped to an
// OCOP type and a company.
func (r *productRepository) List(ctx context.Context, spec domain.SpecParams, filter domain.ProductFilter) (*domain.Pagination[domain.OcopProduct], error) {
	var extras []query.Predicate
	if filter.OcopTypeID != "" {
		extras = append(extras, query.Equals("ocop_type_id", filter.OcopTypeID))
	}
	if filter.CompanyID != "" {
		extras = append(extras, query.Equals("company_id", filter.CompanyID))
	}
	var extra query.Predicate
	if len(extras) > 0 {
		extra = query.And(extras...)
	}
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Extra:        extra,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *productRepository) ListDeleted(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.OcopProduct], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Deleted:      true,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *productRepository) Update(ctx context.Context, p *domain.OcopProduct) error {
	return r.store.Update(ctx, p)
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}

func (r *productRepository) Restore(ctx context.Context, id string) (bool, error) {
	return r.store.Restore(ctx, id)
}
