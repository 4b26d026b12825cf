package destination

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

var searchFields = []string{"name"}

// Sort keys destination listings support. Unknown keys fall back to
// name ascending.
var sorts = query.SortTable{
	Default: query.Order{Field: "name"},
	Keys: map[string]query.Order{
		"name_asc":    {Field: "name"},
		"name_desc":   {Field: "name", Desc: true},
		"rating_desc": {Field: "avg_rating", Desc: true},
		"date_desc":   {Field: "created_at", Desc: true},
	},
}

// destinationRepository implements domain.DestinationRepository on the
// generic store.
type destinationRepository struct {
	store *store.Repository[domain.TouristDestination, *domain.TouristDestination]
}

// NewDestinationRepository creates a new DestinationRepository backed by
// the given GORM database.
func NewDestinationRepository(db *gorm.DB) domain.DestinationRepository {
	return &destinationRepository{store: store.New[domain.TouristDestination, *domain.TouristDestination](db)}
}

func (r *destinationRepository) Create(ctx context.Context, d *domain.TouristDestination) error {
	return r.store.Create(ctx, d)
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*domain.TouristDestination, error) {
	return r.store.GetByID(ctx, id)
}

// List returns one page of active destinations, optionally scoped to a
// destination type.
func (r *destinationRepository) List(ctx context.Context, spec domain.SpecParams, filter domain.DestinationFilter) (*domain.Pagination[domain.TouristDestination], error) {
	var extra query.Predicate
	if filter.TypeID != "" {
		extra = query.Equals("destination_type_id", filter.TypeID)
	}
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Extra:        extra,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *destinationRepository) ListDeleted(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.TouristDestination], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Deleted:      true,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *destinationRepository) Update(ctx context.Context, d *domain.TouristDestination) error {
	return r.store.Update(ctx, d)
}

// AddImage appends an image URL to an active destination. It reports
// whether a record was actually modified.
func (r *destinationRepository) AddImage(ctx context.Context, id, imageURL string) (bool, error) {
	d, err := r.store.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if !d.Status {
		return false, nil
	}
	d.Images = append(d.Images, imageURL)
	if err := r.store.Update(ctx, d); err != nil {
		return false, err
	}
	return true, nil
}

func (r *destinationRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}

func (r *destinationRepository) Restore(ctx context.Context, id string) (bool, error) {
	return r.store.Restore(ctx, id)
}
