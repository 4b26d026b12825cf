package review

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

var searchFields = []string{"comment"}

// Reviews list newest first by default.
var sorts = query.SortTable{
	Default: query.Order{Field: "created_at", Desc: true},
	Keys: map[string]query.Order{
		"rating_desc": {Field: "rating", Desc: true},
		"rating_asc":  {Field: "rating"},
	},
}

// reviewRepository implements domain.ReviewRepository on the generic store.
type reviewRepository struct {
	store *store.Repository[domain.Review, *domain.Review]
}

// NewReviewRepository creates a new ReviewRepository backed by the given
// GORM database.
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &reviewRepository{store: store.New[domain.Review, *domain.Review](db)}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.store.Create(ctx, rv)
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return r.store.GetByID(ctx, id)
}

// List returns one page of active reviews, optionally scoped to a
// rating value and a destination.
func (r *reviewRepository) List(ctx context.Context, spec domain.SpecParams, filter domain.ReviewFilter) (*domain.Pagination[domain.Review], error) {
	var extras []query.Predicate
	if filter.Rating != 0 {
		extras = append(extras, query.Equals("rating", filter.Rating))
	}
	if filter.DestinationID != "" {
		extras = append(extras, query.Equals("destination_id", filter.DestinationID))
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

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.store.Update(ctx, rv)
}

func (r *reviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}
