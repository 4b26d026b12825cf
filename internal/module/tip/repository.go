package tip

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

var searchFields = []string{"title"}

var sorts = query.SortTable{
	Default: query.Order{Field: "title"},
	Keys: map[string]query.Order{
		"title_desc": {Field: "title", Desc: true},
		"date_desc":  {Field: "created_at", Desc: true},
	},
}

// tipRepository implements domain.TipRepository on the generic store.
type tipRepository struct {
	store *store.Repository[domain.Tip, *domain.Tip]
}

// NewTipRepository creates a new TipRepository backed by the given GORM database.
func NewTipRepository(db *gorm.DB) domain.TipRepository {
	return &tipRepository{store: store.New[domain.Tip, *domain.Tip](db)}
}

func (r *tipRepository) Create(ctx context.Context, t *domain.Tip) error {
	return r.store.Create(ctx, t)
}

func (r *tipRepository) GetByID(ctx context.Context, id string) (*domain.Tip, error) {
	return r.store.GetByID(ctx, id)
}

// ExistsByTitleAndTag reports whether an active tip with the same title
// already exists under the tag.
func (r *tipRepository) ExistsByTitleAndTag(ctx context.Context, title, tagID string) (bool, error) {
	filter := query.And(
		query.Equals("status", true),
		query.Equals("title", title),
		query.Equals("tag_id", tagID),
	)
	n, err := r.store.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns one page of active tips, optionally scoped to a tag.
func (r *tipRepository) List(ctx context.Context, spec domain.SpecParams, tagID string) (*domain.Pagination[domain.Tip], error) {
	var extra query.Predicate
	if tagID != "" {
		extra = query.Equals("tag_id", tagID)
	}
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Extra:        extra,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *tipRepository) ListDeleted(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.Tip], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Deleted:      true,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

func (r *tipRepository) Update(ctx context.Context, t *domain.Tip) error {
	return r.store.Update(ctx, t)
}

func (r *tipRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}

func (r *tipRepository) Restore(ctx context.Context, id string) (bool, error) {
	return r.store.Restore(ctx, id)
}
