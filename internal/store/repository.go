// Package store implements the generic soft-delete-aware repository the
// query engine drives. It is the only place that talks to the database;
// feature repositories wrap it with entity-specific filters and sorts.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
)

// Entity is the contract every stored record satisfies through
// domain.BaseModel: an opaque identifier, a soft-delete flag, and a
// last-mutation stamp.
type Entity interface {
	GetID() string
	SetID(id string)
	SetStatus(active bool)
	Touch(now time.Time)
}

// ListQuery describes one paginated listing: the client parameters plus
// the entity-specific pieces the calling feature repository supplies.
type ListQuery struct {
	Spec domain.SpecParams

	// Deleted flips the base filter to status=false, for
	// restore-candidate listings.
	Deleted bool

	// Extra is AND-ed with the base and search filters.
	Extra query.Predicate

	// SearchFields are the columns the free-text term is OR-matched
	// against.
	SearchFields []string

	Sorts query.SortTable
}

// Repository is a generic executor over one entity table. T is the
// entity value type, PT its pointer type carrying the Entity methods.
type Repository[T any, PT interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

// New creates a Repository for one entity type.
func New[T any, PT interface {
	*T
	Entity
}](db *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: db}
}

// Create inserts a new record. A missing identifier is generated and the
// record starts active; UpdatedAt stays unset until the first mutation.
func (r *Repository[T, PT]) Create(ctx context.Context, e PT) error {
	if e.GetID() == "" {
		e.SetID(domain.NewID())
	}
	e.SetStatus(true)
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a record by identifier regardless of its status.
// Callers decide whether a soft-deleted record counts as absent.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return PT(&e), nil
}

// Count returns the number of records matching the predicate.
func (r *Repository[T, PT]) Count(ctx context.Context, p query.Predicate) (int64, error) {
	var total int64
	db := query.Apply(r.db.WithContext(ctx).Model(new(T)), p)
	if err := db.Count(&total).Error; err != nil {
		return 0, mapError(err)
	}
	return total, nil
}

// Find returns the ordered records matching the predicate, bounded by
// skip and limit. A non-positive limit means no bound.
func (r *Repository[T, PT]) Find(ctx context.Context, p query.Predicate, order query.Order, skip, limit int) ([]T, error) {
	var items []T
	db := query.Apply(r.db.WithContext(ctx), p)
	db = query.OrderBy(db, order)
	if skip > 0 {
		db = db.Offset(skip)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// List returns all active records matching the predicate, in the
// family's default order.
func (r *Repository[T, PT]) List(ctx context.Context, p query.Predicate, sorts query.SortTable) ([]T, error) {
	filter := query.And(query.Equals("status", true), p)
	return r.Find(ctx, filter, sorts.Default, 0, 0)
}

// Paginate runs one listing query: it composes the filter once, counts
// the matching records, fetches the requested page with the identical
// filter, and assembles the page envelope. An empty page is a valid
// result, not an error.
func (r *Repository[T, PT]) Paginate(ctx context.Context, q ListQuery) (*domain.Pagination[T], error) {
	spec := query.Normalize(q.Spec)

	preds := []query.Predicate{query.Equals("status", !q.Deleted)}
	if spec.Search != "" && len(q.SearchFields) > 0 {
		or := make([]query.Predicate, 0, len(q.SearchFields))
		for _, f := range q.SearchFields {
			or = append(or, query.Regex(f, spec.Search))
		}
		preds = append(preds, query.Or(or...))
	}
	if q.Extra != nil {
		preds = append(preds, q.Extra)
	}
	filter := query.And(preds...)

	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	skip := spec.PageSize * (spec.PageIndex - 1)
	items, err := r.Find(ctx, filter, q.Sorts.Resolve(spec.Sort), skip, spec.PageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return &domain.Pagination[T]{
		PageIndex: spec.PageIndex,
		PageSize:  spec.PageSize,
		Count:     total,
		Data:      items,
	}, nil
}

// Update saves changes to an existing record and stamps UpdatedAt.
func (r *Repository[T, PT]) Update(ctx context.Context, e PT) error {
	e.Touch(time.Now().UTC())
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// UpdateFields applies a partial update to the record with the given
// identifier and reports how many records were modified (0 or 1).
// UpdatedAt is stamped alongside the given fields.
func (r *Repository[T, PT]) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return 0, mapError(res.Error)
	}
	return res.RowsAffected, nil
}

// SoftDelete marks the record inactive and stamps UpdatedAt. It reports
// whether a record was actually modified; false covers both "absent" and
// "already deleted", which this contract deliberately does not separate.
func (r *Repository[T, PT]) SoftDelete(ctx context.Context, id string) (bool, error) {
	return r.setStatus(ctx, id, false, nil)
}

// SoftDeleteWith is SoftDelete plus extra field changes applied in the
// same statement, for callers whose delete flips more than the status
// flag. The extras are only written when the status transition happens.
func (r *Repository[T, PT]) SoftDeleteWith(ctx context.Context, id string, fields map[string]any) (bool, error) {
	return r.setStatus(ctx, id, false, fields)
}

// Restore is the inverse of SoftDelete.
func (r *Repository[T, PT]) Restore(ctx context.Context, id string) (bool, error) {
	return r.setStatus(ctx, id, true, nil)
}

func (r *Repository[T, PT]) setStatus(ctx context.Context, id string, active bool, extra map[string]any) (bool, error) {
	updates := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		updates[k] = v
	}
	updates["status"] = active
	updates["updated_at"] = time.Now().UTC()

	// The status guard makes the modified count mirror a document
	// store's ModifiedCount: updating a record already in the target
	// state modifies nothing.
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND status = ?", id, !active).
		Updates(updates)
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// mapError converts GORM errors to domain errors. Store failures such as
// lost connectivity surface as internal errors; no retry happens here.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
