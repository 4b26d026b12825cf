package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

// Columns the free-text search term is matched against.
var searchFields = []string{"profile_full_name", "username"}

// Sort keys user listings support. Unknown keys fall back to username
// ascending.
var sorts = query.SortTable{
	Default: query.Order{Field: "username"},
	Keys: map[string]query.Order{
		"fullname_desc": {Field: "profile_full_name", Desc: true},
		"username_desc": {Field: "username", Desc: true},
	},
}

// userRepository implements domain.UserRepository on the generic store.
type userRepository struct {
	store *store.Repository[domain.User, *domain.User]
}

// NewUserRepository creates a new UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{store: store.New[domain.User, *domain.User](db)}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.store.Create(ctx, user)
}

// GetByID retrieves a user by its identifier, regardless of status.
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.store.GetByID(ctx, id)
}

// GetByEmail retrieves an active user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	filter := query.And(query.Equals("status", true), query.Equals("email", email))
	users, err := r.store.Find(ctx, filter, sorts.Default, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNotFound
	}
	return &users[0], nil
}

// List returns one page of active users.
func (r *userRepository) List(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.User], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

// ListDeleted returns one page of soft-deleted users, the restore candidates.
func (r *userRepository) ListDeleted(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.User], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		Deleted:      true,
		SearchFields: searchFields,
		Sorts:        sorts,
	})
}

// Update saves changes to an existing user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.store.Update(ctx, user)
}

// Delete marks the user inactive and forbidden in one statement. It
// reports whether a record was actually modified.
func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDeleteWith(ctx, id, map[string]any{"is_forbidden": true})
}

// Restore marks a soft-deleted user active again.
func (r *userRepository) Restore(ctx context.Context, id string) (bool, error) {
	return r.store.Restore(ctx, id)
}
