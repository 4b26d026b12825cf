// Package notification stores announcements for later delivery.
// Actual delivery channels (push, email, SMS) live outside this module.
package notification

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/query"
	"github.com/ptduy/tourbase/internal/store"
)

var sorts = query.SortTable{
	Default: query.Order{Field: "created_at", Desc: true},
	Keys: map[string]query.Order{
		"title_asc": {Field: "title"},
	},
}

type notificationRepository struct {
	store *store.Repository[domain.Notification, *domain.Notification]
}

// NewNotificationRepository creates a new NotificationRepository backed
// by the given GORM database.
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepository{store: store.New[domain.Notification, *domain.Notification](db)}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.store.Create(ctx, n)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	return r.store.GetByID(ctx, id)
}

// List returns one page of active notifications, newest first.
func (r *notificationRepository) List(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.Notification], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		SearchFields: []string{"title"},
		Sorts:        sorts,
	})
}

func (r *notificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}

func (r *notificationRepository) Restore(ctx context.Context, id string) (bool, error) {
	return r.store.Restore(ctx, id)
}

type notificationService struct {
	repo domain.NotificationRepository
}

// NewNotificationService creates a new NotificationService with the
// given repository.
func NewNotificationService(repo domain.NotificationRepository) domain.NotificationService {
	return &notificationService{repo: repo}
}

// CreateNotification validates input and persists a new announcement.
func (s *notificationService) CreateNotification(ctx context.Context, title, content, iconCode string) (*domain.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	n := &domain.Notification{Title: title, Content: content, IconCode: iconCode}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetNotification retrieves an active announcement by ID.
func (s *notificationService) GetNotification(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.Status {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.Notification], error) {
	return s.repo.List(ctx, spec)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

func (s *notificationService) RestoreNotification(ctx context.Context, id string) error {
	modified, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}
