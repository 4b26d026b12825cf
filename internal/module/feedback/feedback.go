// Package feedback stores free-form messages from app users. It is
// intentionally small: feedback is written once, read by operators, and
// soft-deleted when handled.
package feedback

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
}

type feedbackRepository struct {
	store *store.Repository[domain.Feedback, *domain.Feedback]
}

// NewFeedbackRepository creates a new FeedbackRepository backed by the
// given GORM database.
func NewFeedbackRepository(db *gorm.DB) domain.FeedbackRepository {
	return &feedbackRepository{store: store.New[domain.Feedback, *domain.Feedback](db)}
}

func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	return r.store.Create(ctx, f)
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	return r.store.GetByID(ctx, id)
}

// List returns one page of active feedback, newest first. Free-text
// search matches the message content.
func (r *feedbackRepository) List(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.Feedback], error) {
	return r.store.Paginate(ctx, store.ListQuery{
		Spec:         spec,
		SearchFields: []string{"content"},
		Sorts:        sorts,
	})
}

func (r *feedbackRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}

type feedbackService struct {
	repo domain.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService with the given repository.
func NewFeedbackService(repo domain.FeedbackRepository) domain.FeedbackService {
	return &feedbackService{repo: repo}
}

// CreateFeedback validates input and persists a new feedback message.
func (s *feedbackService) CreateFeedback(ctx context.Context, userID, content string, images []string) (*domain.Feedback, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "content is required", nil)
	}
	f := &domain.Feedback{UserID: userID, Content: content, Images: images}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeedback retrieves an active feedback message by ID.
func (s *feedbackService) GetFeedback(ctx context.Context, id string) (*domain.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !f.Status {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.Feedback], error) {
	return s.repo.List(ctx, spec)
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}
