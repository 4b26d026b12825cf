package tip

import (
	"context"
	"strings"

	"github.com/ptduy/tourbase/internal/domain"
)

// tipService implements domain.TipService.
type tipService struct {
	repo domain.TipRepository
}

// NewTipService creates a new TipService with the given repository.
func NewTipService(repo domain.TipRepository) domain.TipService {
	return &tipService{repo: repo}
}

// CreateTip validates input and persists a new tip. A tip with the same
// title under the same tag is rejected.
func (s *tipService) CreateTip(ctx context.Context, title, content, tagID string) (*domain.Tip, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}

	exists, err := s.repo.ExistsByTitleAndTag(ctx, title, tagID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "a tip with this title already exists for the tag", nil)
	}

	t := &domain.Tip{Title: title, Content: content, TagID: tagID}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTip retrieves an active tip by ID. Soft-deleted tips count as absent.
func (s *tipService) GetTip(ctx context.Context, id string) (*domain.Tip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Status {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *tipService) ListTips(ctx context.Context, spec domain.SpecParams, tagID string) (*domain.Pagination[domain.Tip], error) {
	return s.repo.List(ctx, spec, tagID)
}

// UpdateTip validates and saves changes to an existing tip. A title
// change is checked against the duplicate guard. Only the content
// fields are taken from the argument; lifecycle fields (status,
// creation stamp) stay as stored.
func (s *tipService) UpdateTip(ctx context.Context, t *domain.Tip) error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}

	current, err := s.GetTip(ctx, t.ID)
	if err != nil {
		return err
	}
	if title != current.Title || t.TagID != current.TagID {
		exists, err := s.repo.ExistsByTitleAndTag(ctx, title, t.TagID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, "a tip with this title already exists for the tag", nil)
		}
	}

	current.Title = title
	current.Content = t.Content
	current.TagID = t.TagID
	return s.repo.Update(ctx, current)
}

func (s *tipService) DeleteTip(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

func (s *tipService) RestoreTip(ctx context.Context, id string) error {
	modified, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}
