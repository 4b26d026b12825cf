package review

import (
	"context"
	"strings"
	"time"

	"github.com/ptduy/tourbase/internal/domain"
)

// reviewService implements domain.ReviewService.
type reviewService struct {
	repo domain.ReviewRepository
}

// NewReviewService creates a new ReviewService with the given repository.
func NewReviewService(repo domain.ReviewRepository) domain.ReviewService {
	return &reviewService{repo: repo}
}

// CreateReview validates input and persists a new review.
func (s *reviewService) CreateReview(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return nil, domain.NewAppError(domain.CodeValidation, "rating must be between 1 and 5", nil)
	}
	if rv.DestinationID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "destination is required", nil)
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// GetReview retrieves an active review by ID. Soft-deleted reviews count
// as absent.
func (s *reviewService) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rv.Status {
		return nil, domain.ErrNotFound
	}
	return rv, nil
}

func (s *reviewService) ListReviews(ctx context.Context, spec domain.SpecParams, filter domain.ReviewFilter) (*domain.Pagination[domain.Review], error) {
	return s.repo.List(ctx, spec, filter)
}

// AddReply appends a threaded reply to a review and returns it.
func (s *reviewService) AddReply(ctx context.Context, reviewID, userID, content string) (*domain.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "content is required", nil)
	}
	rv, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	reply := domain.Reply{
		ID:        domain.NewID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	rv.Replies = append(rv.Replies, reply)
	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, err
	}
	return &reply, nil
}

// AddReviewImage appends an image URL to a review and returns the
// stored URL.
func (s *reviewService) AddReviewImage(ctx context.Context, id, imageURL string) (string, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", domain.NewAppError(domain.CodeValidation, "image url is required", nil)
	}
	rv, err := s.GetReview(ctx, id)
	if err != nil {
		return "", err
	}
	rv.Images = append(rv.Images, imageURL)
	if err := s.repo.Update(ctx, rv); err != nil {
		return "", err
	}
	return imageURL, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}
