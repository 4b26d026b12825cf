package domain

import (
	"context"
	"time"
)

// Reply is a threaded answer attached to a review.
type Reply struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a visitor rating of a tourist destination.
type Review struct {
	BaseModel
	Rating        int      `gorm:"not null" json:"rating"`
	Comment       string   `gorm:"type:text" json:"comment,omitempty"`
	Images        []string `gorm:"serializer:json" json:"images,omitempty"`
	UserID        string   `gorm:"size:36;index" json:"user_id"`
	DestinationID string   `gorm:"size:36;index" json:"destination_id"`
	Replies       []Reply  `gorm:"serializer:json" json:"replies,omitempty"`
}

// ReviewFilter carries the entity-specific predicates for review listings.
// A zero Rating means "any rating".
type ReviewFilter struct {
	Rating        int
	DestinationID string
}

// ReviewRepository defines the data access interface for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	List(ctx context.Context, spec SpecParams, filter ReviewFilter) (*Pagination[Review], error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ReviewService defines the business logic interface for reviews.
type ReviewService interface {
	CreateReview(ctx context.Context, r *Review) (*Review, error)
	GetReview(ctx context.Context, id string) (*Review, error)
	ListReviews(ctx context.Context, spec SpecParams, filter ReviewFilter) (*Pagination[Review], error)
	AddReply(ctx context.Context, reviewID, userID, content string) (*Reply, error)
	AddReviewImage(ctx context.Context, id, imageURL string) (string, error)
	DeleteReview(ctx context.Context, id string) error
}
