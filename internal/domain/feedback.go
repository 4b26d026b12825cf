package domain

import "context"

// Feedback is a free-form message sent by an app user.
type Feedback struct {
	BaseModel
	UserID  string   `gorm:"size:36;index" json:"user_id"`
	Content string   `gorm:"type:text;not null" json:"content"`
	Images  []string `gorm:"serializer:json" json:"images,omitempty"`
}

// FeedbackRepository defines the data access interface for feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context, spec SpecParams) (*Pagination[Feedback], error)
	Delete(ctx context.Context, id string) (bool, error)
}

// FeedbackService defines the business logic interface for feedback.
type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID, content string, images []string) (*Feedback, error)
	GetFeedback(ctx context.Context, id string) (*Feedback, error)
	ListFeedback(ctx context.Context, spec SpecParams) (*Pagination[Feedback], error)
	DeleteFeedback(ctx context.Context, id string) error
}
