package domain

import "context"

// Tip is a community travel tip grouped under a tag.
type Tip struct {
	BaseModel
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text" json:"content,omitempty"`
	TagID   string `gorm:"size:36;index" json:"tag_id"`
}

// TipRepository defines the data access interface for community tips.
type TipRepository interface {
	Create(ctx context.Context, t *Tip) error
	GetByID(ctx context.Context, id string) (*Tip, error)
	ExistsByTitleAndTag(ctx context.Context, title, tagID string) (bool, error)
	List(ctx context.Context, spec SpecParams, tagID string) (*Pagination[Tip], error)
	ListDeleted(ctx context.Context, spec SpecParams) (*Pagination[Tip], error)
	Update(ctx context.Context, t *Tip) error
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, id string) (bool, error)
}

// TipService defines the business logic interface for community tips.
type TipService interface {
	CreateTip(ctx context.Context, title, content, tagID string) (*Tip, error)
	GetTip(ctx context.Context, id string) (*Tip, error)
	ListTips(ctx context.Context, spec SpecParams, tagID string) (*Pagination[Tip], error)
	UpdateTip(ctx context.Context, t *Tip) error
	DeleteTip(ctx context.Context, id string) error
	RestoreTip(ctx context.Context, id string) error
}
