package domain

import "context"

// Notification is an announcement stored for later delivery.
// Delivery itself (push, email, SMS) happens outside this module.
type Notification struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content,omitempty"`
	IconCode string `gorm:"size:50" json:"icon_code,omitempty"`
}

// NotificationRepository defines the data access interface for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	List(ctx context.Context, spec SpecParams) (*Pagination[Notification], error)
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, id string) (bool, error)
}

// NotificationService defines the business logic interface for notifications.
type NotificationService interface {
	CreateNotification(ctx context.Context, title, content, iconCode string) (*Notification, error)
	GetNotification(ctx context.Context, id string) (*Notification, error)
	ListNotifications(ctx context.Context, spec SpecParams) (*Pagination[Notification], error)
	DeleteNotification(ctx context.Context, id string) error
	RestoreNotification(ctx context.Context, id string) error
}
