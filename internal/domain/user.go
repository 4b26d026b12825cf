package domain

import "context"

// UserProfile holds the display profile embedded in a user record.
type UserProfile struct {
	FullName string `gorm:"size:100" json:"full_name,omitempty"`
	Gender   string `gorm:"size:10" json:"gender,omitempty"`
	Address  string `gorm:"size:255" json:"address,omitempty"`
	Avatar   string `gorm:"size:500" json:"avatar,omitempty"`
}

// User represents an account in the system. Admin accounts are created
// without a username; end-user accounts without an email are not allowed.
type User struct {
	BaseModel
	Username    string      `gorm:"size:100;index" json:"username,omitempty"`
	Email       string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string      `gorm:"size:255" json:"-"`
	PhoneNumber string      `gorm:"size:20" json:"phone_number,omitempty"`
	RoleID      string      `gorm:"size:36;index" json:"role_id"`
	IsForbidden bool        `json:"is_forbidden"`
	Profile     UserProfile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

// UserRepository defines the data access interface for users.
// Delete and Restore report whether a record was actually modified;
// zero modifications does not distinguish "absent" from "already in the
// target state".
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, spec SpecParams) (*Pagination[User], error)
	ListDeleted(ctx context.Context, spec SpecParams) (*Pagination[User], error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, id string) (bool, error)
}

// UserService defines the business logic interface for users.
type UserService interface {
	CreateAdmin(ctx context.Context, email, password, roleID string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, spec SpecParams) (*Pagination[User], error)
	ListDeletedUsers(ctx context.Context, spec SpecParams) (*Pagination[User], error)
	DeleteUser(ctx context.Context, id string) error
	RestoreUser(ctx context.Context, id string) error
}
