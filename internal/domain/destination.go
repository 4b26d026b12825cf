package domain

import "context"

// TouristDestination represents a visitable place on the map.
type TouristDestination struct {
	BaseModel
	Name              string   `gorm:"size:255;not null" json:"name"`
	Description       string   `gorm:"type:text" json:"description,omitempty"`
	Address           string   `gorm:"size:255" json:"address,omitempty"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	DestinationTypeID string   `gorm:"size:36;index" json:"destination_type_id"`
	AvgRating         float64  `json:"avg_rating"`
	Images            []string `gorm:"serializer:json" json:"images,omitempty"`
}

// DestinationFilter carries the entity-specific predicates a caller may
// add to a destination listing.
type DestinationFilter struct {
	TypeID string
}

// DestinationRepository defines the data access interface for tourist destinations.
type DestinationRepository interface {
	Create(ctx context.Context, d *TouristDestination) error
	GetByID(ctx context.Context, id string) (*TouristDestination, error)
	List(ctx context.Context, spec SpecParams, filter DestinationFilter) (*Pagination[TouristDestination], error)
	ListDeleted(ctx context.Context, spec SpecParams) (*Pagination[TouristDestination], error)
	Update(ctx context.Context, d *TouristDestination) error
	AddImage(ctx context.Context, id, imageURL string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, id string) (bool, error)
}

// DestinationService defines the business logic interface for tourist destinations.
type DestinationService interface {
	CreateDestination(ctx context.Context, d *TouristDestination) (*TouristDestination, error)
	GetDestination(ctx context.Context, id string) (*TouristDestination, error)
	ListDestinations(ctx context.Context, spec SpecParams, filter DestinationFilter) (*Pagination[TouristDestination], error)
	ListDeletedDestinations(ctx context.Context, spec SpecParams) (*Pagination[TouristDestination], error)
	UpdateDestination(ctx context.Context, d *TouristDestination) error
	AddDestinationImage(ctx context.Context, id, imageURL string) error
	DeleteDestination(ctx context.Context, id string) error
	RestoreDestination(ctx context.Context, id string) error
}
