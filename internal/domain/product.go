package domain

import "context"

// SellLocation is a point of sale attached to an OCOP product.
type SellLocation struct {
	LocationName    string  `json:"location_name"`
	LocationAddress string  `json:"location_address,omitempty"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
}

// OcopProduct represents a certified local product and where it is sold.
// Sub-lists are stored as JSON documents alongside the record.
type OcopProduct struct {
	BaseModel
	ProductName        string         `gorm:"size:255;not null" json:"product_name"`
	ProductDescription string         `gorm:"type:text" json:"product_description,omitempty"`
	ProductPrice       string         `gorm:"size:50" json:"product_price,omitempty"`
	ProductImages      []string       `gorm:"serializer:json" json:"product_images,omitempty"`
	OcopTypeID         string         `gorm:"size:36;index" json:"ocop_type_id"`
	CompanyID          string         `gorm:"size:36;index" json:"company_id"`
	OcopPoint          int            `json:"ocop_point"`
	OcopYearRelease    int            `json:"ocop_year_release,omitempty"`
	SellLocations      []SellLocation `gorm:"serializer:json" json:"sell_locations,omitempty"`
}

// ProductFilter carries the entity-specific predicates for product listings.
type ProductFilter struct {
	OcopTypeID string
	CompanyID  string
}

// ProductRepository defines the data access interface for OCOP products.
type ProductRepository interface {
	Create(ctx context.Context, p *OcopProduct) error
	GetByID(ctx context.Context, id string) (*OcopProduct, error)
	List(ctx context.Context, spec SpecParams, filter ProductFilter) (*Pagination[OcopProduct], error)
	ListDeleted(ctx context.Context, spec SpecParams) (*Pagination[OcopProduct], error)
	Update(ctx context.Context, p *OcopProduct) error
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, id string) (bool, error)
}

// ProductService defines the business logic interface for OCOP products.
type ProductService interface {
	CreateProduct(ctx context.Context, p *OcopProduct) (*OcopProduct, error)
	GetProduct(ctx context.Context, id string) (*OcopProduct, error)
	ListProducts(ctx context.Context, spec SpecParams, filter ProductFilter) (*Pagination[OcopProduct], error)
	ListDeletedProducts(ctx context.Context, spec SpecParams) (*Pagination[OcopProduct], error)
	AddProductImage(ctx context.Context, id, imageURL string) (string, error)
	AddSellLocation(ctx context.Context, id string, loc SellLocation) (*SellLocation, error)
	UpdateSellLocation(ctx context.Context, id string, loc SellLocation) error
	DeleteSellLocation(ctx context.Context, id, locationName string) error
	DeleteProduct(ctx context.Context, id string) error
	RestoreProduct(ctx context.Context, id string) error
}
