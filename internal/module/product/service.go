package product

import (
	"context"
	"strings"

	"github.com/ptduy/tourbase/internal/domain"
)

// productService implements domain.ProductService.
type productService struct {
	repo domain.ProductRepository
}

// NewProductService creates a new ProductService with the given repository.
func NewProductService(repo domain.ProductRepository) domain.ProductService {
	return &productService{repo: repo}
}

// CreateProduct validates input and persists a new product.
func (s *productService) CreateProduct(ctx context.Context, p *domain.OcopProduct) (*domain.OcopProduct, error) {
	p.ProductName = strings.TrimSpace(p.ProductName)
	if p.ProductName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "product name is required", nil)
	}
	if p.OcopPoint < 0 || p.OcopPoint > 5 {
		return nil, domain.NewAppError(domain.CodeValidation, "ocop point must be between 0 and 5", nil)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct retrieves an active product by ID. Soft-deleted products
// count as absent.
func (s *productService) GetProduct(ctx context.Context, id string) (*domain.OcopProduct, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, spec domain.SpecParams, filter domain.ProductFilter) (*domain.Pagination[domain.OcopProduct], error) {
	return s.repo.List(ctx, spec, filter)
}

func (s *productService) ListDeletedProducts(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.OcopProduct], error) {
	return s.repo.ListDeleted(ctx, spec)
}

// AddProductImage appends an image URL to the product gallery and
// returns the stored URL.
func (s *productService) AddProductImage(ctx context.Context, id, imageURL string) (string, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", domain.NewAppError(domain.CodeValidation, "image url is required", nil)
	}
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}
	p.ProductImages = append(p.ProductImages, imageURL)
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	return imageURL, nil
}

// AddSellLocation appends a point of sale to the product. Location names
// are unique within one product.
func (s *productService) AddSellLocation(ctx context.Context, id string, loc domain.SellLocation) (*domain.SellLocation, error) {
	loc.LocationName = strings.TrimSpace(loc.LocationName)
	if loc.LocationName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "location name is required", nil)
	}
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if findSellLocation(p.SellLocations, loc.LocationName) >= 0 {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "sell location already exists", nil)
	}
	p.SellLocations = append(p.SellLocations, loc)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpdateSellLocation replaces the sell location with the same name.
func (s *productService) UpdateSellLocation(ctx context.Context, id string, loc domain.SellLocation) error {
	loc.LocationName = strings.TrimSpace(loc.LocationName)
	if loc.LocationName == "" {
		return domain.NewAppError(domain.CodeValidation, "location name is required", nil)
	}
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	i := findSellLocation(p.SellLocations, loc.LocationName)
	if i < 0 {
		return domain.ErrNotFound
	}
	p.SellLocations[i] = loc
	return s.repo.Update(ctx, p)
}

// DeleteSellLocation removes the sell location with the given name.
func (s *productService) DeleteSellLocation(ctx context.Context, id, locationName string) error {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	i := findSellLocation(p.SellLocations, locationName)
	if i < 0 {
		return domain.ErrNotFound
	}
	p.SellLocations = append(p.SellLocations[:i], p.SellLocations[i+1:]...)
	return s.repo.Update(ctx, p)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

func (s *productService) RestoreProduct(ctx context.Context, id string) error {
	modified, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

// findSellLocation returns the index of the location with the given
// name, or -1.
func findSellLocation(locs []domain.SellLocation, name string) int {
	for i, l := range locs {
		if l.LocationName == name {
			return i
		}
	}
	return -1
}
