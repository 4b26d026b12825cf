package destination

import (
	"context"
	"strings"

	"github.com/ptduy/tourbase/internal/domain"
)

// destinationService implements domain.DestinationService.
type destinationService struct {
	repo domain.DestinationRepository
}

// NewDestinationService creates a new DestinationService with the given repository.
func NewDestinationService(repo domain.DestinationRepository) domain.DestinationService {
	return &destinationService{repo: repo}
}

// CreateDestination validates input and persists a new destination.
func (s *destinationService) CreateDestination(ctx context.Context, d *domain.TouristDestination) (*domain.TouristDestination, error) {
	d.Name = strings.TrimSpace(d.Name)
	if err := validateDestination(d); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDestination retrieves an active destination by ID. Soft-deleted
// destinations count as absent.
func (s *destinationService) GetDestination(ctx context.Context, id string) (*domain.TouristDestination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.Status {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (s *destinationService) ListDestinations(ctx context.Context, spec domain.SpecParams, filter domain.DestinationFilter) (*domain.Pagination[domain.TouristDestination], error) {
	return s.repo.List(ctx, spec, filter)
}

func (s *destinationService) ListDeletedDestinations(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.TouristDestination], error) {
	return s.repo.ListDeleted(ctx, spec)
}

// UpdateDestination validates and saves changes to an existing
// destination. Only the content fields are taken from the argument;
// lifecycle fields (status, creation stamp) stay as stored.
func (s *destinationService) UpdateDestination(ctx context.Context, d *domain.TouristDestination) error {
	d.Name = strings.TrimSpace(d.Name)
	if err := validateDestination(d); err != nil {
		return err
	}
	current, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if !current.Status {
		return domain.ErrNotFound
	}

	current.Name = d.Name
	current.Description = d.Description
	current.Address = d.Address
	current.Latitude = d.Latitude
	current.Longitude = d.Longitude
	current.DestinationTypeID = d.DestinationTypeID
	current.AvgRating = d.AvgRating
	current.Images = d.Images
	return s.repo.Update(ctx, current)
}

// AddDestinationImage appends an image URL to a destination's gallery.
func (s *destinationService) AddDestinationImage(ctx context.Context, id, imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return domain.NewAppError(domain.CodeValidation, "image url is required", nil)
	}
	modified, err := s.repo.AddImage(ctx, id, imageURL)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

func (s *destinationService) RestoreDestination(ctx context.Context, id string) error {
	modified, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

// validateDestination checks required fields and coordinate ranges.
func validateDestination(d *domain.TouristDestination) error {
	if d.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if d.Latitude < -90 || d.Latitude > 90 {
		return domain.NewAppError(domain.CodeValidation, "latitude must be between -90 and 90", nil)
	}
	if d.Longitude < -180 || d.Longitude > 180 {
		return domain.NewAppError(domain.CodeValidation, "longitude must be between -180 and 180", nil)
	}
	return nil
}
