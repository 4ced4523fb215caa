package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceRepository creates a new GORM catalog repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog service to the database.
func (r *GormServiceRepository) Add(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	dto := fromDomain(service)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(service.ID(), service)
	return nil
}

// Update saves an existing catalog service.
func (r *GormServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	dto := fromDomain(service)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "category", "price", "member_price", "weight_based",
			"min_weight", "max_weight", "duration_hours").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(service.ID(), service)
	return nil
}

// Get retrieves a catalog service by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog ordered by category, then name.
func (r *GormServiceRepository) GetAll(ctx context.Context) ([]*catalog.Service, error) {
	var dtos []ServiceDTO
	err := r.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	services := make([]*catalog.Service, 0, len(dtos))
	for _, dto := range dtos {
		s, sErr := toDomain(dto)
		if sErr != nil {
			return nil, sErr
		}
		services = append(services, s)
	}

	return services, nil
}
