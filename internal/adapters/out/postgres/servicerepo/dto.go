// Package servicerepo provides data transfer objects and mapping functions
// for the service catalog.
package servicerepo

import (
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting catalog services.
type ServiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Category      string    `gorm:"index;not null"`
	Price         int64
	MemberPrice   *int64
	WeightBased   bool
	MinWeight     float64
	MaxWeight     float64
	DurationHours int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for catalog services.
func (ServiceDTO) TableName() string {
	return "services"
}

// fromDomain converts a catalog service to its database representation.
func fromDomain(service *catalog.Service) ServiceDTO {
	var memberPrice *int64
	if mp := service.MemberPrice(); mp != nil {
		v := mp.Amount()
		memberPrice = &v
	}

	return ServiceDTO{
		ID:            service.ID().Bytes(),
		Name:          service.Name(),
		Category:      service.Category(),
		Price:         service.Price().Amount(),
		MemberPrice:   memberPrice,
		WeightBased:   service.IsWeightBased(),
		MinWeight:     service.MinWeight(),
		MaxWeight:     service.MaxWeight(),
		DurationHours: service.DurationHours(),
	}
}

// toDomain converts a database DTO to a catalog service.
func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var memberPrice *kernel.Money
	if dto.MemberPrice != nil {
		mp, mpErr := kernel.NewMoney(*dto.MemberPrice)
		if mpErr != nil {
			return nil, mpErr
		}
		memberPrice = &mp
	}

	return catalog.RestoreService(
		id,
		dto.Name,
		dto.Category,
		price,
		memberPrice,
		dto.WeightBased,
		dto.MinWeight,
		dto.MaxWeight,
		dto.DurationHours,
	)
}
