package queries

import (
	"context"
	"sort"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServicesQueryHandler loads the service catalog and groups it by
// category. Rows are rebuilt into catalog services so the grouping and
// ordering rules live in one place.
type GetServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetServicesQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetServicesQueryHandler(db *gorm.DB) GetServicesQueryHandler {
	return GetServicesQueryHandler{db: db}
}

// Handle executes the query. Categories come back alphabetically, and
// services within each category are sorted by name.
func (h GetServicesQueryHandler) Handle(
	ctx context.Context,
	query GetServicesQuery,
) ([]GetServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	services, err := h.loadServices(ctx)
	if err != nil {
		return nil, err
	}

	grouped := catalog.GroupByCategory(services)

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	result := make([]GetServicesQueryResponse, 0, len(categories))
	for _, category := range categories {
		group := GetServicesQueryResponse{
			Category: category,
			Services: make([]ServiceResponse, 0, len(grouped[category])),
		}
		for _, service := range grouped[category] {
			group.Services = append(group.Services, toServiceResponse(service))
		}
		result = append(result, group)
	}

	return result, nil
}

func (h GetServicesQueryHandler) loadServices(ctx context.Context) ([]*catalog.Service, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			member_price,
			weight_based,
			min_weight,
			max_weight,
			duration_hours
		FROM services
		ORDER BY category ASC, name ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*catalog.Service, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, category string
		var price int64
		var memberPrice *int64
		var weightBased bool
		var minWeight, maxWeight float64
		var durationHours int

		err = rows.Scan(
			&id,
			&name,
			&category,
			&price,
			&memberPrice,
			&weightBased,
			&minWeight,
			&maxWeight,
			&durationHours,
		)
		if err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		priceMoney, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		var memberPriceMoney *kernel.Money
		if memberPrice != nil {
			mp, mpErr := kernel.NewMoney(*memberPrice)
			if mpErr != nil {
				return nil, mpErr
			}
			memberPriceMoney = &mp
		}

		service, svcErr := catalog.RestoreService(
			serviceID, name, category, priceMoney, memberPriceMoney,
			weightBased, minWeight, maxWeight, durationHours,
		)
		if svcErr != nil {
			return nil, svcErr
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func toServiceResponse(service *catalog.Service) ServiceResponse {
	var memberPrice *int64
	if mp := service.MemberPrice(); mp != nil {
		v := mp.Amount()
		memberPrice = &v
	}

	return ServiceResponse{
		ID:            service.ID(),
		Name:          service.Name(),
		Price:         service.Price().Amount(),
		MemberPrice:   memberPrice,
		WeightBased:   service.IsWeightBased(),
		MinWeight:     service.MinWeight(),
		MaxWeight:     service.MaxWeight(),
		DurationHours: service.DurationHours(),
	}
}
