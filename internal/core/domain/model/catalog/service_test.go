package catalog_test

import (
	"testing"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func moneyPtr(t *testing.T, amount int64) *kernel.Money {
	t.Helper()
	m := money(t, amount)
	return &m
}

func TestNewService(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create weight-based service with explicit bounds", func(t *testing.T) {
		s, err := catalog.NewService(validID, "Cuci Kering", "kiloan",
			money(t, 7000), moneyPtr(t, 6000), true, 0.5, 20, 24)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Cuci Kering", s.Name())
		assert.Equal(t, "kiloan", s.Category())
		assert.True(t, s.IsWeightBased())
		assert.InDelta(t, 0.5, s.MinWeight(), 1e-9)
		assert.InDelta(t, 20.0, s.MaxWeight(), 1e-9)
		assert.Equal(t, 24, s.DurationHours())
	})

	t.Run("should apply default weight bounds", func(t *testing.T) {
		s, err := catalog.NewService(validID, "Cuci Setrika", "kiloan",
			money(t, 8000), nil, true, 0, 0, 48)

		require.NoError(t, err)
		assert.InDelta(t, catalog.DefaultMinWeight, s.MinWeight(), 1e-9)
		assert.InDelta(t, catalog.DefaultMaxWeight, s.MaxWeight(), 1e-9)
	})

	t.Run("should create per-item service ignoring weight bounds", func(t *testing.T) {
		s, err := catalog.NewService(validID, "Bed Cover", "satuan",
			money(t, 25000), nil, false, 0, 0, 72)

		require.NoError(t, err)
		assert.False(t, s.IsWeightBased())
		assert.Zero(t, s.MinWeight())
		assert.Zero(t, s.MaxWeight())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := catalog.NewService(validID, "", "kiloan", money(t, 7000), nil, true, 0, 0, 24)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service name")
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		_, err := catalog.NewService(validID, "Cuci", "kiloan", kernel.Money{}, nil, true, 0, 0, 24)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service price")
	})

	t.Run("should fail when member price exceeds standard price", func(t *testing.T) {
		_, err := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 6000), moneyPtr(t, 7000), true, 0, 0, 24)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "member price is invalid")
	})

	t.Run("should fail with inverted weight bounds", func(t *testing.T) {
		_, err := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 7000), nil, true, 10, 5, 24)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var s *catalog.Service

		require.Equal(t, catalog.ErrServiceIsNotConstructed, s.Validate())
	})
}

func TestService_EffectivePrice(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("member pays member price when defined", func(t *testing.T) {
		s, _ := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 7000), moneyPtr(t, 6000), true, 0, 0, 24)

		assert.Equal(t, int64(6000), s.EffectivePrice(true).Amount())
	})

	t.Run("regular pays standard price even when member price exists", func(t *testing.T) {
		s, _ := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 7000), moneyPtr(t, 6000), true, 0, 0, 24)

		assert.Equal(t, int64(7000), s.EffectivePrice(false).Amount())
	})

	t.Run("member pays standard price when no member price defined", func(t *testing.T) {
		s, _ := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 7000), nil, true, 0, 0, 24)

		assert.Equal(t, int64(7000), s.EffectivePrice(true).Amount())
	})
}

func TestService_ClampWeight(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("clamps into service bounds", func(t *testing.T) {
		s, _ := catalog.NewService(validID, "Cuci", "kiloan",
			money(t, 7000), nil, true, 0, 0, 24)

		assert.InDelta(t, catalog.DefaultMinWeight, s.ClampWeight(0.01), 1e-9)
		assert.InDelta(t, catalog.DefaultMaxWeight, s.ClampWeight(100), 1e-9)
		assert.InDelta(t, 2.5, s.ClampWeight(2.5), 1e-9)
	})

	t.Run("leaves non-weight-based services alone", func(t *testing.T) {
		s, _ := catalog.NewService(validID, "Bed Cover", "satuan",
			money(t, 25000), nil, false, 0, 0, 72)

		assert.InDelta(t, 123.0, s.ClampWeight(123), 1e-9)
	})
}

func TestGroupByCategory(t *testing.T) {
	newService := func(name, category string) *catalog.Service {
		s, err := catalog.NewService(kernel.NewUUID(), name, category,
			money(t, 7000), nil, false, 0, 0, 24)
		require.NoError(t, err)
		return s
	}

	kiloanA := newService("Cuci Kering", "kiloan")
	kiloanB := newService("Cuci Setrika", "kiloan")
	satuan := newService("Bed Cover", "satuan")

	grouped := catalog.GroupByCategory([]*catalog.Service{kiloanA, satuan, kiloanB})

	require.Len(t, grouped, 2)
	require.Len(t, grouped["kiloan"], 2)
	assert.Equal(t, "Cuci Kering", grouped["kiloan"][0].Name(), "input order preserved within category")
	assert.Equal(t, "Cuci Setrika", grouped["kiloan"][1].Name())
	require.Len(t, grouped["satuan"], 1)
}
