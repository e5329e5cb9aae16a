package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
	"github.com/m04kA/SMC-ServiceCenter/pkg/ptr"
)

func TestSearch_SwiftIsUnique(t *testing.T) {
	p := NewProvider()

	results := p.Search("swift", ptr.Ptr(domain.VehicleCar))

	require.Len(t, results, 1)
	assert.Equal(t, domain.VehicleCar, results[0].Type)
	assert.Equal(t, "Maruti Suzuki", results[0].Brand)
	assert.Equal(t, "Hatchback", results[0].Category)
	assert.Equal(t, "Swift", results[0].Model)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	p := NewProvider()

	lower := p.Search("swift", ptr.Ptr(domain.VehicleCar))
	upper := p.Search("SWIFT", ptr.Ptr(domain.VehicleCar))
	mixed := p.Search("SwIfT", ptr.Ptr(domain.VehicleCar))

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestSearch_NoMatch(t *testing.T) {
	p := NewProvider()

	assert.Empty(t, p.Search("xyz123", nil))
	assert.Empty(t, p.Search("xyz123", ptr.Ptr(domain.VehicleCar)))
	assert.Empty(t, p.Search("xyz123", ptr.Ptr(domain.VehicleMotorcycle)))
}

func TestSearch_EmptyQuery(t *testing.T) {
	p := NewProvider()

	results := p.Search("", nil)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_BothTypesWhenTypeOmitted(t *testing.T) {
	p := NewProvider()

	// Подстрока "ya" встречается у обоих типов: Toyota (авто) и Yamaha (мото)
	results := p.Search("ya", nil)

	var sawCar, sawMotorcycle bool
	for _, r := range results {
		switch r.Type {
		case domain.VehicleCar:
			sawCar = true
		case domain.VehicleMotorcycle:
			sawMotorcycle = true
		}
	}
	assert.True(t, sawCar)
	assert.True(t, sawMotorcycle)
}

func TestSearch_MatchesCategory(t *testing.T) {
	p := NewProvider()

	results := p.Search("hatchback", ptr.Ptr(domain.VehicleCar))

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "Hatchback", r.Category)
	}
}

func TestHasModel(t *testing.T) {
	p := NewProvider()

	assert.True(t, p.HasModel(domain.VehicleCar, "Maruti Suzuki", "Hatchback", "Swift"))
	assert.False(t, p.HasModel(domain.VehicleMotorcycle, "Maruti Suzuki", "Hatchback", "Swift"))
	assert.False(t, p.HasModel(domain.VehicleCar, "Maruti Suzuki", "Sedan", "Swift"))
	assert.False(t, p.HasModel(domain.VehicleCar, "Honda", "Hatchback", "Swift"))
}

func TestVehicleData_Shape(t *testing.T) {
	p := NewProvider()

	data, ok := p.VehicleData(domain.VehicleCar)
	require.True(t, ok)
	assert.NotEmpty(t, data.Brands)
	assert.NotEmpty(t, data.Categories)

	for _, category := range data.Categories {
		assert.NotEmpty(t, data.Models[category], "category %q has no models", category)
	}
}

func TestRepairTypes_NotEmpty(t *testing.T) {
	p := NewProvider()

	for _, vType := range p.VehicleTypes() {
		taxonomy := p.RepairTypes(vType)
		require.NotEmpty(t, taxonomy, "no repair taxonomy for %s", vType)
		for category, items := range taxonomy {
			assert.NotEmpty(t, items, "repair category %q has no items", category)
		}
	}
}

func TestServiceItems(t *testing.T) {
	p := NewProvider()

	assert.NotEmpty(t, p.ServiceItems(domain.VehicleCar, domain.ServiceRegularMaintenance))
	assert.NotEmpty(t, p.ServiceItems(domain.VehicleCar, domain.ServiceWashing))
	assert.NotEmpty(t, p.ServiceItems(domain.VehicleMotorcycle, domain.ServiceInspection))

	// Для Repair работы выбираются из таксономии, для Custom список свободный
	assert.Nil(t, p.ServiceItems(domain.VehicleCar, domain.ServiceRepair))
	assert.Nil(t, p.ServiceItems(domain.VehicleCar, domain.ServiceCustom))
}
