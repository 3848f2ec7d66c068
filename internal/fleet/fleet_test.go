package fleet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/autoworld/internal/models"
)

func TestNew_DefaultCompany(t *testing.T) {
	assert.Equal(t, DefaultCompany, New("").Company())
	assert.Equal(t, "Acme", New("Acme").Company())
}

func TestFleet_CountsSuccessfulConstructions(t *testing.T) {
	f := New("")

	car, err := f.NewCar("Toyota", "Camry", 5)
	require.NoError(t, err)
	bike, err := f.NewMotorbike("Yamaha", "MT-07", 689)
	require.NoError(t, err)

	_, err = f.NewCar("Test", "Model", -2)
	assert.True(t, errors.Is(err, models.ErrInvalidArgument))
	_, err = f.NewMotorbike("Test", "Model", -100)
	assert.True(t, errors.Is(err, models.ErrInvalidArgument))

	assert.Equal(t, 2, f.Created())
	assert.Equal(t, 0, f.Len(), "constructors must not add to the fleet")

	f.Add(car, bike)
	assert.Equal(t, 2, f.Len())
}

func TestFleet_VehiclesPreservesOrder(t *testing.T) {
	f := New("")
	car, _ := f.NewCar("Honda", "Civic", 4)
	bike, _ := f.NewMotorbike("Kawasaki", "Ninja", 649)
	f.Add(bike, car)

	got := f.Vehicles()
	require.Len(t, got, 2)
	assert.Same(t, bike, got[0])
	assert.Same(t, car, got[1])

	got[0] = nil
	assert.NotNil(t, f.Vehicles()[0], "Vehicles must return a copy")
}

func TestFleet_ClearKeepsCount(t *testing.T) {
	f := New("")
	for i := 0; i < 3; i++ {
		car, err := f.NewCar("Brand", "Model", i+1)
		require.NoError(t, err)
		f.Add(car)
	}

	f.Clear()

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Vehicles())
	assert.Equal(t, 3, f.Created())
}
