package fleet

import (
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/models"
)

// DefaultCompany is the organization name printed with every vehicle.
const DefaultCompany = "AutoWorld Inc."

// Fleet owns the ordered vehicle collection and the count of vehicles
// constructed through it.
type Fleet struct {
	company  string
	vehicles []models.Vehicle
	created  int
}

// New creates an empty fleet for company.
func New(company string) *Fleet {
	if company == "" {
		company = DefaultCompany
	}
	return &Fleet{company: company}
}

// Company returns the organization name.
func (f *Fleet) Company() string {
	return f.company
}

// NewCar constructs a car and counts it. The car is not added to the fleet.
func (f *Fleet) NewCar(brand, model string, seats int) (*models.Car, error) {
	car, err := models.NewCar(brand, model, seats)
	if err != nil {
		return nil, err
	}
	f.created++
	return car, nil
}

// NewMotorbike constructs a motorbike and counts it. The motorbike is not added to the fleet.
func (f *Fleet) NewMotorbike(brand, model string, engineCapacity int) (*models.Motorbike, error) {
	bike, err := models.NewMotorbike(brand, model, engineCapacity)
	if err != nil {
		return nil, err
	}
	f.created++
	return bike, nil
}

// Add appends vehicles in order.
func (f *Fleet) Add(vehicles ...models.Vehicle) {
	f.vehicles = append(f.vehicles, vehicles...)
}

// Vehicles returns the vehicles in insertion order.
func (f *Fleet) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, len(f.vehicles))
	copy(out, f.vehicles)
	return out
}

func (f *Fleet) Len() int {
	return len(f.vehicles)
}

// Created is the number of successful constructions. Clear does not reset it.
func (f *Fleet) Created() int {
	return f.created
}

// Clear releases every owned vehicle.
func (f *Fleet) Clear() {
	log.WithFields(log.Fields{
		"released": len(f.vehicles),
		"created":  f.created,
	}).Debug("Clearing fleet")
	for i := range f.vehicles {
		f.vehicles[i] = nil
	}
	f.vehicles = f.vehicles[:0]
}
