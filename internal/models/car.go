package models

import (
	"fmt"
	"io"
)

// Car is a vehicle with a seat count.
type Car struct {
	VehicleBase `bson:",inline"`
	Seats       int `bson:"seats" json:"seats"`
}

// NewCar builds a car, rejecting a non-positive seat count.
func NewCar(brand, model string, seats int) (*Car, error) {
	if seats <= 0 {
		return nil, &ValidationError{Field: "number of seats", Value: seats}
	}
	return &Car{
		VehicleBase: VehicleBase{Brand: brand, Model: model},
		Seats:       seats,
	}, nil
}

func (c *Car) Kind() Kind { return KindCar }

func (c *Car) Attribute() int { return c.Seats }

func (c *Car) Info(company string) string {
	return fmt.Sprintf("%s, Type: Car, Seats: %d, Company: %s", c.Describe(), c.Seats, company)
}

func (c *Car) Serialize() string {
	return serialize(KindCar, &c.VehicleBase, c.Seats)
}

// Decode reads the fields that follow a "Car" tag. Seats are not range checked.
func (c *Car) Decode(r io.Reader) error {
	return decode(r, &c.VehicleBase, &c.Seats)
}

func (c *Car) Record() string {
	return fmt.Sprintf("Car - Brand: %s, Model: %s, Seats: %d", c.Brand, c.Model, c.Seats)
}
