package models

import (
	"fmt"
	"io"
)

// Motorbike is a vehicle with an engine capacity in cc.
type Motorbike struct {
	VehicleBase    `bson:",inline"`
	EngineCapacity int `bson:"engine_capacity" json:"engine_capacity"`
}

// NewMotorbike builds a motorbike, rejecting a non-positive engine capacity.
func NewMotorbike(brand, model string, engineCapacity int) (*Motorbike, error) {
	if engineCapacity <= 0 {
		return nil, &ValidationError{Field: "engine capacity", Value: engineCapacity}
	}
	return &Motorbike{
		VehicleBase:    VehicleBase{Brand: brand, Model: model},
		EngineCapacity: engineCapacity,
	}, nil
}

func (m *Motorbike) Kind() Kind { return KindMotorbike }

func (m *Motorbike) Attribute() int { return m.EngineCapacity }

func (m *Motorbike) Info(company string) string {
	return fmt.Sprintf("%s, Type: Motorbike, Engine Capacity: %dcc, Company: %s", m.Describe(), m.EngineCapacity, company)
}

func (m *Motorbike) Serialize() string {
	return serialize(KindMotorbike, &m.VehicleBase, m.EngineCapacity)
}

func (m *Motorbike) Decode(r io.Reader) error {
	return decode(r, &m.VehicleBase, &m.EngineCapacity)
}

func (m *Motorbike) Record() string {
	return fmt.Sprintf("Motorbike - Brand: %s, Model: %s, Engine Capacity: %dcc", m.Brand, m.Model, m.EngineCapacity)
}
