package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleDocument is the stored form of a vehicle in the fleet mirror.
type VehicleDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type           Kind               `bson:"type" json:"type"` // "Car" or "Motorbike"
	Brand          string             `bson:"brand" json:"brand"`
	Model          string             `bson:"model" json:"model"`
	Seats          int                `bson:"seats,omitempty" json:"seats,omitempty"`
	EngineCapacity int                `bson:"engine_capacity,omitempty" json:"engine_capacity,omitempty"` // in cc
	Company        string             `bson:"company" json:"company"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ToDocument converts a vehicle into its stored form.
func ToDocument(v Vehicle, company string) VehicleDocument {
	doc := VehicleDocument{
		Type:    v.Kind(),
		Brand:   v.Base().Brand,
		Model:   v.Base().Model,
		Company: company,
	}
	switch v.Kind() {
	case KindCar:
		doc.Seats = v.Attribute()
	case KindMotorbike:
		doc.EngineCapacity = v.Attribute()
	}
	return doc
}

// Vehicle rebuilds the variant a document was made from. Stored values are
// trusted, as with text decoding.
func (d VehicleDocument) Vehicle() (Vehicle, bool) {
	base := VehicleBase{Brand: d.Brand, Model: d.Model}
	switch d.Type {
	case KindCar:
		return &Car{VehicleBase: base, Seats: d.Seats}, true
	case KindMotorbike:
		return &Motorbike{VehicleBase: base, EngineCapacity: d.EngineCapacity}, true
	default:
		return nil, false
	}
}
