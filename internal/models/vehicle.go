package models

import (
	"errors"
	"fmt"
	"io"
)

// Kind is the literal tag that identifies a vehicle variant on disk.
type Kind string

const (
	KindCar       Kind = "Car"
	KindMotorbike Kind = "Motorbike"
)

// ErrInvalidArgument is wrapped by every construction failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a variant attribute that failed its > 0 check.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %d", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// Vehicle is implemented by *Car and *Motorbike only.
type Vehicle interface {
	Kind() Kind
	Base() *VehicleBase
	Attribute() int
	UpdateModel(newModel string)
	Info(company string) string
	Serialize() string
	Decode(r io.Reader) error
	Record() string
}

// VehicleBase holds the fields shared by every variant.
type VehicleBase struct {
	Brand string `bson:"brand" json:"brand"`
	Model string `bson:"model" json:"model"`
}

// Base returns the shared fields.
func (b *VehicleBase) Base() *VehicleBase {
	return b
}

// UpdateModel replaces the model unconditionally.
func (b *VehicleBase) UpdateModel(newModel string) {
	b.Model = newModel
}

// Describe renders the brand/model prefix every variant's Info starts with.
func (b *VehicleBase) Describe() string {
	return fmt.Sprintf("Brand: %s, Model: %s", b.Brand, b.Model)
}

// Blank returns a zero-value variant for kind, ready to Decode into.
// It bypasses the validating constructors.
func Blank(kind Kind) (Vehicle, bool) {
	switch kind {
	case KindCar:
		return &Car{}, true
	case KindMotorbike:
		return &Motorbike{}, true
	default:
		return nil, false
	}
}

func serialize(kind Kind, b *VehicleBase, extra int) string {
	return fmt.Sprintf("%s %s %s %d", kind, b.Brand, b.Model, extra)
}

// decode reads "<brand> <model> <extra>" following an already consumed tag.
func decode(r io.Reader, b *VehicleBase, extra *int) error {
	var brand, model string
	var n int
	if _, err := fmt.Fscan(r, &brand, &model, &n); err != nil {
		return err
	}
	b.Brand = brand
	b.Model = model
	*extra = n
	return nil
}
