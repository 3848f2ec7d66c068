package db

import (
	"context"

	"github.com/ukydev/autoworld/internal/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VehicleCollection defines the interface for vehicle mirror operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.VehicleDocument) error
	FindVehicles(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error)
	DeleteAll(ctx context.Context) error
}

// VehicleCursor defines the interface for vehicle cursor operations.
type VehicleCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
