package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ukydev/autoworld/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VehiclesCollection is the collection the fleet is mirrored into.
const VehiclesCollection = "vehicles"

var ErrNilCollection = errors.New("mongo collection is nil")

// ConnectMongo connects to MongoDB at uri and verifies the connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo.Connect error: empty URI")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoCollection wraps a MongoDB collection for vehicle documents.
type MongoCollection struct {
	Collection *mongo.Collection
}

// NewMongoCollection returns the vehicles collection of database dbName.
func NewMongoCollection(client *mongo.Client, dbName string) *MongoCollection {
	return &MongoCollection{Collection: client.Database(dbName).Collection(VehiclesCollection)}
}

// mongoVehicleCursor wraps a MongoDB cursor for vehicle queries.
type mongoVehicleCursor struct {
	cursor *mongo.Cursor
}

// All retrieves all results from the cursor.
func (m *mongoVehicleCursor) All(ctx context.Context, out interface{}) error {
	return m.cursor.All(ctx, out)
}

// Close closes the cursor.
func (m *mongoVehicleCursor) Close(ctx context.Context) error {
	return m.cursor.Close(ctx)
}

// InsertVehicle inserts a vehicle document, stamping its creation time.
func (c *MongoCollection) InsertVehicle(ctx context.Context, vehicle models.VehicleDocument) error {
	if c.Collection == nil {
		return ErrNilCollection
	}
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = time.Now()
	}
	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// FindVehicles queries vehicle documents from the collection.
func (c *MongoCollection) FindVehicles(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error) {
	if c.Collection == nil {
		return nil, ErrNilCollection
	}
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoVehicleCursor{cursor: cursor}, nil
}

// DeleteAll deletes all vehicle documents from the collection.
func (c *MongoCollection) DeleteAll(ctx context.Context) error {
	if c.Collection == nil {
		return ErrNilCollection
	}
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
