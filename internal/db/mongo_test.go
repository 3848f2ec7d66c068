package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/autoworld/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestConnectMongo_EmptyURI(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestConnectMongo_BadURI(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "mongodb://bad:uri")
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestMongoCollection_NilCollection(t *testing.T) {
	coll := &MongoCollection{Collection: nil}
	ctx := context.Background()

	err := coll.InsertVehicle(ctx, models.VehicleDocument{})
	assert.True(t, errors.Is(err, ErrNilCollection))

	_, err = coll.FindVehicles(ctx, nil)
	assert.True(t, errors.Is(err, ErrNilCollection))

	assert.True(t, errors.Is(coll.DeleteAll(ctx), ErrNilCollection))
}

// Integration test (requires running MongoDB)
func TestMongoCollection_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	client, err := ConnectMongo(ctx, uri)
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	defer client.Disconnect(context.Background())

	coll := NewMongoCollection(client, "test_autoworld")
	require.NoError(t, coll.DeleteAll(ctx))

	car, _ := models.NewCar("Toyota", "Camry", 5)
	bike, _ := models.NewMotorbike("Yamaha", "MT-07", 689)
	require.NoError(t, coll.InsertVehicle(ctx, models.ToDocument(car, "AutoWorld Inc.")))
	require.NoError(t, coll.InsertVehicle(ctx, models.ToDocument(bike, "AutoWorld Inc.")))

	cursor, err := coll.FindVehicles(ctx, bson.M{"type": models.KindMotorbike}, options.Find())
	require.NoError(t, err)
	defer cursor.Close(ctx)

	var docs []models.VehicleDocument
	require.NoError(t, cursor.All(ctx, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "MT-07", docs[0].Model)
	assert.Equal(t, 689, docs[0].EngineCapacity)
	assert.NotZero(t, docs[0].CreatedAt)

	require.NoError(t, coll.DeleteAll(ctx))
}
