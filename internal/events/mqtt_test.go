package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/autoworld/internal/models"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, complete bool) *fakeToken {
	tok := &fakeToken{done: make(chan struct{}), err: err}
	if complete {
		close(tok.done)
	}
	return tok
}

func (t *fakeToken) Wait() bool { <-t.done; return true }
func (t *fakeToken) WaitTimeout(d time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} { return t.done }
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	topics       []string
	payloads     [][]byte
	token        *fakeToken
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, payload.([]byte))
	return c.token
}

func (c *fakeClient) Disconnect(quiesce uint) { c.disconnected = true }

func testEvent(t *testing.T) Event {
	t.Helper()
	car, err := models.NewCar("Toyota", "Camry", 5)
	require.NoError(t, err)
	return NewEvent(TypeVehicleCreated, car, "AutoWorld Inc.")
}

func TestNewEvent(t *testing.T) {
	bike, _ := models.NewMotorbike("Yamaha", "MT-07", 689)
	ev := NewEvent(TypeModelUpdated, bike, "AutoWorld Inc.")

	assert.Equal(t, TypeModelUpdated, ev.Type)
	assert.Equal(t, models.KindMotorbike, ev.Kind)
	assert.Equal(t, "Yamaha", ev.Brand)
	assert.Equal(t, 689, ev.Attribute)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestMQTTPublisher_Publish(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, true)}
	p := newMQTTPublisher(client, "autoworld/vehicles/")

	err := p.Publish(context.Background(), testEvent(t))
	require.NoError(t, err)

	require.Len(t, client.topics, 1)
	assert.Equal(t, "autoworld/vehicles/vehicle.created", client.topics[0])

	var got Event
	require.NoError(t, json.Unmarshal(client.payloads[0], &got))
	assert.Equal(t, "Camry", got.Model)
	assert.Equal(t, 5, got.Attribute)
}

func TestMQTTPublisher_PublishError(t *testing.T) {
	client := &fakeClient{token: newFakeToken(errors.New("not connected"), true)}
	p := newMQTTPublisher(client, "autoworld")

	err := p.Publish(context.Background(), testEvent(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestMQTTPublisher_Timeout(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, false)}
	p := newMQTTPublisher(client, "autoworld")
	p.timeout = 10 * time.Millisecond

	err := p.Publish(context.Background(), testEvent(t))
	assert.True(t, errors.Is(err, ErrPublishTimeout))
}

func TestMQTTPublisher_ContextCancelled(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, false)}
	p := newMQTTPublisher(client, "autoworld")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Publish(ctx, testEvent(t))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMQTTPublisher_Close(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, true)}
	p := newMQTTPublisher(client, "autoworld")
	p.Close()
	assert.True(t, client.disconnected)
}

func TestNewMQTTPublisher_Unreachable(t *testing.T) {
	p, err := NewMQTTPublisher("tcp://127.0.0.1:1", "autoworld-test", "autoworld")
	assert.Error(t, err)
	assert.Nil(t, p)
}
