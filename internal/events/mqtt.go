package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/models"
)

// Event types published by the showroom.
const (
	TypeVehicleCreated = "vehicle.created"
	TypeModelUpdated   = "vehicle.model_updated"
)

var ErrPublishTimeout = errors.New("mqtt publish timed out")

// Event describes a change to a fleet vehicle.
type Event struct {
	Type          string      `json:"type"`
	Kind          models.Kind `json:"kind"`
	Brand         string      `json:"brand"`
	Model         string      `json:"model"`
	PreviousModel string      `json:"previous_model,omitempty"`
	Attribute     int         `json:"attribute"` // seats or engine capacity in cc
	Company       string      `json:"company"`
	Timestamp     time.Time   `json:"timestamp"`
}

// NewEvent snapshots v into an event of type eventType.
func NewEvent(eventType string, v models.Vehicle, company string) Event {
	return Event{
		Type:      eventType,
		Kind:      v.Kind(),
		Brand:     v.Base().Brand,
		Model:     v.Base().Model,
		Attribute: v.Attribute(),
		Company:   company,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers vehicle events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// publishClient is the subset of mqtt.Client the publisher needs.
type publishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes events as JSON to <prefix>/<event type>.
type MQTTPublisher struct {
	client  publishClient
	prefix  string
	timeout time.Duration
}

// NewMQTTPublisher connects to broker and returns a publisher for topic prefix.
func NewMQTTPublisher(broker, clientID, prefix string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(false)
	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}
	log.WithFields(log.Fields{"broker": broker, "client_id": clientID}).Info("Connected to MQTT broker")
	return newMQTTPublisher(client, prefix), nil
}

func newMQTTPublisher(client publishClient, prefix string) *MQTTPublisher {
	return &MQTTPublisher{
		client:  client,
		prefix:  strings.TrimSuffix(prefix, "/"),
		timeout: 5 * time.Second,
	}
}

// Topic returns the topic an event type is published to.
func (p *MQTTPublisher) Topic(eventType string) string {
	return p.prefix + "/" + eventType
}

// Publish sends event with QoS 1 and waits for delivery, the timeout or ctx.
func (p *MQTTPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	token := p.client.Publish(p.Topic(event.Type), 1, false, payload)

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt publish %s: %w", event.Type, err)
		}
		return nil
	case <-timer.C:
		return ErrPublishTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
