package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/fleet"
	"github.com/ukydev/autoworld/internal/storage"
)

// Config holds the showroom settings. The zero-configuration values
// reproduce the plain demonstration: vehicles.txt, no mirror, no events.
type Config struct {
	VehiclesFile string
	CompanyName  string
	LogLevel     log.Level
	MongoURI     string
	MongoDB      string
	MQTTBroker   string
	MQTTTopic    string
	MQTTClientID string
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to load .env file")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	level := log.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := log.ParseLevel(v); err == nil {
			level = parsed
		}
	}

	return Config{
		VehiclesFile: getEnv("VEHICLES_FILE", storage.DefaultFile),
		CompanyName:  getEnv("COMPANY_NAME", fleet.DefaultCompany),
		LogLevel:     level,
		MongoURI:     strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDB:      getEnv("MONGO_DB", "fleet"),
		MQTTBroker:   strings.TrimSpace(os.Getenv("MQTT_BROKER")),
		MQTTTopic:    getEnv("MQTT_TOPIC", "autoworld/vehicles"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "autoworld-showroom"),
	}
}

// MirrorEnabled reports whether vehicles are mirrored to MongoDB.
func (c Config) MirrorEnabled() bool {
	return c.MongoURI != ""
}

// EventsEnabled reports whether vehicle events are published over MQTT.
func (c Config) EventsEnabled() bool {
	return c.MQTTBroker != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
