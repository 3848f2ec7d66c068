package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/config"
	"github.com/ukydev/autoworld/internal/db"
	"github.com/ukydev/autoworld/internal/events"
	"github.com/ukydev/autoworld/internal/showroom"
)

// buildOptions wires the optional MongoDB mirror and MQTT events. A backend
// that cannot be reached is logged and left out. The returned func releases
// whatever was connected.
func buildOptions(ctx context.Context, cfg config.Config) (showroom.Options, func()) {
	opts := showroom.Options{
		Out:          os.Stdout,
		Err:          os.Stderr,
		Company:      cfg.CompanyName,
		VehiclesFile: cfg.VehiclesFile,
	}
	var closers []func()

	if cfg.MirrorEnabled() {
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.WithError(err).Warn("MongoDB unavailable, mirror disabled")
		} else {
			log.WithField("database", cfg.MongoDB).Info("Connected to MongoDB")
			opts.Store = db.NewMongoCollection(client, cfg.MongoDB)
			closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		}
	}

	if cfg.EventsEnabled() {
		pub, err := events.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic)
		if err != nil {
			log.WithError(err).Warn("MQTT broker unavailable, events disabled")
		} else {
			opts.Publisher = pub
			closers = append(closers, pub.Close)
		}
	}

	return opts, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	log.WithFields(log.Fields{
		"vehicles_file": cfg.VehiclesFile,
		"company":       cfg.CompanyName,
		"mirror":        cfg.MirrorEnabled(),
		"events":        cfg.EventsEnabled(),
	}).Debug("Starting showroom")

	ctx := context.Background()
	opts, release := buildOptions(ctx, cfg)
	defer release()

	if err := showroom.Run(ctx, opts); err != nil {
		log.WithError(err).Error("Showroom run failed")
	}
}
