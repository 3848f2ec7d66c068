package showroom

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/db"
	"github.com/ukydev/autoworld/internal/events"
	"github.com/ukydev/autoworld/internal/fleet"
	"github.com/ukydev/autoworld/internal/models"
	"github.com/ukydev/autoworld/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
)

// Options configures a showroom run. Store and Publisher are optional.
type Options struct {
	Out          io.Writer
	Err          io.Writer
	Company      string
	VehiclesFile string
	Store        db.VehicleCollection
	Publisher    events.Publisher
}

// Showroom walks the fleet through create, display, update, persist,
// mirror, validation and cleanup steps, narrating each one.
type Showroom struct {
	out   io.Writer
	err   io.Writer
	file  string
	store db.VehicleCollection
	pub   events.Publisher
	fleet *fleet.Fleet
	stock []stockItem
}

// New applies defaults to opts and returns a showroom with an empty fleet.
func New(opts Options) *Showroom {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.VehiclesFile == "" {
		opts.VehiclesFile = storage.DefaultFile
	}
	return &Showroom{
		out:   opts.Out,
		err:   opts.Err,
		file:  opts.VehiclesFile,
		store: opts.Store,
		pub:   opts.Publisher,
		fleet: fleet.New(opts.Company),
		stock: defaultStock,
	}
}

// Run executes the demonstration with opts.
func Run(ctx context.Context, opts Options) error {
	return New(opts).Run(ctx)
}

// Fleet exposes the showroom's fleet.
func (s *Showroom) Fleet() *fleet.Fleet {
	return s.fleet
}

// Run executes every step in order. A failure while creating vehicles skips
// the remaining steps and is printed; cleanup always runs. File, mirror and
// event failures are reported and never stop the run.
func (s *Showroom) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== VEHICLE MANAGEMENT SYSTEM ===")
	fmt.Fprintf(s.out, "Company: %s\n\n", s.fleet.Company())

	defer s.cleanup()

	first, err := s.create(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		log.WithError(err).Error("Vehicle creation failed")
		return nil
	}
	s.display()
	s.update(ctx, first)
	s.persist()
	s.mirror(ctx)
	s.demonstrateValidation()
	return nil
}

type stockItem struct {
	kind      models.Kind
	brand     string
	model     string
	attribute int
}

// defaultStock is the fleet every run starts with.
var defaultStock = []stockItem{
	{models.KindCar, "Toyota", "Camry", 5},
	{models.KindCar, "Honda", "Civic", 4},
	{models.KindMotorbike, "Yamaha", "MT-07", 689},
	{models.KindMotorbike, "Kawasaki", "Ninja", 649},
}

func (s *Showroom) build(item stockItem) (models.Vehicle, error) {
	switch item.kind {
	case models.KindCar:
		return s.fleet.NewCar(item.brand, item.model, item.attribute)
	case models.KindMotorbike:
		return s.fleet.NewMotorbike(item.brand, item.model, item.attribute)
	default:
		return nil, fmt.Errorf("unknown vehicle kind %q", item.kind)
	}
}

// create builds the stock and returns the first car, the one whose model
// gets updated. Nothing is added to the fleet unless every item builds.
func (s *Showroom) create(ctx context.Context) (*models.Car, error) {
	fmt.Fprintln(s.out, "=== CREATING VEHICLES ===")

	built := make([]models.Vehicle, 0, len(s.stock))
	var first *models.Car
	for _, item := range s.stock {
		v, err := s.build(item)
		if err != nil {
			return nil, err
		}
		if car, ok := v.(*models.Car); ok && first == nil {
			first = car
		}
		built = append(built, v)
	}
	s.fleet.Add(built...)

	fmt.Fprintf(s.out, "Total vehicles created: %d\n\n", s.fleet.Created())

	for _, v := range s.fleet.Vehicles() {
		s.publish(ctx, events.NewEvent(events.TypeVehicleCreated, v, s.fleet.Company()))
	}
	return first, nil
}

func (s *Showroom) display() {
	fmt.Fprintln(s.out, "=== DISPLAYING VEHICLE INFORMATION (POLYMORPHISM) ===")
	for _, v := range s.fleet.Vehicles() {
		fmt.Fprintln(s.out, v.Info(s.fleet.Company()))
	}
	fmt.Fprintln(s.out)
}

func (s *Showroom) update(ctx context.Context, car *models.Car) {
	const newModel = "Corolla"

	if car == nil {
		return
	}
	fmt.Fprintln(s.out, "=== UPDATING VEHICLE MODELS ===")
	fmt.Fprintf(s.out, "Before update: %s\n", car.Info(s.fleet.Company()))
	previous := car.Model
	car.UpdateModel(newModel)
	fmt.Fprintf(s.out, "After update: %s\n\n", car.Info(s.fleet.Company()))

	ev := events.NewEvent(events.TypeModelUpdated, car, s.fleet.Company())
	ev.PreviousModel = previous
	s.publish(ctx, ev)
}

func (s *Showroom) persist() {
	fmt.Fprintln(s.out, "=== FILE HANDLING DEMONSTRATION ===")

	fmt.Fprintln(s.out, "Writing vehicle details to file...")
	vehicles := s.fleet.Vehicles()
	if err := storage.WriteAll(vehicles, s.file); err != nil {
		log.WithError(err).WithField("file", s.file).Error("Failed to write vehicles")
		fmt.Fprintln(s.err, "Error: Could not open file for writing!")
		return
	}
	fmt.Fprintf(s.out, "Successfully wrote %d vehicles to %s\n", len(vehicles), s.file)

	fmt.Fprintln(s.out, "\nReading vehicle details from file...")
	n, err := storage.ReadAll(s.file, s.out)
	if err != nil {
		log.WithError(err).WithField("file", s.file).Error("Failed to read vehicles")
		fmt.Fprintln(s.err, "Error: Could not open file for reading!")
		return
	}
	log.WithFields(log.Fields{"file": s.file, "records": n}).Debug("Read back vehicles")
	fmt.Fprintln(s.out)
}

// mirror replaces the stored fleet with the current vehicles.
func (s *Showroom) mirror(ctx context.Context) {
	if s.store == nil {
		return
	}
	fmt.Fprintln(s.out, "=== DATABASE MIRROR ===")

	stored, err := s.replaceStored(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to mirror vehicles")
		fmt.Fprintf(s.err, "Error: Could not mirror vehicles: %v\n", err)
		fmt.Fprintln(s.out)
		return
	}
	fmt.Fprintf(s.out, "Mirrored %d vehicles, store now holds %d\n\n", s.fleet.Len(), stored)
}

func (s *Showroom) replaceStored(ctx context.Context) (int, error) {
	if err := s.store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear vehicles: %w", err)
	}
	for _, v := range s.fleet.Vehicles() {
		if err := s.store.InsertVehicle(ctx, models.ToDocument(v, s.fleet.Company())); err != nil {
			return 0, fmt.Errorf("failed to insert vehicle: %w", err)
		}
	}

	cursor, err := s.store.FindVehicles(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.VehicleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return 0, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return len(docs), nil
}

func (s *Showroom) demonstrateValidation() {
	fmt.Fprintln(s.out, "=== EXCEPTION HANDLING DEMONSTRATION ===")

	fmt.Fprintln(s.out, "Testing invalid seats...")
	if _, err := s.fleet.NewCar("Test", "Model", -2); err != nil {
		fmt.Fprintf(s.out, "Caught exception: %v\n", err)
	}

	fmt.Fprintln(s.out, "Testing invalid engine capacity...")
	if _, err := s.fleet.NewMotorbike("Test", "Model", -100); err != nil {
		fmt.Fprintf(s.out, "Caught exception: %v\n", err)
	}
	fmt.Fprintln(s.out)
}

func (s *Showroom) publish(ctx context.Context, ev events.Event) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"type":  ev.Type,
			"brand": ev.Brand,
			"model": ev.Model,
		}).Warn("Failed to publish event")
	}
}

func (s *Showroom) cleanup() {
	s.fleet.Clear()
}
