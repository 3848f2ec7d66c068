// Package storage persists vehicles as one whitespace-delimited line each:
//
//	Car <brand> <model> <seats>
//	Motorbike <brand> <model> <engineCapacity>
//
// Fields are not escaped, so a brand or model containing whitespace does not
// survive a round trip.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/autoworld/internal/models"
)

// DefaultFile is the file the showroom writes to in the working directory.
const DefaultFile = "vehicles.txt"

var (
	ErrOpenForWrite = errors.New("could not open file for writing")
	ErrOpenForRead  = errors.New("could not open file for reading")
)

// WriteAll truncates path and writes one serialized line per vehicle.
// Nothing is written when the file cannot be opened.
func WriteAll(vehicles []models.Vehicle, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenForWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, v := range vehicles {
		if hasSpace(v.Base().Brand) || hasSpace(v.Base().Model) {
			log.WithFields(log.Fields{
				"brand": v.Base().Brand,
				"model": v.Base().Model,
			}).Warn("Vehicle field contains whitespace and will not read back intact")
		}
		if _, err := fmt.Fprintln(w, v.Serialize()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.WithFields(log.Fields{"file": path, "count": len(vehicles)}).Debug("Wrote vehicles")
	return nil
}

// ReadAll reads records from path and prints each one to out as soon as it
// is decoded. An unknown tag, a short or malformed record and end of file
// all end the read the same way. It returns the number of records printed.
func ReadAll(path string, out io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOpenForRead, err)
	}
	defer f.Close()

	return readRecords(bufio.NewReader(f), out), nil
}

func readRecords(r *bufio.Reader, out io.Writer) int {
	printed := 0
	for {
		var tag string
		if _, err := fmt.Fscan(r, &tag); err != nil {
			log.WithError(err).Debug("Read loop stopped")
			return printed
		}
		v, ok := models.Blank(models.Kind(tag))
		if !ok {
			log.WithField("tag", tag).Debug("Read loop stopped on unknown tag")
			return printed
		}
		if err := v.Decode(r); err != nil {
			log.WithError(err).WithField("tag", tag).Debug("Read loop stopped")
			return printed
		}
		fmt.Fprintln(out, v.Record())
		printed++
	}
}

func hasSpace(s string) bool {
	return strings.ContainsAny(s, " \t\r\n")
}
