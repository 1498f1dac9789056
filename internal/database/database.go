package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"stitcher.dev/launcher/internal/database/delegate"
	"stitcher.dev/launcher/internal/entity"
)

// Database keeps the launch history.
type Database struct {
	databasePath string
	delegate     delegate.DatabaseDelegate
	open         bool
}

func NewDatabase(databasePath string, delegate delegate.DatabaseDelegate) (instance *Database) {
	instance = &Database{
		databasePath: databasePath,
		delegate:     delegate,
	}
	return
}

func (d *Database) Initialize() (err error) {
	// Create or update the database if needed
	logrus.Debugf("Connecting to database %s", d.databasePath)
	if err = d.delegate.Open(d.databasePath); err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	d.open = true
	logrus.Debug("Applying database migrations")
	if err = d.delegate.Migrate(); err != nil {
		d.Deinitialize()
		return fmt.Errorf("cannot migrate history database: %w", err)
	}
	return
}

func (d *Database) Deinitialize() {
	if !d.open {
		return
	}
	if err := d.delegate.Close(); err != nil {
		logrus.Warn(err)
	}
	d.open = false
}

// Record stores a launch. Failures are logged only: losing history must not
// change the outcome of a launch.
func (d *Database) Record(launch entity.Launch) {
	if !d.open {
		logrus.Warn("Launch not recorded, history database is not open")
		return
	}
	if err := d.delegate.Create(&launch); err != nil {
		logrus.Error("Cannot record the launch")
		logrus.Error(err)
		return
	}
	logrus.Debugf("Launch %d recorded", launch.Id)
}

func (d *Database) Recent(limit int) ([]entity.Launch, error) {
	if !d.open {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return d.delegate.Recent(limit)
}
