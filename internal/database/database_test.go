package database_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stitcher.dev/launcher/internal/database"
	"stitcher.dev/launcher/internal/database/delegate/sqlite"
	"stitcher.dev/launcher/internal/database/mock"
	"stitcher.dev/launcher/internal/entity"
)

func launchAt(minute int, exitCode int) entity.Launch {
	start := time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC)
	return entity.Launch{
		Interpreter: "python",
		Source:      "config",
		EntryPoint:  "main.py",
		ExitCode:    exitCode,
		StartedAt:   start,
		FinishedAt:  start.Add(time.Second),
	}
}

func TestInitializeUnreacheableDatabase(t *testing.T) {
	delegate := &mock.MockDelegate{FailOpen: true, Error: errors.New("cannot open")}
	instance := database.NewDatabase("history.db", delegate)
	err := instance.Initialize()
	assert.EqualError(t, err, "cannot open history database: cannot open")
	instance.Deinitialize()
	assert.False(t, delegate.Closed, "a database never opened must not be closed")
}

func TestInitializeCannotMigrate(t *testing.T) {
	delegate := &mock.MockDelegate{FailMigration: true, Error: errors.New("cannot migrate")}
	instance := database.NewDatabase("history.db", delegate)
	err := instance.Initialize()
	assert.EqualError(t, err, "cannot migrate history database: cannot migrate")
	assert.True(t, delegate.Closed, "a failed migration must release the database")

	delegate.Closed = false
	instance.Deinitialize()
	assert.False(t, delegate.Closed, "the database must be closed only once")
}

func TestInitializeAndDeinitialize(t *testing.T) {
	delegate := &mock.MockDelegate{}
	instance := database.NewDatabase("history.db", delegate)
	require.NoError(t, instance.Initialize())
	assert.True(t, delegate.Opened)
	assert.True(t, delegate.Migrated)
	instance.Deinitialize()
	assert.True(t, delegate.Closed)
}

func TestRecordBeforeInitialize(t *testing.T) {
	delegate := &mock.MockDelegate{}
	instance := database.NewDatabase("history.db", delegate)
	instance.Record(launchAt(0, 0))
	assert.Empty(t, delegate.Launches)

	_, err := instance.Recent(1)
	assert.ErrorIs(t, err, database.ErrNotInitialized)
}

func TestRecordFailureIsSwallowed(t *testing.T) {
	delegate := &mock.MockDelegate{FailCreate: true, Error: errors.New("disk full")}
	instance := database.NewDatabase("history.db", delegate)
	require.NoError(t, instance.Initialize())
	defer instance.Deinitialize()
	assert.NotPanics(t, func() { instance.Record(launchAt(0, 1)) })
	assert.Empty(t, delegate.Launches)
}

func TestRecentInvalidLimit(t *testing.T) {
	instance := database.NewDatabase("history.db", &mock.MockDelegate{})
	require.NoError(t, instance.Initialize())
	defer instance.Deinitialize()
	_, err := instance.Recent(0)
	assert.ErrorIs(t, err, database.ErrInvalidLimit)
}

func TestRecordAndRecent(t *testing.T) {
	delegate := &mock.MockDelegate{}
	instance := database.NewDatabase("history.db", delegate)
	require.NoError(t, instance.Initialize())
	defer instance.Deinitialize()

	instance.Record(launchAt(0, 0))
	instance.Record(launchAt(5, 1))
	instance.Record(launchAt(2, 0))

	launches, err := instance.Recent(2)
	require.NoError(t, err)
	require.Len(t, launches, 2)
	assert.Equal(t, 1, launches[0].ExitCode)
	assert.Equal(t, 2, launches[1].StartedAt.Minute())
}

func TestRecordOnSQLite(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "history.db")
	instance := database.NewDatabase(databasePath, &sqlite.SQLiteDelegate{})
	require.NoError(t, instance.Initialize())
	instance.Record(launchAt(0, 0))
	instance.Record(launchAt(1, 3))
	instance.Deinitialize()

	reopened := database.NewDatabase(databasePath, &sqlite.SQLiteDelegate{})
	require.NoError(t, reopened.Initialize())
	defer reopened.Deinitialize()
	launches, err := reopened.Recent(10)
	require.NoError(t, err)
	require.Len(t, launches, 2)
	assert.Equal(t, 3, launches[0].ExitCode)
	assert.False(t, launches[0].Succeeded())
	assert.True(t, launches[1].Succeeded())
}
