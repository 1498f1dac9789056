package mock

import (
	"sort"

	"stitcher.dev/launcher/internal/entity"
)

// MockDelegate keeps launches in memory and fails on demand.
type MockDelegate struct {
	FailOpen      bool
	FailMigration bool
	FailCreate    bool
	FailClose     bool
	Error         error

	Opened   bool
	Migrated bool
	Closed   bool
	Launches []entity.Launch
}

func (m *MockDelegate) Open(databasePath string) error {
	if m.FailOpen {
		return m.Error
	}
	m.Opened = true
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	m.Migrated = true
	return nil
}

func (m *MockDelegate) Close() error {
	if m.FailClose {
		return m.Error
	}
	m.Closed = true
	return nil
}

func (m *MockDelegate) Create(launch *entity.Launch) error {
	if m.FailCreate {
		return m.Error
	}
	launch.Id = uint(len(m.Launches) + 1)
	m.Launches = append(m.Launches, *launch)
	return nil
}

func (m *MockDelegate) Recent(limit int) ([]entity.Launch, error) {
	launches := make([]entity.Launch, len(m.Launches))
	copy(launches, m.Launches)
	sort.SliceStable(launches, func(i, j int) bool {
		return launches[i].StartedAt.After(launches[j].StartedAt)
	})
	if len(launches) > limit {
		launches = launches[:limit]
	}
	return launches, nil
}
