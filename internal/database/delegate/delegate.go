package delegate

import "stitcher.dev/launcher/internal/entity"

type DatabaseDelegate interface {
	Open(databasePath string) error
	Close() error
	Migrate() error
	Create(launch *entity.Launch) error
	// Recent returns at most limit launches, newest first.
	Recent(limit int) ([]entity.Launch, error)
}
