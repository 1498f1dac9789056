package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"stitcher.dev/launcher/internal/entity"
)

var ErrNotOpen = errors.New("database is not open")

type SQLiteDelegate struct{ database *gorm.DB }

func (sqliteDelegate *SQLiteDelegate) Open(databasePath string) (err error) {
	if directory := filepath.Dir(databasePath); directory != "." {
		if err = os.MkdirAll(directory, 0755); err != nil {
			return
		}
	}
	dialector := sqlite.Open(databasePath)
	if sqliteDelegate.database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Migrate() (err error) {
	if sqliteDelegate.database == nil {
		return ErrNotOpen
	}
	return sqliteDelegate.database.AutoMigrate(&entity.Launch{})
}

func (sqliteDelegate *SQLiteDelegate) Close() (err error) {
	if sqliteDelegate.database == nil {
		return ErrNotOpen
	}
	var database *sql.DB
	if database, err = sqliteDelegate.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	sqliteDelegate.database = nil
	return
}

func (sqliteDelegate *SQLiteDelegate) Create(launch *entity.Launch) error {
	if sqliteDelegate.database == nil {
		return ErrNotOpen
	}
	if result := sqliteDelegate.database.Create(launch); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) Recent(limit int) (launches []entity.Launch, err error) {
	if sqliteDelegate.database == nil {
		return nil, ErrNotOpen
	}
	err = sqliteDelegate.database.
		Order("started_at desc").Order("id desc").
		Limit(limit).
		Find(&launches).Error
	return
}
