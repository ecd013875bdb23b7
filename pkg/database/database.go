package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/sirupsen/logrus"

	"short-video-backend/cmd/config"
	"short-video-backend/pkg/models"
)

var DB *gorm.DB

func Init() {
	var err error
	DB, err = Open(config.DBDialect, config.DBDSN)
	if err != nil {
		logrus.Fatal("failed to connect to database: ", err)
	}
}

// Open connects to the store and migrates the schema.
func Open(dialect, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.User{}, &models.Video{}, &models.Category{}, &models.VideoCategory{})
	return db, nil
}

// WithTransaction runs fn inside one transaction: commit when fn returns
// nil, roll back everything it wrote otherwise.
func WithTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
