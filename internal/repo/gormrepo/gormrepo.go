// Package gormrepo implements the repositories on sqlite via gorm. It is
// the transactional alternative to the JSON document driver.
package gormrepo

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/aminebt/khadamat/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Service{}, &models.Request{}, &models.Alert{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
