package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Bloglist/internal/model"
)

// InitDB открывает соединение с Postgres и накатывает миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Blog{}); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
