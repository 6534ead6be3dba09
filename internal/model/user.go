package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User — серверная модель пользователя блога.
// PasswordHash никогда не попадает в JSON-ответы.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Name         string `gorm:"not null" json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Упорядоченный список идентификаторов блогов пользователя.
	// Хранится как JSON-колонка, чтобы сохранить порядок добавления.
	BlogIDs []string `gorm:"serializer:json" json:"blogs"`
}

// BeforeCreate генерирует uuid для новой записи, если он не задан.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.BlogIDs == nil {
		u.BlogIDs = []string{}
	}
	return nil
}
