package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog — запись блога. UserID ссылается на владельца (users.id).
type Blog struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Author string `json:"author"`
	URL    string `gorm:"not null" json:"url"`
	Likes  int    `gorm:"not null;default:0" json:"likes"`

	UserID string `gorm:"index" json:"user,omitempty"`

	// Связь для Preload владельца при выдаче списка
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate генерирует uuid для новой записи, если он не задан.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
