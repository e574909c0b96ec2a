package models

import (
	"time"

	"gorm.io/gorm"

	"studium/internal/shared/constants"
)

// BookModel represents the database persistence model for catalog books
type BookModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:200;index:idx_books_title"`
	Author      string `gorm:"not null;size:100"`
	ISBN        string `gorm:"uniqueIndex;not null;size:13"`
	TotalCopies int    `gorm:"not null"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BookModel) TableName() string {
	return constants.TableBooks
}

// BeforeCreate hook for GORM
func (b *BookModel) BeforeCreate(tx *gorm.DB) error {
	if b.Version == 0 {
		b.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (b *BookModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", b.Version+1)
	return nil
}
