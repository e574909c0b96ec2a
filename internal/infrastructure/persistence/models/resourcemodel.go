package models

import (
	"time"

	"gorm.io/gorm"

	"studium/internal/shared/constants"
)

// ResourceModel represents the database persistence model for unit pools.
// AvailableUnits is mutated through guarded UPDATE statements, never by
// writing a value read earlier.
type ResourceModel struct {
	ID             uint   `gorm:"primarykey"`
	Kind           string `gorm:"not null;size:20;uniqueIndex:idx_resources_kind_ref"`
	RefID          uint   `gorm:"not null;uniqueIndex:idx_resources_kind_ref"`
	TotalUnits     int    `gorm:"not null"`
	AvailableUnits int    `gorm:"not null"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (ResourceModel) TableName() string {
	return constants.TableResources
}

// BeforeCreate hook for GORM
func (r *ResourceModel) BeforeCreate(tx *gorm.DB) error {
	if r.Version == 0 {
		r.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (r *ResourceModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", r.Version+1)
	return nil
}
