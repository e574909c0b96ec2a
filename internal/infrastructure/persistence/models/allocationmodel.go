package models

import (
	"time"

	"gorm.io/gorm"

	"studium/internal/shared/constants"
)

// AllocationModel represents the database persistence model for allocations
type AllocationModel struct {
	ID         uint   `gorm:"primarykey"`
	RequestID  uint   `gorm:"not null;uniqueIndex:idx_allocations_request"`
	ResourceID uint   `gorm:"not null;index:idx_allocations_resource_status"`
	HolderID   uint   `gorm:"not null;index:idx_allocations_holder"`
	Status     string `gorm:"not null;default:active;size:20;index:idx_allocations_resource_status"`
	DueAt      *time.Time
	Extensions int    `gorm:"not null;default:0"`
	ReleasedAt *time.Time
	Version    int    `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (AllocationModel) TableName() string {
	return constants.TableAllocations
}

// BeforeCreate hook for GORM
func (a *AllocationModel) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = "active"
	}
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (a *AllocationModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", a.Version+1)
	return nil
}
