package models

import "time"

// Task is a single unit of work owned by exactly one user. Optional
// fields are pointers so that "no value" lands as NULL, never as an
// empty string.
type Task struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description *string
	Category    *string
	DueDate     *string // ISO 8601 calendar date, e.g. "2024-01-10"
	DueTime     *string // time of day, independent of DueDate
	Priority    string  `gorm:"default:Normal"`
	Status      string  `gorm:"default:Pending"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
