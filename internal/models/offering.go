package models

import "time"

type Offering struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"businessId"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:255" json:"description"`
	DurationMinutes int     `gorm:"not null" json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `gorm:"size:50" json:"category"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	Employees []Employee `gorm:"many2many:employee_offerings;" json:"employees,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o Offering) Duration() time.Duration {
	return time.Duration(o.DurationMinutes) * time.Minute
}
