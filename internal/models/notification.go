package models

import "time"

type Notification struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     *uint  `gorm:"index" json:"userId,omitempty"`
	EmployeeID *uint  `gorm:"index" json:"employeeId,omitempty"`
	Message    string `gorm:"size:500;not null" json:"message"`
	Link       string `gorm:"size:255" json:"link,omitempty"`
	IsRead     bool   `gorm:"default:false" json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
}
