package models

import "time"

// AppointmentsNoOverlap is the exclusion constraint that keeps scheduled
// appointments of one employee from intersecting.
const AppointmentsNoOverlap = "appointments_no_overlap"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint     `gorm:"index;not null" json:"employeeId"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee,omitempty"`

	OfferingID uint     `gorm:"not null" json:"offeringId"`
	Offering   Offering `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"offering,omitempty"`

	UserID uint `gorm:"index;not null" json:"userId"`
	Client User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	StartTime time.Time `gorm:"index;not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`

	Notes              string     `gorm:"type:text" json:"notes"`
	CancellationReason string     `gorm:"size:255" json:"cancellationReason,omitempty"`
	CancelledBy        string     `gorm:"size:20" json:"cancelledBy,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
