package models

import "time"

// WorkShift is one recurring weekly availability window of an employee.
type WorkShift struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index:idx_schedule_employee_day;not null" json:"employeeId"`

	DayOfWeek int `gorm:"index:idx_schedule_employee_day;not null" json:"dayOfWeek"`

	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (WorkShift) TableName() string {
	return "schedules"
}
