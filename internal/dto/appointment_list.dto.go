package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	ClientName   string    `json:"clientName"`
	ClientPhone  string    `json:"clientPhone,omitempty"`
	OfferingName string    `json:"offeringName"`
	EmployeeName string    `json:"employeeName,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

func NewAppointmentList(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListDTO{
			ID:           ap.ID,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			ClientName:   ap.Client.FullName(),
			ClientPhone:  ap.Client.Phone,
			OfferingName: ap.Offering.Name,
			EmployeeName: ap.Employee.FullName(),
			Notes:        ap.Notes,
		})
	}
	return out
}
