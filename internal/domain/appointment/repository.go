package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ErrNotFound is returned by repositories when the requested record does not
// exist.
var ErrNotFound = errors.New("record not found")

type OfferingLookup interface {
	GetOffering(
		ctx context.Context,
		offeringID uint,
	) (*models.Offering, error)

	FindEligibleEmployees(
		ctx context.Context,
		offeringID uint,
	) ([]models.Employee, error)
}

type EmployeeLookup interface {
	GetEmployee(
		ctx context.Context,
		employeeID uint,
	) (*models.Employee, error)
}

type WorkShiftRepository interface {
	FindWorkShifts(
		ctx context.Context,
		employeeIDs []uint,
		dayOfWeek int,
	) ([]models.WorkShift, error)
}

// WorkShiftStore adds the configuration side of work shifts.
type WorkShiftStore interface {
	WorkShiftRepository

	ListWorkShifts(
		ctx context.Context,
		employeeID uint,
	) ([]models.WorkShift, error)

	// ReplaceWorkShifts swaps every shift of the employee atomically.
	ReplaceWorkShifts(
		ctx context.Context,
		employeeID uint,
		shifts []models.WorkShift,
	) error
}

type Repository interface {
	// -------- Availability --------
	FindScheduledAppointments(
		ctx context.Context,
		employeeIDs []uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment re-checks overlap with scheduled appointments of the
	// same employee inside the insert transaction.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------

	// GetAppointment loads the appointment with its Employee and Offering.
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persists a transition out of scheduled. It
	// fails with a conflict when the stored row is no longer scheduled.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Agenda --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		employeeID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	ListScheduledStartingBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

// AppointmentFilter narrows ListAppointments. Zero fields are ignored; From
// is inclusive and To exclusive on the start time.
type AppointmentFilter struct {
	UserID     uint
	EmployeeID uint
	BusinessID uint

	From time.Time
	To   time.Time

	NewestFirst bool
}

// ===============================
// Notifications
// ===============================

type RecipientKind string

const (
	RecipientClient   RecipientKind = "client"
	RecipientEmployee RecipientKind = "employee"
)

type Recipient struct {
	Kind RecipientKind
	ID   uint
}

type Notification struct {
	Recipient Recipient
	Message   string
	Link      string
}

// Notifier delivers notifications without blocking the caller. Delivery
// failures are never reported back.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
