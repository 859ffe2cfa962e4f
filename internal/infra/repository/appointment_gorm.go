package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

var errTimeConflict = errors.New("time conflict")

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// Concurrent inserts waiting on each other's exclusion check can deadlock;
// Postgres aborts one of them.
func isDeadlock(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40P01"
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) FindScheduledAppointments(
	ctx context.Context,
	employeeIDs []uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "employee_id", "start_time", "end_time").
		Where(
			"employee_id IN ? AND status = ? AND start_time < ? AND end_time > ?",
			employeeIDs,
			string(domain.StatusScheduled),
			end,
			start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clashing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where(
				"employee_id = ? AND status = ? AND start_time < ? AND end_time > ?",
				ap.EmployeeID,
				string(domain.StatusScheduled),
				ap.EndTime,
				ap.StartTime,
			).
			Find(&clashing).Error; err != nil {
			return err
		}

		if len(clashing) > 0 {
			return errTimeConflict
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})

	// the exclusion constraint catches what the row lock cannot see
	if errors.Is(err, errTimeConflict) ||
		httperr.IsExclusionViolation(err, models.AppointmentsNoOverlap) ||
		isDeadlock(err) {
		return httperr.Conflict(
			"time_conflict",
			"Horário indisponível para este profissional.",
		)
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Offering").
		First(&ap, appointmentID).Error; err != nil {
		return nil, notFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(domain.StatusScheduled)).
		Updates(map[string]any{
			"status":              ap.Status,
			"cancellation_reason": ap.CancellationReason,
			"cancelled_by":        ap.CancelledBy,
			"cancelled_at":        ap.CancelledAt,
			"completed_at":        ap.CompletedAt,
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.Conflict(
			"status_changed",
			"O agendamento foi alterado por outra operação.",
		)
	}

	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, appointmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	employeeID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	return r.ListAppointments(ctx, domain.AppointmentFilter{
		EmployeeID: employeeID,
		From:       start,
		To:         end,
	})
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Offering")

	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.EmployeeID != 0 {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.BusinessID != 0 {
		q = q.Where(
			"employee_id IN (?)",
			r.db.Model(&models.Employee{}).Select("id").Where("business_id = ?", f.BusinessID),
		)
	}
	if !f.From.IsZero() {
		q = q.Where("start_time >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("start_time < ?", f.To)
	}

	order := "start_time ASC"
	if f.NewestFirst {
		order = "start_time DESC"
	}

	var apps []models.Appointment
	if err := q.Order(order).Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListScheduledStartingBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Offering").
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusScheduled),
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
