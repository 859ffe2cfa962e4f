package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type WorkShiftGormRepository struct {
	db *gorm.DB
}

func NewWorkShiftGormRepository(db *gorm.DB) *WorkShiftGormRepository {
	return &WorkShiftGormRepository{db: db}
}

func (r *WorkShiftGormRepository) FindWorkShifts(
	ctx context.Context,
	employeeIDs []uint,
	dayOfWeek int,
) ([]models.WorkShift, error) {

	var shifts []models.WorkShift
	if err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND day_of_week = ?", employeeIDs, dayOfWeek).
		Order("employee_id ASC, start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *WorkShiftGormRepository) ListWorkShifts(
	ctx context.Context,
	employeeID uint,
) ([]models.WorkShift, error) {

	var shifts []models.WorkShift
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("day_of_week ASC, start_time ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *WorkShiftGormRepository) ReplaceWorkShifts(
	ctx context.Context,
	employeeID uint,
	shifts []models.WorkShift,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", employeeID).
			Delete(&models.WorkShift{}).Error; err != nil {
			return err
		}

		if len(shifts) == 0 {
			return nil
		}

		for i := range shifts {
			shifts[i].ID = 0
			shifts[i].EmployeeID = employeeID
		}

		return tx.Create(&shifts).Error
	})
}

var _ domain.WorkShiftStore = (*WorkShiftGormRepository)(nil)
