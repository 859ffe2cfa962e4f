package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) GetEmployee(
	ctx context.Context,
	employeeID uint,
) (*models.Employee, error) {

	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, employeeID).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

var _ domain.EmployeeLookup = (*EmployeeGormRepository)(nil)
