package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type OfferingGormRepository struct {
	db *gorm.DB
}

func NewOfferingGormRepository(db *gorm.DB) *OfferingGormRepository {
	return &OfferingGormRepository{db: db}
}

func (r *OfferingGormRepository) GetOffering(
	ctx context.Context,
	offeringID uint,
) (*models.Offering, error) {

	var o models.Offering
	if err := r.db.WithContext(ctx).First(&o, offeringID).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// FindEligibleEmployees returns the active employees linked to the offering,
// ordered by id so slot deduplication is deterministic.
func (r *OfferingGormRepository) FindEligibleEmployees(
	ctx context.Context,
	offeringID uint,
) ([]models.Employee, error) {

	var employees []models.Employee
	if err := r.db.WithContext(ctx).
		Joins("JOIN employee_offerings eo ON eo.employee_id = employees.id").
		Where("eo.offering_id = ? AND employees.is_active = ?", offeringID, true).
		Order("employees.id ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}

	return employees, nil
}

var _ domain.OfferingLookup = (*OfferingGormRepository)(nil)
