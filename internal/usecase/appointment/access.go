package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

func employeeRef(e models.Employee) domain.EmployeeRef {
	return domain.EmployeeRef{ID: e.ID, BusinessID: e.BusinessID}
}

// authorizeEmployee loads the employee and checks that the caller reaches it
// for the action.
func authorizeEmployee(
	ctx context.Context,
	employees domain.EmployeeLookup,
	caller domain.Caller,
	action domain.Action,
	employeeID uint,
	denied string,
) (*models.Employee, error) {

	emp, err := employees.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("employee_not_found", "Profissional não encontrado.")
		}
		return nil, httperr.Internal("failed_to_load_employee", err)
	}

	if !caller.CanAccessEmployee(action, employeeRef(*emp)) {
		return nil, httperr.Forbidden("not_allowed", denied)
	}

	return emp, nil
}
