package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

type WorkShiftInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

// ListWorkShifts is readable by any authenticated caller.
type ListWorkShifts struct {
	store domain.WorkShiftStore
}

func NewListWorkShifts(store domain.WorkShiftStore) *ListWorkShifts {
	return &ListWorkShifts{store: store}
}

func (uc *ListWorkShifts) Execute(ctx context.Context, employeeID uint) ([]models.WorkShift, error) {
	shifts, err := uc.store.ListWorkShifts(ctx, employeeID)
	if err != nil {
		return nil, httperr.Internal("failed_to_get_schedules", err)
	}
	return shifts, nil
}

// ReplaceWorkShifts swaps the whole weekly configuration of an employee.
type ReplaceWorkShifts struct {
	store     domain.WorkShiftStore
	employees domain.EmployeeLookup
	log       *slog.Logger
}

func NewReplaceWorkShifts(
	store domain.WorkShiftStore,
	employees domain.EmployeeLookup,
	log *slog.Logger,
) *ReplaceWorkShifts {
	return &ReplaceWorkShifts{store: store, employees: employees, log: log}
}

func (uc *ReplaceWorkShifts) Execute(
	ctx context.Context,
	caller domain.Caller,
	employeeID uint,
	in []WorkShiftInput,
) ([]models.WorkShift, error) {

	if _, err := authorizeEmployee(
		ctx, uc.employees, caller, domain.ActionManageShifts, employeeID,
		"Sem permissão para alterar estes horários.",
	); err != nil {
		return nil, err
	}

	shifts := make([]models.WorkShift, 0, len(in))
	for i, s := range in {
		ws, err := validateShift(s)
		if err != nil {
			return nil, httperr.Validation("invalid_schedule", fmt.Sprintf("Horário %d: %s", i+1, err.Error()))
		}
		ws.EmployeeID = employeeID
		shifts = append(shifts, ws)
	}

	if err := uc.store.ReplaceWorkShifts(ctx, employeeID, shifts); err != nil {
		return nil, httperr.Internal("failed_to_save_schedules", err)
	}

	uc.log.Info("work shifts replaced",
		"employee_id", employeeID,
		"count", len(shifts),
		"caller_id", caller.ID,
	)

	return shifts, nil
}

func validateShift(in WorkShiftInput) (models.WorkShift, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return models.WorkShift{}, errors.New("dia da semana deve estar entre 0 e 6")
	}

	sh, sm, err := timezone.ParseClock(in.StartTime)
	if err != nil {
		return models.WorkShift{}, errors.New("início inválido")
	}
	eh, em, err := timezone.ParseClock(in.EndTime)
	if err != nil {
		return models.WorkShift{}, errors.New("fim inválido")
	}

	if sh*60+sm >= eh*60+em {
		return models.WorkShift{}, errors.New("início deve ser anterior ao fim")
	}

	return models.WorkShift{
		DayOfWeek: in.DayOfWeek,
		StartTime: fmt.Sprintf("%02d:%02d", sh, sm),
		EndTime:   fmt.Sprintf("%02d:%02d", eh, em),
	}, nil
}
