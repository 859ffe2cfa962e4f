package appointment

import "github.com/BruksfildServices01/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// ParseStatus accepts only the four known status values.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", httperr.Validation("invalid_status", "Status inválido.")
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.Forbidden("invalid_state", "Agendamento não pode ser cancelado.")
	}
	return nil
}

// CanResolve covers completed and no-show.
func CanResolve(current Status) error {
	if current != StatusScheduled {
		return httperr.Forbidden("invalid_state", "Agendamento já foi finalizado.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
