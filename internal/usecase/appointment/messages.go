package appointment

import (
	"fmt"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

const appointmentsLink = "/appointments"

func offeringName(ap *models.Appointment) string {
	if ap.Offering.Name != "" {
		return ap.Offering.Name
	}
	return "serviço"
}

func when(ap *models.Appointment) (string, string) {
	return ap.StartTime.Format("02/01/2006"), timezone.FormatClock(ap.StartTime)
}

func clientOf(ap *models.Appointment) domain.Recipient {
	return domain.Recipient{Kind: domain.RecipientClient, ID: ap.UserID}
}

func employeeOf(ap *models.Appointment) domain.Recipient {
	return domain.Recipient{Kind: domain.RecipientEmployee, ID: ap.EmployeeID}
}

func bookedNotifications(ap *models.Appointment) []domain.Notification {
	day, hm := when(ap)
	return []domain.Notification{
		{
			Recipient: clientOf(ap),
			Message:   fmt.Sprintf("Seu agendamento de %q foi confirmado para %s às %s.", offeringName(ap), day, hm),
			Link:      appointmentsLink,
		},
		{
			Recipient: employeeOf(ap),
			Message:   fmt.Sprintf("Novo agendamento de %q em %s às %s.", offeringName(ap), day, hm),
			Link:      appointmentsLink,
		},
	}
}

// cancelledNotification goes to whoever did not cancel.
func cancelledNotification(ap *models.Appointment, by domain.CancelledBy) domain.Notification {
	day, hm := when(ap)

	if by == domain.CancelledByClient {
		return domain.Notification{
			Recipient: employeeOf(ap),
			Message:   fmt.Sprintf("O cliente cancelou o agendamento de %q em %s às %s.", offeringName(ap), day, hm),
			Link:      appointmentsLink,
		}
	}

	msg := fmt.Sprintf("Seu agendamento de %q em %s às %s foi cancelado.", offeringName(ap), day, hm)
	if ap.CancellationReason != "" {
		msg += " Motivo: " + ap.CancellationReason
	}
	return domain.Notification{
		Recipient: clientOf(ap),
		Message:   msg,
		Link:      appointmentsLink,
	}
}

func reminderNotifications(ap *models.Appointment) []domain.Notification {
	_, hm := when(ap)
	msg := fmt.Sprintf("LEMBRETE: amanhã você tem o agendamento de %q às %s.", offeringName(ap), hm)
	return []domain.Notification{
		{Recipient: clientOf(ap), Message: msg, Link: appointmentsLink},
		{Recipient: employeeOf(ap), Message: msg, Link: appointmentsLink},
	}
}
