package appointment

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
)

// SendReminders notifies client and employee of every scheduled appointment
// starting tomorrow in the configured timezone.
type SendReminders struct {
	repo     domain.Repository
	notifier domain.Notifier
	settings Settings
	log      *slog.Logger
}

func NewSendReminders(
	repo domain.Repository,
	notifier domain.Notifier,
	settings Settings,
	log *slog.Logger,
) *SendReminders {
	return &SendReminders{
		repo:     repo,
		notifier: notifier,
		settings: settings,
		log:      log,
	}
}

func (uc *SendReminders) Execute(ctx context.Context) (int, error) {
	tomorrow := uc.settings.now().AddDate(0, 0, 1)
	start, end := timezone.DayBounds(tomorrow)

	appointments, err := uc.repo.ListScheduledStartingBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	for i := range appointments {
		for _, n := range reminderNotifications(&appointments[i]) {
			uc.notifier.Notify(ctx, n)
		}
	}

	uc.log.Info("appointment reminders sent",
		"date", start.Format(timezone.DateLayout),
		"count", len(appointments),
	)

	return len(appointments), nil
}
