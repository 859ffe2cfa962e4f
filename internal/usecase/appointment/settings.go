package appointment

import (
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
)

// Settings carries the deployment-wide scheduling parameters shared by the
// appointment use cases.
type Settings struct {
	Location           *time.Location
	Granularity        time.Duration
	CancellationCutoff time.Duration

	// Now overrides the wall clock. Nil means time.Now.
	Now func() time.Time
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Settings) granularity() time.Duration {
	if s.Granularity <= 0 {
		return domain.DefaultGranularity
	}
	return s.Granularity
}

func (s Settings) cutoff() time.Duration {
	if s.CancellationCutoff <= 0 {
		return domain.DefaultCancellationCutoff
	}
	return s.CancellationCutoff
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.location())
	}
	return time.Now().In(s.location())
}
