package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const sessionSweepJobName = "desk_session_sweep"

// Sweeper is implemented by desk.Store.
type Sweeper interface {
	Sweep() int
	Len() int
}

// SweepSessions drops idle desk sessions and logs what it removed.
func SweepSessions(store Sweeper) int {
	removed := store.Sweep()
	if removed > 0 {
		log.Info().
			Int("removed", removed).
			Int("remaining", store.Len()).
			Msg("Idle desk sessions swept")
	}
	return removed
}

// RegisterSessionSweep schedules SweepSessions on cronExpr.
func (s *Service) RegisterSessionSweep(cronExpr string, store Sweeper) (gocron.Job, error) {
	return s.AddJob(sessionSweepJobName, cronExpr, func() {
		SweepSessions(store)
	})
}
