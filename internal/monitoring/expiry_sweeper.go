package monitoring

import (
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// ExpirySweeper periodically deactivates government schemes whose deadline
// has passed and policies whose expiry date has passed, so public listings
// never serve stale entries.
type ExpirySweeper struct {
	schemeSvc services.SchemeServiceProvider
	policySvc services.PolicyServiceProvider
	schedule  cron.Schedule
	done      chan bool
}

// NewExpirySweeper creates a sweeper from a cron expression (e.g. "@hourly").
func NewExpirySweeper(schemeSvc services.SchemeServiceProvider, policySvc services.PolicyServiceProvider, cronExpr string) (*ExpirySweeper, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &ExpirySweeper{
		schemeSvc: schemeSvc,
		policySvc: policySvc,
		schedule:  schedule,
		done:      make(chan bool),
	}, nil
}

// Run starts the sweeper loop. It sweeps once immediately, then on schedule.
func (s *ExpirySweeper) Run() {
	log.Info().Msg("Starting content expiry sweeper")
	s.Sweep(time.Now())

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-s.done:
			timer.Stop()
			log.Info().Msg("Stopping content expiry sweeper")
			return
		case now := <-timer.C:
			s.Sweep(now)
		}
	}
}

// Stop halts the sweeper.
func (s *ExpirySweeper) Stop() {
	s.done <- true
}

// Sweep runs a single pass over schemes and policies.
func (s *ExpirySweeper) Sweep(now time.Time) {
	schemes, err := s.schemeSvc.DeactivateExpired(now)
	if err != nil {
		log.Error().Err(err).Msg("Failed to deactivate expired schemes")
	}
	policies, err := s.policySvc.DeactivateExpired(now)
	if err != nil {
		log.Error().Err(err).Msg("Failed to deactivate expired policies")
	}
	if schemes > 0 || policies > 0 {
		log.Info().Int64("schemes", schemes).Int64("policies", policies).Msg("Deactivated expired content")
	}
}
