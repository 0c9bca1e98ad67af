package reminder

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

// SweepReport summarizes one pass over the reminder candidates
type SweepReport struct {
	Candidates int             `json:"candidates"`
	Eligible   int             `json:"eligible"`
	Outcomes   map[Outcome]int `json:"outcomes"`
}

// Sweeper periodically reminds every eligible monitoree
type Sweeper struct {
	evaluator  *Evaluator
	monitorees store.Monitoree
	subjects   store.Subjects
	interval   time.Duration
	limiter    *rate.Limiter
}

// NewSweeper paces sends to perSecond. A non-positive perSecond does not pace at all.
func NewSweeper(evaluator *Evaluator, monitorees store.Monitoree, subjects store.Subjects,
	interval time.Duration, perSecond float64) *Sweeper {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		evaluator:  evaluator,
		monitorees: monitorees,
		subjects:   subjects,
		interval:   interval,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Run sweeps once per interval until the context is done
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.WithFields(log.Fields{"prefix": reminderLogPrefix, "interval": s.interval}).Info("sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.WithField("prefix", reminderLogPrefix).Info("sweeper stopped")
			return nil
		case t := <-ticker.C:
			report, err := s.RunOnce(ctx, t)
			if err != nil {
				log.WithField("prefix", reminderLogPrefix).WithError(err).Error("sweep reminders")
				continue
			}
			log.WithFields(log.Fields{
				"prefix":     reminderLogPrefix,
				"candidates": report.Candidates,
				"eligible":   report.Eligible,
				"outcomes":   report.Outcomes,
			}).Info("sweep finished")
		}
	}
}

// RunOnce sends a reminder to every eligible candidate. A failure on one
// monitoree does not stop the pass.
func (s *Sweeper) RunOnce(ctx context.Context, now time.Time) (SweepReport, error) {
	report := SweepReport{Outcomes: make(map[Outcome]int)}

	candidates, err := s.monitorees.ListReminderCandidates(ctx)
	if err != nil {
		return report, err
	}
	report.Candidates = len(candidates)

	subjects, err := s.subjects.BuildSubjects(ctx, candidates, now)
	if err != nil {
		return report, err
	}

	for _, subject := range subjects {
		if status := s.evaluator.engine.Status(subject, now); status == schema.StatusUnknown {
			log.WithFields(log.Fields{
				"prefix":       reminderLogPrefix,
				"monitoree_id": subject.Monitoree.ID,
			}).Warn("monitoree in unknown status")
		}

		if !s.evaluator.ShouldRemind(subject, now) {
			continue
		}
		report.Eligible++

		if err := s.limiter.Wait(ctx); err != nil {
			return report, err
		}

		outcome, err := s.evaluator.Send(ctx, subject, now, false)
		report.Outcomes[outcome]++
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":       reminderLogPrefix,
				"monitoree_id": subject.Monitoree.ID,
				"outcome":      outcome,
			}).WithError(err).Error("send reminder")
		}
	}

	return report, nil
}
