package classify

import (
	"time"

	"github.com/samber/lo"

	"github.com/Bialogs/SaraAlert/schema"
)

// Predicate tells whether a subject belongs to a status bucket at an instant
type Predicate func(s Subject, now time.Time) bool

// Each predicate below spells out its branch together with every exclusion
// of the branches ranked above it, so that exactly one of them holds for any
// subject and it agrees with Status.

func (e *Engine) IsPUI(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return !f.m.Isolation && f.active() && f.openAction()
}

func (e *Engine) IsPurged(s Subject, now time.Time) bool {
	return s.Monitoree.Purged
}

func (e *Engine) IsClosed(s Subject, now time.Time) bool {
	return !s.Monitoree.Monitoring && !s.Monitoree.Purged
}

func (e *Engine) IsSymptomatic(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return !f.m.Isolation && f.active() && !f.openAction() &&
		f.anySymptomatic
}

func (e *Engine) IsAsymptomatic(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return !f.m.Isolation && f.active() && !f.openAction() &&
		!f.anySymptomatic && f.recent()
}

func (e *Engine) IsNonReporting(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return !f.m.Isolation && f.active() && !f.openAction() &&
		!f.anySymptomatic && !f.recent()
}

func (e *Engine) IsUnderTestBasedReview(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return f.m.Isolation && f.active() && f.testBasedCriteria()
}

func (e *Engine) IsUnderNonTestBasedReview(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return f.m.Isolation && f.active() && !f.testBasedCriteria() &&
		f.nonTestBasedCriteria()
}

// IsIsolationRequiringReview is true when either review applies
func (e *Engine) IsIsolationRequiringReview(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return f.m.Isolation && f.active() && f.requiringReview()
}

func (e *Engine) IsIsolationNonReporting(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return f.m.Isolation && f.active() && !f.requiringReview() &&
		!f.reportedWithin(f.cfg.IsolationReportingWindow)
}

func (e *Engine) IsIsolationReporting(s Subject, now time.Time) bool {
	f := e.facts(s, now)
	return f.m.Isolation && f.active() && !f.requiringReview() &&
		f.reportedWithin(f.cfg.IsolationReportingWindow)
}

// IsReminderEligible tells whether the subject should be asked for a report.
// loc decides where "today" starts.
func (e *Engine) IsReminderEligible(s Subject, now time.Time, loc *time.Location) bool {
	m := s.Monitoree
	if m.PauseNotifications || !m.Monitoring || m.Purged {
		return false
	}
	if e.IsIsolationRequiringReview(s, now) || e.IsPUI(s, now) {
		return false
	}

	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return !ReportedBetween(s, midnight, now)
}

// Predicate looks up the predicate of a status
func (e *Engine) Predicate(status schema.Status) (Predicate, bool) {
	p, ok := e.predicates()[status]
	return p, ok
}

func (e *Engine) predicates() map[schema.Status]Predicate {
	return map[schema.Status]Predicate{
		schema.StatusPUI:                   e.IsPUI,
		schema.StatusPurged:                e.IsPurged,
		schema.StatusClosed:                e.IsClosed,
		schema.StatusSymptomatic:           e.IsSymptomatic,
		schema.StatusAsymptomatic:          e.IsAsymptomatic,
		schema.StatusNonReporting:          e.IsNonReporting,
		schema.StatusIsolationTestBased:    e.IsUnderTestBasedReview,
		schema.StatusIsolationNonTestBased: e.IsUnderNonTestBasedReview,
		schema.StatusIsolationNonReporting: e.IsIsolationNonReporting,
		schema.StatusIsolationReporting:    e.IsIsolationReporting,
		schema.StatusUnknown: func(s Subject, now time.Time) bool {
			return e.Status(s, now) == schema.StatusUnknown
		},
	}
}

// Filter returns the ids of the subjects in the given status bucket
func (e *Engine) Filter(subjects []Subject, status schema.Status, now time.Time) []string {
	p, ok := e.Predicate(status)
	if !ok {
		return []string{}
	}

	matched := lo.Filter(subjects, func(s Subject, _ int) bool {
		return p(s, now)
	})
	return lo.Map(matched, func(s Subject, _ int) string {
		return s.Monitoree.ID
	})
}

// Counts returns the number of subjects in each status bucket
func (e *Engine) Counts(subjects []Subject, now time.Time) map[schema.Status]int {
	counts := make(map[schema.Status]int)
	for _, s := range subjects {
		counts[e.Status(s, now)]++
	}
	return counts
}

// MonitoringActive narrows the subjects down to the actively monitored ones
// when activeOnly is set
func MonitoringActive(subjects []Subject, activeOnly bool) []Subject {
	if !activeOnly {
		return subjects
	}
	return lo.Filter(subjects, func(s Subject, _ int) bool {
		return s.Monitoree.Monitoring
	})
}

// InWorkflow narrows the subjects down to one workflow
func InWorkflow(subjects []Subject, workflow schema.Workflow) []Subject {
	return lo.Filter(subjects, func(s Subject, _ int) bool {
		return s.Monitoree.Workflow() == workflow
	})
}
