package classify

import (
	"time"

	"github.com/Bialogs/SaraAlert/schema"
)

// Subject is a monitoree together with the data its status is derived from
type Subject struct {
	Monitoree        schema.Monitoree
	Assessments      []schema.Assessment
	NegativeLabCount int
}

// Engine classifies subjects into statuses. It holds no state besides its
// configuration and is safe for concurrent use.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// facts is everything the branches look at, computed once for a subject and
// an instant. Only assessments created at or before now are considered.
type facts struct {
	cfg    *Config
	m      *schema.Monitoree
	now    time.Time
	ledger []schema.Assessment
	latest *schema.Assessment

	anySymptomatic bool
	negativeLabs   int
}

func (e *Engine) facts(s Subject, now time.Time) *facts {
	f := &facts{
		cfg:          &e.cfg,
		m:            &s.Monitoree,
		now:          now,
		ledger:       make([]schema.Assessment, 0, len(s.Assessments)),
		negativeLabs: s.NegativeLabCount,
	}

	for _, a := range s.Assessments {
		if a.CreatedAt.After(now) {
			continue
		}
		f.ledger = append(f.ledger, a)
	}

	for i := range f.ledger {
		a := &f.ledger[i]
		if a.Symptomatic {
			f.anySymptomatic = true
		}
		if f.latest == nil || a.CreatedAt.After(f.latest.CreatedAt) {
			f.latest = a
		}
	}

	return f
}

// since returns the inclusive lower bound of a window ending now
func (f *facts) since(window time.Duration) time.Time {
	return f.now.Add(-window)
}

func (f *facts) active() bool {
	return f.m.Monitoring && !f.m.Purged
}

func (f *facts) purged() bool {
	return f.m.Purged
}

func (f *facts) closed() bool {
	return !f.m.Monitoring && !f.m.Purged
}

func (f *facts) openAction() bool {
	return f.m.HasOpenAction()
}

// recent tells whether the latest assessment, or the enrollment when there is
// none, falls within the reporting period
func (f *facts) recent() bool {
	from := f.since(f.cfg.ReportingPeriod)
	if f.latest != nil {
		return !f.latest.CreatedAt.Before(from)
	}
	return !f.m.CreatedAt.Before(from)
}

func (f *facts) reportedWithin(window time.Duration) bool {
	from := f.since(window)
	for _, a := range f.ledger {
		if !a.CreatedAt.Before(from) {
			return true
		}
	}
	return false
}

func (f *facts) reportsSymptomWithin(symptom string, window time.Duration) bool {
	from := f.since(window)
	for _, a := range f.ledger {
		if !a.CreatedAt.Before(from) && a.ReportsTrue(symptom) {
			return true
		}
	}
	return false
}

func (f *facts) feverWithin(window time.Duration) bool {
	return f.reportsSymptomWithin(f.cfg.FeverSymptom, window) ||
		f.reportsSymptomWithin(f.cfg.FeverMedicationSymptom, window)
}

func (f *facts) testBasedCriteria() bool {
	return f.negativeLabs <= f.cfg.MaxNegativeLabs &&
		!f.feverWithin(f.cfg.TestBasedWindow)
}

func (f *facts) nonTestBasedCriteria() bool {
	if f.m.SymptomOnset == nil {
		return false
	}
	return !f.feverWithin(f.cfg.NonTestBasedWindow) &&
		!f.m.SymptomOnset.After(f.since(f.cfg.SymptomOnsetDelay))
}

func (f *facts) requiringReview() bool {
	return f.testBasedCriteria() || f.nonTestBasedCriteria()
}

// Status returns the single status of the subject at the given instant.
// Branches are tried in priority order and the first one that holds wins.
func (e *Engine) Status(s Subject, now time.Time) schema.Status {
	return e.facts(s, now).status()
}

func (f *facts) status() schema.Status {
	if !f.m.Isolation {
		switch {
		case f.active() && f.openAction():
			return schema.StatusPUI
		case f.purged():
			return schema.StatusPurged
		case f.closed():
			return schema.StatusClosed
		case f.anySymptomatic:
			return schema.StatusSymptomatic
		case f.recent():
			return schema.StatusAsymptomatic
		case !f.recent():
			return schema.StatusNonReporting
		}
	}

	if f.m.Isolation && f.active() {
		switch {
		case f.testBasedCriteria():
			return schema.StatusIsolationTestBased
		case f.nonTestBasedCriteria():
			return schema.StatusIsolationNonTestBased
		case !f.reportedWithin(f.cfg.IsolationReportingWindow):
			return schema.StatusIsolationNonReporting
		default:
			return schema.StatusIsolationReporting
		}
	}

	switch {
	case f.purged():
		return schema.StatusPurged
	case f.closed():
		return schema.StatusClosed
	}

	return schema.StatusUnknown
}

// LatestAssessment returns the most recent assessment created at or before now
func LatestAssessment(s Subject, now time.Time) *schema.Assessment {
	var latest *schema.Assessment
	for i := range s.Assessments {
		a := &s.Assessments[i]
		if a.CreatedAt.After(now) {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest
}

// ReportedBetween tells whether the subject has an assessment in [from, to]
func ReportedBetween(s Subject, from, to time.Time) bool {
	for _, a := range s.Assessments {
		if !a.CreatedAt.Before(from) && !a.CreatedAt.After(to) {
			return true
		}
	}
	return false
}
