package classify

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bialogs/SaraAlert/schema"
)

var testNow = time.Date(2020, 5, 26, 15, 0, 0, 0, time.UTC)

func activeMonitoree(id string) schema.Monitoree {
	return schema.Monitoree{
		ID:                 id,
		ResponderID:        id,
		Monitoring:         true,
		PublicHealthAction: schema.PublicHealthActionNone,
		CreatedAt:          testNow.AddDate(0, 0, -5),
	}
}

func assessmentAt(ts time.Time, symptomatic bool, symptoms ...schema.Symptom) schema.Assessment {
	return schema.Assessment{
		Symptomatic: symptomatic,
		CreatedAt:   ts,
		ReportedCondition: schema.ReportedCondition{
			Symptoms: symptoms,
		},
	}
}

func feverAt(ts time.Time) schema.Assessment {
	return assessmentAt(ts, true, schema.NewBoolSymptom("fever", true))
}

func feverReducerAt(ts time.Time) schema.Assessment {
	return assessmentAt(ts, false, schema.NewBoolSymptom("used-a-fever-reducer", true))
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.ReportingPeriod = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidWindow)

	cfg = DefaultConfig()
	cfg.FeverSymptom = ""
	assert.Error(t, cfg.Validate())
}

func TestStatusReportingPeriodBoundary(t *testing.T) {
	e := New(DefaultConfig())
	period := e.Config().ReportingPeriod

	s := Subject{
		Monitoree:   activeMonitoree("a"),
		Assessments: []schema.Assessment{assessmentAt(testNow.Add(-period), false)},
	}
	assert.Equal(t, schema.StatusAsymptomatic, e.Status(s, testNow))
	assert.True(t, e.IsAsymptomatic(s, testNow))
	assert.False(t, e.IsNonReporting(s, testNow))

	s.Assessments = []schema.Assessment{assessmentAt(testNow.Add(-period-time.Nanosecond), false)}
	assert.Equal(t, schema.StatusNonReporting, e.Status(s, testNow))
	assert.True(t, e.IsNonReporting(s, testNow))
	assert.False(t, e.IsAsymptomatic(s, testNow))
}

func TestStatusWithoutAssessmentsUsesEnrollmentTime(t *testing.T) {
	e := New(DefaultConfig())
	period := e.Config().ReportingPeriod

	m := activeMonitoree("a")
	m.CreatedAt = testNow.Add(-period)
	assert.Equal(t, schema.StatusAsymptomatic, e.Status(Subject{Monitoree: m}, testNow))

	m.CreatedAt = testNow.Add(-period - time.Second)
	assert.Equal(t, schema.StatusNonReporting, e.Status(Subject{Monitoree: m}, testNow))
}

func TestStatusLatestAssessmentDecidesRecency(t *testing.T) {
	e := New(DefaultConfig())

	// an old enrollment with a recent report is still reporting
	m := activeMonitoree("a")
	m.CreatedAt = testNow.AddDate(0, 0, -30)
	s := Subject{
		Monitoree: m,
		Assessments: []schema.Assessment{
			assessmentAt(testNow.AddDate(0, 0, -20), false),
			assessmentAt(testNow.Add(-time.Hour), false),
			assessmentAt(testNow.AddDate(0, 0, -3), false),
		},
	}
	assert.Equal(t, schema.StatusAsymptomatic, e.Status(s, testNow))
}

func TestStatusSymptomaticRegardlessOfAge(t *testing.T) {
	e := New(DefaultConfig())
	s := Subject{
		Monitoree: activeMonitoree("a"),
		Assessments: []schema.Assessment{
			assessmentAt(testNow.AddDate(0, 0, -12), true),
			assessmentAt(testNow.Add(-time.Hour), false),
		},
	}
	assert.Equal(t, schema.StatusSymptomatic, e.Status(s, testNow))
	assert.True(t, e.IsSymptomatic(s, testNow))
	assert.False(t, e.IsAsymptomatic(s, testNow))
}

func TestStatusPUIOverridesSymptomatic(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.PublicHealthAction = "Recommended medical evaluation of symptoms"
	s := Subject{
		Monitoree:   m,
		Assessments: []schema.Assessment{assessmentAt(testNow.Add(-time.Hour), true)},
	}
	assert.Equal(t, schema.StatusPUI, e.Status(s, testNow))
	assert.True(t, e.IsPUI(s, testNow))
	assert.False(t, e.IsSymptomatic(s, testNow))
}

func TestStatusEmptyActionIsNotPUI(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.PublicHealthAction = ""
	assert.Equal(t, schema.StatusAsymptomatic, e.Status(Subject{Monitoree: m}, testNow))
}

func TestStatusAdministrativeOverrides(t *testing.T) {
	e := New(DefaultConfig())
	symptomatic := []schema.Assessment{assessmentAt(testNow.Add(-time.Hour), true)}

	closed := activeMonitoree("closed")
	closed.Monitoring = false
	closed.PublicHealthAction = "Recommended laboratory testing"
	s := Subject{Monitoree: closed, Assessments: symptomatic}
	assert.Equal(t, schema.StatusClosed, e.Status(s, testNow))
	assert.False(t, e.IsPUI(s, testNow))
	assert.False(t, e.IsSymptomatic(s, testNow))

	purged := closed
	purged.Purged = true
	s = Subject{Monitoree: purged, Assessments: symptomatic}
	assert.Equal(t, schema.StatusPurged, e.Status(s, testNow))
	assert.True(t, e.IsPurged(s, testNow))
	assert.False(t, e.IsClosed(s, testNow))
}

func TestStatusIgnoresFutureAssessments(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.CreatedAt = testNow.AddDate(0, 0, -3)
	s := Subject{
		Monitoree:   m,
		Assessments: []schema.Assessment{assessmentAt(testNow.Add(time.Hour), true)},
	}
	assert.Equal(t, schema.StatusNonReporting, e.Status(s, testNow))
	assert.Equal(t, schema.StatusSymptomatic, e.Status(s, testNow.Add(2*time.Hour)))
}

func TestIsolationTestBasedPrecedence(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true
	onset := testNow.AddDate(0, 0, -20)
	m.SymptomOnset = &onset

	s := Subject{
		Monitoree:        m,
		NegativeLabCount: 2,
		Assessments:      []schema.Assessment{assessmentAt(testNow.AddDate(0, 0, -5), true)},
	}
	assert.Equal(t, schema.StatusIsolationTestBased, e.Status(s, testNow))
	assert.True(t, e.IsUnderTestBasedReview(s, testNow))
	assert.False(t, e.IsUnderNonTestBasedReview(s, testNow))
	assert.False(t, e.IsSymptomatic(s, testNow))
	assert.True(t, e.IsIsolationRequiringReview(s, testNow))
}

func TestIsolationFeverBlocksTestBasedReview(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true

	s := Subject{
		Monitoree:   m,
		Assessments: []schema.Assessment{feverAt(testNow.Add(-23 * time.Hour))},
	}
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))

	s.Assessments = []schema.Assessment{feverReducerAt(testNow.Add(-2 * time.Hour))}
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))

	// the fever report sits exactly on the window edge and still counts
	s.Assessments = []schema.Assessment{feverAt(testNow.Add(-24 * time.Hour))}
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))
	assert.False(t, e.IsUnderTestBasedReview(s, testNow))

	s.Assessments = []schema.Assessment{feverAt(testNow.Add(-24*time.Hour - time.Second))}
	assert.Equal(t, schema.StatusIsolationTestBased, e.Status(s, testNow))
}

func TestIsolationTooManyNegativeLabs(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true

	s := Subject{Monitoree: m, NegativeLabCount: 3}
	assert.Equal(t, schema.StatusIsolationNonReporting, e.Status(s, testNow))
	assert.True(t, e.IsIsolationNonReporting(s, testNow))
}

func TestIsolationNonTestBased(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true
	onset := testNow.Add(-10 * 24 * time.Hour)
	m.SymptomOnset = &onset

	s := Subject{
		Monitoree:        m,
		NegativeLabCount: 3,
		Assessments: []schema.Assessment{
			feverAt(testNow.Add(-73 * time.Hour)),
			assessmentAt(testNow.Add(-time.Hour), false),
		},
	}
	assert.Equal(t, schema.StatusIsolationNonTestBased, e.Status(s, testNow))
	assert.True(t, e.IsUnderNonTestBasedReview(s, testNow))

	// fever reported within the last 72 hours
	s.Assessments = append(s.Assessments, feverReducerAt(testNow.Add(-48*time.Hour)))
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))
	assert.True(t, e.IsIsolationReporting(s, testNow))

	// onset is too recent
	recent := testNow.AddDate(0, 0, -9)
	s.Monitoree.SymptomOnset = &recent
	s.Assessments = s.Assessments[:2]
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))

	// unknown onset never qualifies
	s.Monitoree.SymptomOnset = nil
	assert.False(t, e.IsUnderNonTestBasedReview(s, testNow))
}

func TestIsolationIgnoresPublicHealthAction(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true
	m.PublicHealthAction = "Recommended laboratory testing"

	s := Subject{Monitoree: m, NegativeLabCount: 5, Assessments: []schema.Assessment{
		assessmentAt(testNow.Add(-time.Hour), false),
	}}
	assert.Equal(t, schema.StatusIsolationReporting, e.Status(s, testNow))
	assert.False(t, e.IsPUI(s, testNow))
}

func TestIsolationFallbacks(t *testing.T) {
	e := New(DefaultConfig())
	m := activeMonitoree("a")
	m.Isolation = true
	m.Monitoring = false
	assert.Equal(t, schema.StatusClosed, e.Status(Subject{Monitoree: m}, testNow))

	m.Purged = true
	assert.Equal(t, schema.StatusPurged, e.Status(Subject{Monitoree: m}, testNow))
}

// population builds subjects for every combination of the inputs the
// classification looks at
func population() []Subject {
	ledgers := map[string][]schema.Assessment{
		"none":          nil,
		"old":           {assessmentAt(testNow.AddDate(0, 0, -3), false)},
		"recent":        {assessmentAt(testNow.Add(-time.Hour), false)},
		"boundary":      {assessmentAt(testNow.Add(-24*time.Hour), false)},
		"symptomatic":   {assessmentAt(testNow.AddDate(0, 0, -6), true)},
		"fever":         {feverAt(testNow.Add(-2 * time.Hour))},
		"fever-reducer": {feverReducerAt(testNow.Add(-50 * time.Hour))},
	}
	old := testNow.AddDate(0, 0, -15)
	recent := testNow.AddDate(0, 0, -2)
	onsets := []*time.Time{nil, &old, &recent}

	subjects := []Subject{}
	for _, isolation := range []bool{false, true} {
		for _, monitoring := range []bool{false, true} {
			for _, purged := range []bool{false, true} {
				for _, action := range []string{schema.PublicHealthActionNone, "Recommended laboratory testing"} {
					for name, ledger := range ledgers {
						for _, created := range []time.Time{testNow.Add(-time.Hour), testNow.AddDate(0, 0, -10)} {
							for i, onset := range onsets {
								for _, labs := range []int{0, 3} {
									id := fmt.Sprintf("%v-%v-%v-%s-%s-%d-%d-%d", isolation, monitoring, purged, action, name, created.Unix(), i, labs)
									subjects = append(subjects, Subject{
										Monitoree: schema.Monitoree{
											ID:                 id,
											ResponderID:        id,
											Isolation:          isolation,
											Monitoring:         monitoring && !purged,
											Purged:             purged,
											PublicHealthAction: action,
											SymptomOnset:       onset,
											CreatedAt:          created,
										},
										Assessments:      ledger,
										NegativeLabCount: labs,
									})
								}
							}
						}
					}
				}
			}
		}
	}
	return subjects
}

func TestStatusIsTotalAndExclusive(t *testing.T) {
	e := New(DefaultConfig())
	for _, s := range population() {
		status := e.Status(s, testNow)
		assert.NotEqual(t, schema.StatusUnknown, status, s.Monitoree.ID)

		holding := []schema.Status{}
		for _, candidate := range schema.AllStatuses {
			p, ok := e.Predicate(candidate)
			assert.True(t, ok)
			if p(s, testNow) {
				holding = append(holding, candidate)
			}
		}
		assert.Equal(t, []schema.Status{status}, holding, s.Monitoree.ID)
	}
}

func TestFilterAgreesWithStatus(t *testing.T) {
	e := New(DefaultConfig())
	subjects := population()
	counts := e.Counts(subjects, testNow)

	byID := make(map[string]schema.Status, len(subjects))
	for _, s := range subjects {
		byID[s.Monitoree.ID] = e.Status(s, testNow)
	}

	total := 0
	for _, status := range schema.AllStatuses {
		ids := e.Filter(subjects, status, testNow)
		assert.Len(t, ids, counts[status], status)
		for _, id := range ids {
			assert.Equal(t, status, byID[id], id)
		}
		total += len(ids)
	}
	assert.Equal(t, len(subjects), total)
	assert.Equal(t, 0, counts[schema.StatusUnknown])
}

func TestFilterWithUnknownStatusName(t *testing.T) {
	e := New(DefaultConfig())
	assert.Empty(t, e.Filter(population(), schema.Status("invalid"), testNow))
}

func TestMonitoringActiveAndWorkflow(t *testing.T) {
	a := activeMonitoree("a")
	b := activeMonitoree("b")
	b.Monitoring = false
	c := activeMonitoree("c")
	c.Isolation = true
	subjects := []Subject{{Monitoree: a}, {Monitoree: b}, {Monitoree: c}}

	assert.Len(t, MonitoringActive(subjects, false), 3)
	assert.Len(t, MonitoringActive(subjects, true), 2)
	assert.Len(t, InWorkflow(subjects, schema.WorkflowIsolation), 1)
	assert.Len(t, InWorkflow(subjects, schema.WorkflowSurveillance), 2)
}

func TestIsReminderEligible(t *testing.T) {
	e := New(DefaultConfig())
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// 15:00 UTC is 11:00 in New York, local midnight is 04:00 UTC
	s := Subject{
		Monitoree:   activeMonitoree("a"),
		Assessments: []schema.Assessment{assessmentAt(time.Date(2020, 5, 26, 3, 0, 0, 0, time.UTC), false)},
	}
	assert.True(t, e.IsReminderEligible(s, testNow, loc))
	assert.False(t, e.IsReminderEligible(s, testNow, time.UTC))

	s.Assessments = append(s.Assessments, assessmentAt(time.Date(2020, 5, 26, 4, 0, 0, 0, time.UTC), false))
	assert.False(t, e.IsReminderEligible(s, testNow, loc))

	paused := Subject{Monitoree: activeMonitoree("b")}
	paused.Monitoree.PauseNotifications = true
	assert.False(t, e.IsReminderEligible(paused, testNow, loc))

	pui := Subject{Monitoree: activeMonitoree("c")}
	pui.Monitoree.PublicHealthAction = "Recommended laboratory testing"
	assert.False(t, e.IsReminderEligible(pui, testNow, loc))

	review := Subject{Monitoree: activeMonitoree("d")}
	review.Monitoree.Isolation = true
	assert.False(t, e.IsReminderEligible(review, testNow, loc))

	review.NegativeLabCount = 3
	assert.True(t, e.IsReminderEligible(review, testNow, loc))

	closed := Subject{Monitoree: activeMonitoree("e")}
	closed.Monitoree.Monitoring = false
	assert.False(t, e.IsReminderEligible(closed, testNow, loc))
}

func TestLatestAssessment(t *testing.T) {
	s := Subject{
		Monitoree: activeMonitoree("a"),
		Assessments: []schema.Assessment{
			{ID: "1", CreatedAt: testNow.Add(-2 * time.Hour)},
			{ID: "2", CreatedAt: testNow.Add(-time.Hour)},
			{ID: "3", CreatedAt: testNow.Add(time.Hour)},
		},
	}
	assert.Equal(t, "2", LatestAssessment(s, testNow).ID)
	assert.Nil(t, LatestAssessment(Subject{}, testNow))
}
