package store

import (
	"context"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/schema"
)

// Subjects assembles monitorees with their ledgers for classification
type Subjects interface {
	LoadSubject(ctx context.Context, id string, now time.Time) (*classify.Subject, error)
	LoadSubjects(ctx context.Context, filter MonitoreeFilter, now time.Time) ([]classify.Subject, error)
	BuildSubjects(ctx context.Context, monitorees []schema.Monitoree, now time.Time) ([]classify.Subject, error)
}

func (m *mongoDB) LoadSubject(ctx context.Context, id string, now time.Time) (*classify.Subject, error) {
	monitoree, err := m.GetMonitoree(ctx, id)
	if err != nil {
		return nil, err
	}

	subjects, err := m.BuildSubjects(ctx, []schema.Monitoree{*monitoree}, now)
	if err != nil {
		return nil, err
	}
	return &subjects[0], nil
}

func (m *mongoDB) LoadSubjects(ctx context.Context, filter MonitoreeFilter, now time.Time) ([]classify.Subject, error) {
	monitorees, err := m.ListMonitorees(ctx, filter)
	if err != nil {
		return nil, err
	}
	return m.BuildSubjects(ctx, monitorees, now)
}

// BuildSubjects attaches ledgers and negative lab counts to the given
// monitorees with one query per collection
func (m *mongoDB) BuildSubjects(ctx context.Context, monitorees []schema.Monitoree, now time.Time) ([]classify.Subject, error) {
	ids := lo.Map(monitorees, func(monitoree schema.Monitoree, _ int) string {
		return monitoree.ID
	})

	assessments, err := m.ListAssessmentsByPatients(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	negativeLabs, err := m.CountNegativeLabsByPatients(ctx, ids)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"monitorees": len(monitorees),
	}).Debug("subjects loaded")

	return lo.Map(monitorees, func(monitoree schema.Monitoree, _ int) classify.Subject {
		return classify.Subject{
			Monitoree:        monitoree,
			Assessments:      assessments[monitoree.ID],
			NegativeLabCount: negativeLabs[monitoree.ID],
		}
	}), nil
}
