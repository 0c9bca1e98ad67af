package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/Bialogs/SaraAlert/consts"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
	"github.com/Bialogs/SaraAlert/threshold"
)

const ingestLogPrefix = "ingest"

var (
	ErrMalformedMessage       = fmt.Errorf("malformed report message")
	ErrUnknownSubmissionToken = fmt.Errorf("unknown submission token")
	ErrDuplicateReport        = fmt.Errorf("duplicate report")
	ErrUnknownThreshold       = fmt.Errorf("unknown threshold condition")
)

// IsDrop tells whether the message should be dropped rather than retried
func IsDrop(err error) bool {
	return errors.Is(err, ErrMalformedMessage) ||
		errors.Is(err, ErrUnknownSubmissionToken) ||
		errors.Is(err, ErrDuplicateReport) ||
		errors.Is(err, ErrUnknownThreshold)
}

// Message is an inbound report. A nil ReportedSymptoms means the channel only
// asked whether the monitoree is experiencing symptoms.
type Message struct {
	ThresholdConditionHash string                 `json:"threshold_condition_hash"`
	ReportedSymptoms       []threshold.RawSymptom `json:"reported_symptoms_array"`
	SubmissionToken        string                 `json:"patient_submission_token"`
	ExperiencingSymptoms   bool                   `json:"experiencing_symptoms"`
}

func ParseMessage(raw []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedMessage, err)
	}
	return &m, nil
}

// Ingester turns report messages into assessments
type Ingester struct {
	monitorees     store.Monitoree
	assessments    store.Assessment
	thresholds     store.ThresholdCondition
	reportingLimit time.Duration
}

func NewIngester(monitorees store.Monitoree, assessments store.Assessment, thresholds store.ThresholdCondition, reportingLimit time.Duration) *Ingester {
	if reportingLimit <= 0 {
		reportingLimit = consts.ReportingLimitMinutes * time.Minute
	}
	return &Ingester{
		monitorees:     monitorees,
		assessments:    assessments,
		thresholds:     thresholds,
		reportingLimit: reportingLimit,
	}
}

// Report is a validated message and the assessments it still has to write
type Report struct {
	msg       *Message
	condition schema.ThresholdCondition
	now       time.Time

	pending []pendingAssessment
	written []schema.Assessment
}

type pendingAssessment struct {
	target   schema.Monitoree
	symptoms []schema.Symptom
	who      string
}

// Done tells whether every assessment of the report is written
func (r *Report) Done() bool {
	return len(r.pending) == 0
}

// Written returns the assessments stored so far
func (r *Report) Written() []schema.Assessment {
	return r.written
}

// Ingest stores the assessments carried by a raw report message and returns them
func (i *Ingester) Ingest(ctx context.Context, raw []byte, now time.Time) ([]schema.Assessment, error) {
	report, err := i.Prepare(ctx, raw, now)
	if err != nil {
		return nil, err
	}
	if err := i.Write(ctx, report); err != nil {
		return report.Written(), err
	}
	return report.Written(), nil
}

// Prepare runs the token, duplicate and threshold checks and plans one
// assessment per target. It writes nothing.
func (i *Ingester) Prepare(ctx context.Context, raw []byte, now time.Time) (*Report, error) {
	msg, err := ParseMessage(raw)
	if err != nil {
		return nil, err
	}

	patient, err := i.monitorees.GetMonitoreeBySubmissionToken(ctx, msg.SubmissionToken)
	if err != nil {
		if errors.Is(err, store.ErrMonitoreeNotFound) {
			return nil, ErrUnknownSubmissionToken
		}
		return nil, err
	}

	latest, err := i.assessments.LatestAssessment(ctx, patient.ID)
	switch {
	case err == nil:
		if latest.CreatedAt.After(now.Add(-i.reportingLimit)) {
			return nil, ErrDuplicateReport
		}
	case !errors.Is(err, store.ErrAssessmentNotFound):
		return nil, err
	}

	condition, err := i.thresholds.GetThresholdCondition(ctx, msg.ThresholdConditionHash)
	if err != nil {
		if errors.Is(err, store.ErrThresholdNotFound) {
			return nil, ErrUnknownThreshold
		}
		return nil, err
	}

	report := &Report{
		msg:       msg,
		condition: *condition,
		now:       now,
	}

	if msg.ReportedSymptoms != nil {
		symptoms, err := threshold.BuildSymptoms(msg.ReportedSymptoms)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedMessage, err)
		}
		report.pending = []pendingAssessment{{
			target:   *patient,
			symptoms: symptoms,
			who:      schema.ReporterMonitoree,
		}}
		return report, nil
	}

	if report.pending, err = i.fanOut(ctx, *patient, msg, *condition); err != nil {
		return nil, err
	}
	return report, nil
}

// Write stores the pending assessments in order. A failed write leaves it and
// the ones after it pending, so calling Write again resumes where it stopped.
func (i *Ingester) Write(ctx context.Context, report *Report) error {
	for !report.Done() {
		p := report.pending[0]
		a, err := i.store(ctx, p.target, report.msg, report.condition, p.symptoms, p.who, report.now)
		if err != nil {
			return err
		}
		report.written = append(report.written, *a)
		report.pending = report.pending[1:]
	}
	return nil
}

// fanOut plans one synthesized assessment for the reporter and for each of its dependents
func (i *Ingester) fanOut(ctx context.Context, patient schema.Monitoree, msg *Message,
	condition schema.ThresholdCondition) ([]pendingAssessment, error) {
	dependents, err := i.monitorees.ListDependents(ctx, patient.ID)
	if err != nil {
		return nil, err
	}

	targets := lo.UniqBy(append([]schema.Monitoree{patient}, dependents...), func(m schema.Monitoree) string {
		return m.ID
	})

	return lo.Map(targets, func(target schema.Monitoree, _ int) pendingAssessment {
		var symptoms []schema.Symptom
		if msg.ExperiencingSymptoms {
			symptoms = threshold.CloneRemoveValues(condition)
		} else {
			symptoms = threshold.CloneNegateBoolValues(condition)
		}

		who := schema.ReporterProxy
		if target.SubmissionToken == msg.SubmissionToken {
			who = schema.ReporterMonitoree
		}
		return pendingAssessment{target: target, symptoms: symptoms, who: who}
	}), nil
}

func (i *Ingester) store(ctx context.Context, target schema.Monitoree, msg *Message,
	condition schema.ThresholdCondition, symptoms []schema.Symptom, who string, now time.Time) (*schema.Assessment, error) {
	a, err := i.assessments.CreateAssessment(ctx, schema.Assessment{
		PatientID:   target.ID,
		Symptomatic: threshold.Symptomatic(condition, symptoms) || msg.ExperiencingSymptoms,
		WhoReported: who,
		ReportedCondition: schema.ReportedCondition{
			ThresholdConditionHash: condition.Hash,
			Symptoms:               symptoms,
		},
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"prefix":       ingestLogPrefix,
		"monitoree_id": target.ID,
		"who_reported": who,
		"symptomatic":  a.Symptomatic,
	})
	logger.Info("assessment stored")

	if a.Symptomatic && target.SymptomOnset == nil {
		onset := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if _, err := i.monitorees.SetSymptomOnset(ctx, target.ID, onset); err != nil {
			logger.WithError(err).Warn("fail to set symptom onset")
		}
	}

	return a, nil
}
