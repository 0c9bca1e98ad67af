package ingest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
	"github.com/Bialogs/SaraAlert/store/mocks"
)

var testNow = time.Date(2020, 5, 26, 15, 0, 0, 0, time.UTC)

var testCondition = schema.ThresholdCondition{
	Hash: "h1",
	Symptoms: []schema.Symptom{
		schema.NewBoolSymptom("cough", true),
		schema.NewBoolSymptom("fever", true),
		schema.NewFloatSymptom("temperature", 100.4),
	},
}

type ingesterFixture struct {
	ingester    *Ingester
	monitorees  *mocks.MockMonitoree
	assessments *mocks.MockAssessment
	thresholds  *mocks.MockThresholdCondition
}

func newIngesterFixture(t *testing.T) *ingesterFixture {
	ctrl := gomock.NewController(t)
	f := &ingesterFixture{
		monitorees:  mocks.NewMockMonitoree(ctrl),
		assessments: mocks.NewMockAssessment(ctrl),
		thresholds:  mocks.NewMockThresholdCondition(ctrl),
	}
	f.ingester = NewIngester(f.monitorees, f.assessments, f.thresholds, 15*time.Minute)
	return f
}

// expectCreate echoes stored assessments back
func (f *ingesterFixture) expectCreate(times int) {
	f.assessments.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a schema.Assessment) (*schema.Assessment, error) {
			a.ID = "a-" + a.PatientID
			return &a, nil
		}).Times(times)
}

func reporter() schema.Monitoree {
	return schema.Monitoree{ID: "m1", ResponderID: "m1", SubmissionToken: "token-1", Monitoring: true}
}

func TestIngestMalformed(t *testing.T) {
	f := newIngesterFixture(t)

	_, err := f.ingester.Ingest(context.Background(), []byte("{not json"), testNow)
	assert.ErrorIs(t, err, ErrMalformedMessage)
	assert.True(t, IsDrop(err))
}

func TestIngestUnknownToken(t *testing.T) {
	f := newIngesterFixture(t)

	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "nope").Return(nil, store.ErrMonitoreeNotFound)

	_, err := f.ingester.Ingest(context.Background(), []byte(`{"patient_submission_token":"nope","threshold_condition_hash":"h1"}`), testNow)
	assert.ErrorIs(t, err, ErrUnknownSubmissionToken)
}

func TestIngestUnknownThreshold(t *testing.T) {
	f := newIngesterFixture(t)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h2").Return(nil, store.ErrThresholdNotFound)

	_, err := f.ingester.Ingest(context.Background(), []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h2"}`), testNow)
	assert.ErrorIs(t, err, ErrUnknownThreshold)
}

func TestIngestStoreFailureIsNotDropped(t *testing.T) {
	f := newIngesterFixture(t)

	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(nil, fmt.Errorf("server selection timeout"))

	_, err := f.ingester.Ingest(context.Background(), []byte(`{"patient_submission_token":"token-1"}`), testNow)
	assert.Error(t, err)
	assert.False(t, IsDrop(err))
}

func TestIngestDeduplicates(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1","reported_symptoms_array":[{"name":"cough","type":"BoolSymptom","value":false}]}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil).Times(2)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.expectCreate(1)

	var stored *schema.Assessment
	gomock.InOrder(
		f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound),
		f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").DoAndReturn(func(context.Context, string) (*schema.Assessment, error) {
			return stored, nil
		}),
	)

	first, err := f.ingester.Ingest(context.Background(), raw, testNow)
	require.NoError(t, err)
	require.Len(t, first, 1)
	stored = &first[0]

	second, err := f.ingester.Ingest(context.Background(), raw, testNow.Add(14*time.Minute))
	assert.ErrorIs(t, err, ErrDuplicateReport)
	assert.Empty(t, second)
}

func TestIngestStructuredReport(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1","experiencing_symptoms":false,
		"reported_symptoms_array":[
			{"name":"cough","label":"Cough","type":"BoolSymptom","value":true},
			{"name":"temperature","label":"Temperature","type":"FloatSymptom","value":99.1}
		]}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(&schema.Assessment{CreatedAt: testNow.Add(-15 * time.Minute)}, nil)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.expectCreate(1)
	f.monitorees.EXPECT().SetSymptomOnset(gomock.Any(), "m1", time.Date(2020, 5, 26, 0, 0, 0, 0, time.UTC)).Return(true, nil)

	assessments, err := f.ingester.Ingest(context.Background(), raw, testNow)
	require.NoError(t, err)
	require.Len(t, assessments, 1)

	a := assessments[0]
	assert.Equal(t, "m1", a.PatientID)
	assert.True(t, a.Symptomatic)
	assert.Equal(t, schema.ReporterMonitoree, a.WhoReported)
	assert.Equal(t, "h1", a.ReportedCondition.ThresholdConditionHash)
	assert.Len(t, a.ReportedCondition.Symptoms, 2)
	assert.True(t, testNow.Equal(a.CreatedAt))
}

func TestIngestStructuredReportNotSymptomatic(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1",
		"reported_symptoms_array":[{"name":"cough","type":"BoolSymptom","value":false}]}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.expectCreate(1)

	assessments, err := f.ingester.Ingest(context.Background(), raw, testNow)
	require.NoError(t, err)
	assert.False(t, assessments[0].Symptomatic)
}

func TestIngestStructuredReportUnknownType(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1",
		"reported_symptoms_array":[{"name":"cough","type":"StringSymptom","value":"yes"}]}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)

	_, err := f.ingester.Ingest(context.Background(), raw, testNow)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func household() []schema.Monitoree {
	head := reporter()
	onset := testNow.AddDate(0, 0, -3)
	return []schema.Monitoree{
		head,
		{ID: "m2", ResponderID: "m1", SubmissionToken: "token-2", Monitoring: true},
		{ID: "m3", ResponderID: "m1", SubmissionToken: "token-3", Monitoring: true, SymptomOnset: &onset},
	}
}

func TestIngestFanOutExperiencingSymptoms(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1","experiencing_symptoms":true}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.monitorees.EXPECT().ListDependents(gomock.Any(), "m1").Return(household(), nil)
	f.expectCreate(3)
	f.monitorees.EXPECT().SetSymptomOnset(gomock.Any(), "m1", gomock.Any()).Return(true, nil)
	f.monitorees.EXPECT().SetSymptomOnset(gomock.Any(), "m2", gomock.Any()).Return(true, nil)

	assessments, err := f.ingester.Ingest(context.Background(), raw, testNow)
	require.NoError(t, err)
	require.Len(t, assessments, 3)

	who := map[string]string{}
	for _, a := range assessments {
		who[a.PatientID] = a.WhoReported
		assert.True(t, a.Symptomatic)
		require.Len(t, a.ReportedCondition.Symptoms, 3)
		for i, s := range a.ReportedCondition.Symptoms {
			_, set := s.Value()
			assert.False(t, set)
			assert.Equal(t, testCondition.Symptoms[i].Type, s.Type)
		}
	}
	assert.Equal(t, map[string]string{
		"m1": schema.ReporterMonitoree,
		"m2": schema.ReporterProxy,
		"m3": schema.ReporterProxy,
	}, who)
}

func TestIngestFanOutNotExperiencingSymptoms(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1","experiencing_symptoms":false}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.monitorees.EXPECT().ListDependents(gomock.Any(), "m1").Return(household()[1:], nil)
	f.expectCreate(3)

	assessments, err := f.ingester.Ingest(context.Background(), raw, testNow)
	require.NoError(t, err)
	require.Len(t, assessments, 3)

	for _, a := range assessments {
		assert.False(t, a.Symptomatic)
		cough, ok := a.ReportedCondition.Symptom("cough")
		require.True(t, ok)
		assert.False(t, *cough.BoolValue)
		temperature, ok := a.ReportedCondition.Symptom("temperature")
		require.True(t, ok)
		assert.Nil(t, temperature.FloatValue)
	}
	assert.Equal(t, "m1", assessments[0].PatientID)
	assert.Equal(t, schema.ReporterMonitoree, assessments[0].WhoReported)
}

func TestIngestWriteResumesPendingAssessments(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1","experiencing_symptoms":false}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)
	f.monitorees.EXPECT().ListDependents(gomock.Any(), "m1").Return(household()[1:], nil)

	report, err := f.ingester.Prepare(context.Background(), raw, testNow)
	require.NoError(t, err)
	assert.False(t, report.Done())

	gomock.InOrder(
		f.assessments.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a schema.Assessment) (*schema.Assessment, error) {
				return &a, nil
			}),
		f.assessments.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("transient write error")),
	)
	assert.Error(t, f.ingester.Write(context.Background(), report))
	require.Len(t, report.Written(), 1)
	assert.Equal(t, "m1", report.Written()[0].PatientID)

	f.expectCreate(2)
	require.NoError(t, f.ingester.Write(context.Background(), report))
	assert.True(t, report.Done())

	ids := lo.Map(report.Written(), func(a schema.Assessment, _ int) string {
		return a.PatientID
	})
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids)
}

func TestIngestStructuredReportInvalidValue(t *testing.T) {
	f := newIngesterFixture(t)
	raw := []byte(`{"patient_submission_token":"token-1","threshold_condition_hash":"h1",
		"reported_symptoms_array":[{"name":"pulse","type":"IntegerSymptom","value":1.7}]}`)

	m := reporter()
	f.monitorees.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&m, nil)
	f.assessments.EXPECT().LatestAssessment(gomock.Any(), "m1").Return(nil, store.ErrAssessmentNotFound)
	f.thresholds.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&testCondition, nil)

	_, err := f.ingester.Ingest(context.Background(), raw, testNow)
	assert.ErrorIs(t, err, ErrMalformedMessage)
	assert.True(t, IsDrop(err))
}
