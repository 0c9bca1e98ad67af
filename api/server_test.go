package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bialogs/SaraAlert/api/mocks"
	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/ingest"
	"github.com/Bialogs/SaraAlert/reminder"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
	storeMocks "github.com/Bialogs/SaraAlert/store/mocks"
)

// 11:00 in New York
var testNow = time.Date(2020, 5, 26, 15, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router    *gin.Engine
	store     *storeMocks.MockMongoStore
	reminders *mocks.MockReminderSender
	publisher *mocks.MockReportPublisher
}

func newAPIFixture(t *testing.T) *apiFixture {
	ctrl := gomock.NewController(t)
	f := &apiFixture{
		store:     storeMocks.NewMockMongoStore(ctrl),
		reminders: mocks.NewMockReminderSender(ctrl),
		publisher: mocks.NewMockReportPublisher(ctrl),
	}

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := NewServer(f.store, classify.New(classify.DefaultConfig()), f.reminders, f.publisher, loc, false)
	s.clock = func() time.Time { return testNow }
	f.router = s.setupRouter()
	return f
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) int {
	body := decode(t, w)
	e, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	return int(e["code"].(float64))
}

func subject(id string, isolation bool, assessments ...schema.Assessment) classify.Subject {
	return classify.Subject{
		Monitoree: schema.Monitoree{
			ID:                 id,
			ResponderID:        id,
			FirstName:          "Ada",
			LastName:           "Lovelace",
			Monitoring:         true,
			Isolation:          isolation,
			PublicHealthAction: schema.PublicHealthActionNone,
			AddressState:       "New York",
			CreatedAt:          testNow.AddDate(0, 0, -5),
		},
		Assessments:      assessments,
		NegativeLabCount: 3,
	}
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)

	f.store.EXPECT().Ping(gomock.Any()).Return(fmt.Errorf("no reachable servers"))
	w := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, errorStoreUnavailable.Code, errorCode(t, w))
}

func TestMonitoreeStatus(t *testing.T) {
	f := newAPIFixture(t)

	s := subject("m1", false, schema.Assessment{PatientID: "m1", Symptomatic: true, CreatedAt: testNow.AddDate(0, 0, -4)})
	f.store.EXPECT().LoadSubject(gomock.Any(), "m1", testNow).Return(&s, nil)

	w := f.do(http.MethodGet, "/api/monitorees/m1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)

	result := decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "symptomatic", result["status"])
	assert.Equal(t, "m1", result["id"])
}

func TestMonitoreeStatusNotFound(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().LoadSubject(gomock.Any(), "nope", testNow).Return(nil, store.ErrMonitoreeNotFound)

	w := f.do(http.MethodGet, "/api/monitorees/nope/status", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errorMonitoreeNotFound.Code, errorCode(t, w))
}

func TestMonitoreeDetail(t *testing.T) {
	f := newAPIFixture(t)

	exposure := time.Date(2020, 5, 20, 0, 0, 0, 0, time.UTC)
	s := subject("m1", false, schema.Assessment{PatientID: "m1", CreatedAt: testNow.Add(-time.Hour)})
	s.Monitoree.LastDateOfExposure = &exposure

	f.store.EXPECT().LoadSubject(gomock.Any(), "m1", testNow).Return(&s, nil)
	f.store.EXPECT().LatestTransfer(gomock.Any(), "m1").Return(&schema.Transfer{
		PatientID:        "m1",
		FromJurisdiction: "USA, State 1",
		CreatedAt:        testNow.AddDate(0, 0, -1),
	}, nil)

	w := f.do(http.MethodGet, "/api/monitorees/m1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	result := decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "Lovelace, Ada", result["name"])
	assert.Equal(t, "asymptomatic", result["status"])
	assert.Equal(t, "2020-06-03", result["end_of_monitoring"])
	assert.Equal(t, "USA, State 1", result["transferred_from"])
	assert.NotNil(t, result["latest_report"])
}

func TestListMonitorees(t *testing.T) {
	f := newAPIFixture(t)

	subjects := []classify.Subject{
		subject("reporting", true, schema.Assessment{PatientID: "reporting", CreatedAt: testNow.Add(-time.Hour)}),
		subject("silent", true),
	}
	f.store.EXPECT().LoadSubjects(gomock.Any(), store.MonitoreeFilter{Workflow: schema.WorkflowIsolation, ActiveOnly: true}, testNow).
		Return(subjects, nil).Times(2)

	w := f.do(http.MethodGet, "/api/monitorees?workflow=isolation&active=true&status=isolation_non_reporting", "")
	assert.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, []interface{}{"silent"}, result["ids"])

	w = f.do(http.MethodGet, "/api/monitorees?workflow=isolation&active=true&status=isolation%20reporting", "")
	assert.Equal(t, http.StatusOK, w.Code)
	result = decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, []interface{}{"reporting"}, result["ids"])
}

func TestListMonitoreesInvalidQuery(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/api/monitorees?status=sleeping", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorUnknownStatus.Code, errorCode(t, w))

	w = f.do(http.MethodGet, "/api/monitorees?workflow=quarantine", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorUnknownWorkflow.Code, errorCode(t, w))
}

func TestDashboard(t *testing.T) {
	f := newAPIFixture(t)

	closed := subject("closed", false)
	closed.Monitoree.Monitoring = false

	subjects := []classify.Subject{
		subject("today", false, schema.Assessment{PatientID: "today", CreatedAt: testNow.Add(-time.Hour)}),
		// 02:00 UTC is the evening before in New York
		subject("yesterday", false, schema.Assessment{PatientID: "yesterday", CreatedAt: time.Date(2020, 5, 26, 2, 0, 0, 0, time.UTC)}),
		subject("symptomatic", false, schema.Assessment{PatientID: "symptomatic", Symptomatic: true, CreatedAt: testNow.AddDate(0, 0, -3)}),
		closed,
	}
	f.store.EXPECT().LoadSubjects(gomock.Any(), store.MonitoreeFilter{Workflow: schema.WorkflowSurveillance}, testNow).Return(subjects, nil)

	w := f.do(http.MethodGet, "/api/dashboard?workflow=surveillance", "")
	assert.Equal(t, http.StatusOK, w.Code)

	result := decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, 4.0, result["total"])
	assert.Equal(t, map[string]interface{}{
		"asymptomatic": 2.0,
		"symptomatic":  1.0,
		"closed":       1.0,
	}, result["counts"])
	assert.Equal(t, map[string]interface{}{
		"reported":     1.0,
		"not_reported": 2.0,
	}, result["reporting_summary"])
}

func TestSendReminder(t *testing.T) {
	f := newAPIFixture(t)

	s := subject("m1", false)
	f.store.EXPECT().LoadSubject(gomock.Any(), "m1", testNow).Return(&s, nil).Times(2)

	f.reminders.EXPECT().Send(gomock.Any(), s, testNow, true).Return(reminder.OutcomeSent, nil)
	w := f.do(http.MethodPost, "/api/monitorees/m1/reminders?force=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "sent", result["outcome"])

	f.reminders.EXPECT().Send(gomock.Any(), s, testNow, false).Return(reminder.OutcomeFailed, fmt.Errorf("queue unavailable"))
	w = f.do(http.MethodPost, "/api/monitorees/m1/reminders", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, errorDispatchFailed.Code, errorCode(t, w))
}

func TestSetNotifications(t *testing.T) {
	f := newAPIFixture(t)

	gomock.InOrder(
		f.store.EXPECT().SetPauseNotifications(gomock.Any(), "m1", true).Return(nil),
		f.store.EXPECT().AddHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h schema.History) error {
			assert.Equal(t, schema.HistoryTypeMonitoringChange, h.HistoryType)
			assert.Equal(t, "User paused notifications for this monitoree.", h.Comment)
			assert.Equal(t, "epi@example.com", h.CreatedBy)
			return nil
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/monitorees/m1/notifications", strings.NewReader(`{"pause":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requester", "epi@example.com")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/monitorees/m1/notifications", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateHistory(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetMonitoree(gomock.Any(), "m1").Return(&schema.Monitoree{ID: "m1"}, nil)
	f.store.EXPECT().AddHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h schema.History) error {
		assert.Equal(t, schema.HistoryTypeComment, h.HistoryType)
		assert.Equal(t, schema.SystemActor, h.CreatedBy)
		assert.Equal(t, "called, no answer", h.Comment)
		return nil
	})

	w := f.do(http.MethodPost, "/api/histories", `{"patient_id":"m1","comment":"called, no answer"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/histories", `{"patient_id":"m1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.store.EXPECT().GetMonitoree(gomock.Any(), "m9").Return(nil, store.ErrMonitoreeNotFound)
	w = f.do(http.MethodPost, "/api/histories", `{"patient_id":"m9","comment":"hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAssessment(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&schema.Monitoree{ID: "m1"}, nil)
	f.store.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&schema.ThresholdCondition{Hash: "h1"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m ingest.Message) error {
		assert.Equal(t, "token-1", m.SubmissionToken)
		assert.Equal(t, "h1", m.ThresholdConditionHash)
		assert.Len(t, m.ReportedSymptoms, 1)
		return nil
	})

	w := f.do(http.MethodPost, "/api/assessments/token-1",
		`{"threshold_condition_hash":"h1","reported_symptoms_array":[{"name":"cough","type":"BoolSymptom","value":true}]}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSubmitAssessmentRejected(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPost, "/api/assessments/token-1",
		`{"threshold_condition_hash":"h1","reported_symptoms_array":[{"name":"cough","type":"TextSymptom","value":"a bit"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.store.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "stale").Return(nil, store.ErrMonitoreeNotFound)
	w = f.do(http.MethodPost, "/api/assessments/stale", `{"threshold_condition_hash":"h1","experiencing_symptoms":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errorInvalidToken.Code, errorCode(t, w))

	f.store.EXPECT().GetMonitoreeBySubmissionToken(gomock.Any(), "token-1").Return(&schema.Monitoree{ID: "m1"}, nil)
	f.store.EXPECT().GetThresholdCondition(gomock.Any(), "h1").Return(&schema.ThresholdCondition{Hash: "h1"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("leader not available"))
	w = f.do(http.MethodPost, "/api/assessments/token-1", `{"threshold_condition_hash":"h1","experiencing_symptoms":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
