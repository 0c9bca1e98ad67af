package schema

import "time"

const (
	ThresholdConditionCollection = "thresholdConditions"
	AssessmentCollection         = "assessments"
)

const (
	ReporterMonitoree = "Monitoree"
	ReporterProxy     = "Proxy"
)

// Assessment is a single symptom report. It is never modified once written.
type Assessment struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	PatientID         string            `json:"patient_id" bson:"patient_id"`
	Symptomatic       bool              `json:"symptomatic" bson:"symptomatic"`
	WhoReported       string            `json:"who_reported" bson:"who_reported"`
	ReportedCondition ReportedCondition `json:"reported_condition" bson:"reported_condition"`
	CreatedAt         time.Time         `json:"created_at" bson:"created_at"`
}

// ReportsTrue tells whether the assessment reports the bool symptom as present
func (a Assessment) ReportsTrue(symptom string) bool {
	s, ok := a.ReportedCondition.Symptom(symptom)
	return ok && s.IsTrue()
}
