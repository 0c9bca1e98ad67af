package schema

import "time"

const (
	HistoryCollection  = "histories"
	TransferCollection = "transfers"
)

const (
	HistoryTypeReportReminder   = "Report Reminder"
	HistoryTypeComment          = "Comment"
	HistoryTypeMonitoringChange = "Monitoring Change"
	HistoryTypeReportsReviewed  = "Reports Reviewed"
)

// SystemActor is the creator recorded on histories written by the service itself
const SystemActor = "Sara Alert System"

// History is an audit record. Histories are only ever appended.
type History struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PatientID   string    `json:"patient_id" bson:"patient_id"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	HistoryType string    `json:"history_type" bson:"history_type"`
	Comment     string    `json:"comment" bson:"comment"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Transfer records a jurisdiction hand-off of a monitoree
type Transfer struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	PatientID        string    `json:"patient_id" bson:"patient_id"`
	FromJurisdiction string    `json:"from_jurisdiction" bson:"from_jurisdiction"`
	ToJurisdiction   string    `json:"to_jurisdiction" bson:"to_jurisdiction"`
	Who              string    `json:"who" bson:"who"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
