package schema

import (
	"time"
)

const (
	MonitoreeCollection = "monitorees"
)

// PublicHealthActionNone is the sentinel value meaning there is no open PUI action
const PublicHealthActionNone = "None"

const (
	ContactMethodSMSText    = "SMS Text-message"
	ContactMethodSMSWeblink = "SMS Texted Weblink"
	ContactMethodTelephone  = "Telephone call"
	ContactMethodEmail      = "E-mailed Web Link"
)

type ContactTime string

const (
	ContactTimeMorning   ContactTime = "Morning"
	ContactTimeAfternoon ContactTime = "Afternoon"
	ContactTimeEvening   ContactTime = "Evening"
)

type Workflow string

const (
	WorkflowSurveillance Workflow = "surveillance"
	WorkflowIsolation    Workflow = "isolation"
)

// Monitoree is a person under public health symptom surveillance.
type Monitoree struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	ResponderID     string `json:"responder_id" bson:"responder_id"`
	SubmissionToken string `json:"-" bson:"submission_token"`
	JurisdictionID  string `json:"jurisdiction_id" bson:"jurisdiction_id"`

	FirstName        string     `json:"first_name" bson:"first_name"`
	LastName         string     `json:"last_name" bson:"last_name"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	PrimaryLanguage  string     `json:"primary_language" bson:"primary_language"`
	Email            string     `json:"email" bson:"email"`
	PrimaryTelephone string     `json:"primary_telephone" bson:"primary_telephone"`

	PreferredContactMethod string      `json:"preferred_contact_method" bson:"preferred_contact_method"`
	PreferredContactTime   ContactTime `json:"preferred_contact_time" bson:"preferred_contact_time"`
	AddressState           string      `json:"address_state" bson:"address_state"`
	MonitoredAddressState  string      `json:"monitored_address_state" bson:"monitored_address_state"`

	Isolation          bool   `json:"isolation" bson:"isolation"`
	Monitoring         bool   `json:"monitoring" bson:"monitoring"`
	Purged             bool   `json:"purged" bson:"purged"`
	PauseNotifications bool   `json:"pause_notifications" bson:"pause_notifications"`
	PublicHealthAction string `json:"public_health_action" bson:"public_health_action"`

	MonitoringReason       string `json:"monitoring_reason" bson:"monitoring_reason"`
	MonitoringPlan         string `json:"monitoring_plan" bson:"monitoring_plan"`
	ExposureRiskAssessment string `json:"exposure_risk_assessment" bson:"exposure_risk_assessment"`

	SymptomOnset               *time.Time `json:"symptom_onset,omitempty" bson:"symptom_onset,omitempty"`
	LastDateOfExposure         *time.Time `json:"last_date_of_exposure,omitempty" bson:"last_date_of_exposure,omitempty"`
	LastAssessmentReminderSent *time.Time `json:"last_assessment_reminder_sent,omitempty" bson:"last_assessment_reminder_sent,omitempty"`

	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty" bson:"closed_at,omitempty"`
}

// Workflow returns the monitoring track the monitoree is in
func (m Monitoree) Workflow() Workflow {
	if m.Isolation {
		return WorkflowIsolation
	}
	return WorkflowSurveillance
}

// SelfReporterOrProxy tells whether this monitoree answers notifications for itself
// (and its dependents). Dependents are reached through their responder.
func (m Monitoree) SelfReporterOrProxy() bool {
	return m.ResponderID != "" && m.ResponderID == m.ID
}

// HasOpenAction tells whether a public health action is open for the monitoree
func (m Monitoree) HasOpenAction() bool {
	return m.PublicHealthAction != "" && m.PublicHealthAction != PublicHealthActionNone
}

// TimezoneState returns the state used to derive the local timezone of the monitoree
func (m Monitoree) TimezoneState() string {
	if m.MonitoredAddressState != "" {
		return m.MonitoredAddressState
	}
	return m.AddressState
}
