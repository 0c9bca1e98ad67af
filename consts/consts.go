package consts

import "time"

const (
	// ReportingPeriodMinutes is how long a monitoree may go without reporting
	// before it is considered non-reporting
	ReportingPeriodMinutes = 1440

	// ReportingLimitMinutes is the minimum gap between two accepted assessments
	ReportingLimitMinutes = 15

	TestBasedWindow          = 24 * time.Hour
	NonTestBasedWindow       = 72 * time.Hour
	IsolationReportingWindow = 24 * time.Hour
	SymptomOnsetDelay        = 10 * 24 * time.Hour

	// MaxNegativeLabs bounds the negative lab results for the test based review
	MaxNegativeLabs = 2

	// ReminderInterval is the minimum gap between two report reminders
	ReminderInterval = 12 * time.Hour

	// MonitoringPeriodDays is used for the end of monitoring date
	MonitoringPeriodDays = 14
)

const (
	FeverSymptom           = "fever"
	FeverMedicationSymptom = "used-a-fever-reducer"
)

const (
	DefaultTimezone = "America/New_York"
	DefaultLanguage = "en"
)
