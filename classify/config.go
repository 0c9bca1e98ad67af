package classify

import (
	"fmt"
	"time"

	"github.com/Bialogs/SaraAlert/consts"
)

var (
	ErrInvalidWindow = fmt.Errorf("classification window must be positive")
)

// Config holds the time windows and thresholds the engine classifies with.
// It is passed by value and never changed after the engine is built.
type Config struct {
	ReportingPeriod          time.Duration
	ReportingLimit           time.Duration
	TestBasedWindow          time.Duration
	NonTestBasedWindow       time.Duration
	IsolationReportingWindow time.Duration
	SymptomOnsetDelay        time.Duration
	MaxNegativeLabs          int

	FeverSymptom           string
	FeverMedicationSymptom string
}

func DefaultConfig() Config {
	return Config{
		ReportingPeriod:          consts.ReportingPeriodMinutes * time.Minute,
		ReportingLimit:           consts.ReportingLimitMinutes * time.Minute,
		TestBasedWindow:          consts.TestBasedWindow,
		NonTestBasedWindow:       consts.NonTestBasedWindow,
		IsolationReportingWindow: consts.IsolationReportingWindow,
		SymptomOnsetDelay:        consts.SymptomOnsetDelay,
		MaxNegativeLabs:          consts.MaxNegativeLabs,
		FeverSymptom:             consts.FeverSymptom,
		FeverMedicationSymptom:   consts.FeverMedicationSymptom,
	}
}

func (c Config) Validate() error {
	windows := map[string]time.Duration{
		"reporting period":           c.ReportingPeriod,
		"reporting limit":            c.ReportingLimit,
		"test based window":          c.TestBasedWindow,
		"non test based window":      c.NonTestBasedWindow,
		"isolation reporting window": c.IsolationReportingWindow,
		"symptom onset delay":        c.SymptomOnsetDelay,
	}
	for name, w := range windows {
		if w <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidWindow, name)
		}
	}
	if c.MaxNegativeLabs < 0 {
		return fmt.Errorf("max negative labs should not be negative")
	}
	if c.FeverSymptom == "" || c.FeverMedicationSymptom == "" {
		return fmt.Errorf("fever symptom names should not be empty")
	}
	return nil
}
