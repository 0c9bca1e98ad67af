package schema

import "strings"

type Status string

const (
	StatusPUI                   Status = "pui"
	StatusPurged                Status = "purged"
	StatusClosed                Status = "closed"
	StatusSymptomatic           Status = "symptomatic"
	StatusAsymptomatic          Status = "asymptomatic"
	StatusNonReporting          Status = "non_reporting"
	StatusIsolationTestBased    Status = "isolation_test_based"
	StatusIsolationNonTestBased Status = "isolation_non_test_based"
	StatusIsolationNonReporting Status = "isolation_non_reporting"
	StatusIsolationReporting    Status = "isolation_reporting"
	StatusUnknown               Status = "unknown"
)

// AllStatuses lists every status a monitoree can be classified into
var AllStatuses = []Status{
	StatusPUI,
	StatusPurged,
	StatusClosed,
	StatusSymptomatic,
	StatusAsymptomatic,
	StatusNonReporting,
	StatusIsolationTestBased,
	StatusIsolationNonTestBased,
	StatusIsolationNonReporting,
	StatusIsolationReporting,
	StatusUnknown,
}

// Humanize renders the status the way the linelist shows it
func (s Status) Humanize() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// ParseStatus accepts both the status name and its humanized form
func ParseStatus(v string) (Status, bool) {
	v = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "_")
	v = strings.ReplaceAll(v, "-", "_")
	for _, s := range AllStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}
