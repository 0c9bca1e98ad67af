package reminder

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Bialogs/SaraAlert/schema"
)

type stateZone struct {
	name string
	abbr string
	zone string
}

var stateZones = []stateZone{
	{"Alabama", "AL", "America/Chicago"},
	{"Alaska", "AK", "America/Anchorage"},
	{"Arizona", "AZ", "America/Phoenix"},
	{"Arkansas", "AR", "America/Chicago"},
	{"California", "CA", "America/Los_Angeles"},
	{"Colorado", "CO", "America/Denver"},
	{"Connecticut", "CT", "America/New_York"},
	{"Delaware", "DE", "America/New_York"},
	{"District of Columbia", "DC", "America/New_York"},
	{"Florida", "FL", "America/New_York"},
	{"Georgia", "GA", "America/New_York"},
	{"Hawaii", "HI", "Pacific/Honolulu"},
	{"Idaho", "ID", "America/Boise"},
	{"Illinois", "IL", "America/Chicago"},
	{"Indiana", "IN", "America/Indiana/Indianapolis"},
	{"Iowa", "IA", "America/Chicago"},
	{"Kansas", "KS", "America/Chicago"},
	{"Kentucky", "KY", "America/Kentucky/Louisville"},
	{"Louisiana", "LA", "America/Chicago"},
	{"Maine", "ME", "America/New_York"},
	{"Maryland", "MD", "America/New_York"},
	{"Massachusetts", "MA", "America/New_York"},
	{"Michigan", "MI", "America/Detroit"},
	{"Minnesota", "MN", "America/Chicago"},
	{"Mississippi", "MS", "America/Chicago"},
	{"Missouri", "MO", "America/Chicago"},
	{"Montana", "MT", "America/Denver"},
	{"Nebraska", "NE", "America/Chicago"},
	{"Nevada", "NV", "America/Los_Angeles"},
	{"New Hampshire", "NH", "America/New_York"},
	{"New Jersey", "NJ", "America/New_York"},
	{"New Mexico", "NM", "America/Denver"},
	{"New York", "NY", "America/New_York"},
	{"North Carolina", "NC", "America/New_York"},
	{"North Dakota", "ND", "America/Chicago"},
	{"Ohio", "OH", "America/New_York"},
	{"Oklahoma", "OK", "America/Chicago"},
	{"Oregon", "OR", "America/Los_Angeles"},
	{"Pennsylvania", "PA", "America/New_York"},
	{"Rhode Island", "RI", "America/New_York"},
	{"South Carolina", "SC", "America/New_York"},
	{"South Dakota", "SD", "America/Chicago"},
	{"Tennessee", "TN", "America/Chicago"},
	{"Texas", "TX", "America/Chicago"},
	{"Utah", "UT", "America/Denver"},
	{"Vermont", "VT", "America/New_York"},
	{"Virginia", "VA", "America/New_York"},
	{"Washington", "WA", "America/Los_Angeles"},
	{"West Virginia", "WV", "America/New_York"},
	{"Wisconsin", "WI", "America/Chicago"},
	{"Wyoming", "WY", "America/Denver"},

	{"American Samoa", "AS", "Pacific/Pago_Pago"},
	{"Federated States of Micronesia", "FM", "Pacific/Pohnpei"},
	{"Guam", "GU", "Pacific/Guam"},
	{"Marshall Islands", "MH", "Pacific/Majuro"},
	{"Northern Mariana Islands", "MP", "Pacific/Saipan"},
	{"Palau", "PW", "Pacific/Palau"},
	{"Puerto Rico", "PR", "America/Puerto_Rico"},
	{"Virgin Islands", "VI", "America/St_Thomas"},
}

// zoneName accepts both the full name and the postal abbreviation of a state
func zoneName(state string) (string, bool) {
	state = strings.TrimSpace(state)
	if state == "" {
		return "", false
	}
	for _, z := range stateZones {
		if strings.EqualFold(z.name, state) || strings.EqualFold(z.abbr, state) {
			return z.zone, true
		}
	}
	return "", false
}

// TimezoneForState returns the time zone of a US state or territory
func TimezoneForState(state string) (*time.Location, bool) {
	name, ok := zoneName(state)
	if !ok {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// LocationOf returns the local time zone of a monitoree. The monitored address
// wins over the home address and fallback is used when neither is known.
func LocationOf(m schema.Monitoree, fallback *time.Location) *time.Location {
	for _, state := range []string{m.MonitoredAddressState, m.AddressState} {
		if loc, ok := TimezoneForState(state); ok {
			return loc
		}
	}
	if fallback == nil {
		return time.UTC
	}
	return fallback
}

type hourBand struct {
	from int
	to   int
}

var contactTimeBands = map[schema.ContactTime]hourBand{
	schema.ContactTimeMorning:   {8, 12},
	schema.ContactTimeAfternoon: {12, 16},
	schema.ContactTimeEvening:   {16, 20},
}

// InContactWindow tells whether the local hour falls in the preferred contact
// time. Without a known preference any hour is fine.
func InContactWindow(preferred schema.ContactTime, hour int) bool {
	band, ok := contactTimeBands[preferred]
	if !ok {
		return true
	}
	return hour >= band.from && hour < band.to
}
