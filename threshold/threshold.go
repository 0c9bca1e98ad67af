package threshold

import (
	"fmt"
	"math"

	"github.com/Bialogs/SaraAlert/schema"
)

var (
	ErrUnknownSymptomType  = fmt.Errorf("unknown symptom type")
	ErrInvalidSymptomValue = fmt.Errorf("invalid symptom value")
)

// RawSymptom is a symptom as it arrives in reported_symptoms_array
type RawSymptom struct {
	Name  string      `json:"name"`
	Label string      `json:"label"`
	Notes string      `json:"notes"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Symptomatic tells whether the reported symptoms meet the threshold condition.
// A bool symptom matches when it equals a true threshold value, a numeric one
// when it reaches the threshold value. Blank values never match.
func Symptomatic(t schema.ThresholdCondition, reported []schema.Symptom) bool {
	rc := schema.ReportedCondition{Symptoms: reported}
	for _, ts := range t.Symptoms {
		rs, ok := rc.Symptom(ts.Name)
		if !ok || rs.Type != ts.Type {
			continue
		}
		if matches(ts, rs) {
			return true
		}
	}
	return false
}

func matches(ts, rs schema.Symptom) bool {
	switch ts.Type {
	case schema.BoolSymptom:
		if ts.BoolValue == nil || rs.BoolValue == nil {
			return false
		}
		return *ts.BoolValue && *rs.BoolValue == *ts.BoolValue
	case schema.FloatSymptom:
		if ts.FloatValue == nil || rs.FloatValue == nil {
			return false
		}
		return *rs.FloatValue >= *ts.FloatValue
	case schema.IntSymptom:
		if ts.IntValue == nil || rs.IntValue == nil {
			return false
		}
		return *rs.IntValue >= *ts.IntValue
	}
	return false
}

// CloneRemoveValues copies the threshold symptoms with every value blanked.
// A report built from it reads as "needs follow up" instead of a negative.
func CloneRemoveValues(t schema.ThresholdCondition) []schema.Symptom {
	symptoms := make([]schema.Symptom, 0, len(t.Symptoms))
	for _, s := range t.Symptoms {
		symptoms = append(symptoms, s.Blank())
	}
	return symptoms
}

// CloneNegateBoolValues copies the threshold symptoms with bool values inverted.
// Numeric values can not be inferred and are blanked.
func CloneNegateBoolValues(t schema.ThresholdCondition) []schema.Symptom {
	symptoms := make([]schema.Symptom, 0, len(t.Symptoms))
	for _, s := range t.Symptoms {
		if s.Type == schema.BoolSymptom && s.BoolValue != nil {
			v := !*s.BoolValue
			s.BoolValue = &v
			symptoms = append(symptoms, s)
			continue
		}
		symptoms = append(symptoms, s.Blank())
	}
	return symptoms
}

// BuildSymptoms converts inbound symptoms into typed symptoms
func BuildSymptoms(raw []RawSymptom) ([]schema.Symptom, error) {
	symptoms := make([]schema.Symptom, 0, len(raw))
	for _, r := range raw {
		s := schema.Symptom{
			Name:  r.Name,
			Label: r.Label,
			Notes: r.Notes,
			Type:  schema.SymptomType(r.Type),
		}
		switch s.Type {
		case schema.BoolSymptom, schema.FloatSymptom, schema.IntSymptom:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymptomType, r.Type)
		}

		// a missing value leaves the symptom blank
		if r.Value != nil {
			if err := setValue(&s, r.Value); err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrInvalidSymptomValue, r.Name, err)
			}
		}
		symptoms = append(symptoms, s)
	}
	return symptoms, nil
}

func setValue(s *schema.Symptom, value interface{}) error {
	switch s.Type {
	case schema.BoolSymptom:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%v is not a bool", value)
		}
		s.BoolValue = &v
	case schema.FloatSymptom:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%v is not a number", value)
		}
		s.FloatValue = &v
	case schema.IntSymptom:
		// json numbers decode into float64
		v, ok := value.(float64)
		if !ok || v != math.Trunc(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%v is not an integer", value)
		}
		i := int(v)
		s.IntValue = &i
	}
	return nil
}
