package schema

type SymptomType string

const (
	BoolSymptom  SymptomType = "BoolSymptom"
	FloatSymptom SymptomType = "FloatSymptom"
	IntSymptom   SymptomType = "IntegerSymptom"
)

// Symptom is a tagged value reported for a single symptom. Exactly one of the
// payload fields matches Type; a nil payload means the value is blank.
type Symptom struct {
	Name       string      `json:"name" bson:"name"`
	Label      string      `json:"label" bson:"label"`
	Notes      string      `json:"notes" bson:"notes"`
	Type       SymptomType `json:"type" bson:"type"`
	BoolValue  *bool       `json:"bool_value,omitempty" bson:"bool_value,omitempty"`
	FloatValue *float64    `json:"float_value,omitempty" bson:"float_value,omitempty"`
	IntValue   *int        `json:"int_value,omitempty" bson:"int_value,omitempty"`
}

func NewBoolSymptom(name string, v bool) Symptom {
	return Symptom{Name: name, Type: BoolSymptom, BoolValue: &v}
}

func NewFloatSymptom(name string, v float64) Symptom {
	return Symptom{Name: name, Type: FloatSymptom, FloatValue: &v}
}

func NewIntSymptom(name string, v int) Symptom {
	return Symptom{Name: name, Type: IntSymptom, IntValue: &v}
}

// Value returns the typed payload of the symptom and whether it is set
func (s Symptom) Value() (interface{}, bool) {
	switch s.Type {
	case BoolSymptom:
		if s.BoolValue != nil {
			return *s.BoolValue, true
		}
	case FloatSymptom:
		if s.FloatValue != nil {
			return *s.FloatValue, true
		}
	case IntSymptom:
		if s.IntValue != nil {
			return *s.IntValue, true
		}
	}
	return nil, false
}

// Blank returns a copy of the symptom with its payload removed
func (s Symptom) Blank() Symptom {
	s.BoolValue = nil
	s.FloatValue = nil
	s.IntValue = nil
	return s
}

// IsTrue reports whether a bool symptom is set and true
func (s Symptom) IsTrue() bool {
	return s.Type == BoolSymptom && s.BoolValue != nil && *s.BoolValue
}

// ThresholdCondition is the symptom combination that marks a report symptomatic.
type ThresholdCondition struct {
	Hash     string    `json:"threshold_condition_hash" bson:"hash"`
	Symptoms []Symptom `json:"symptoms" bson:"symptoms"`
}

// ReportedCondition is the symptom payload attached to an assessment.
type ReportedCondition struct {
	ThresholdConditionHash string    `json:"threshold_condition_hash" bson:"threshold_condition_hash"`
	Symptoms               []Symptom `json:"symptoms" bson:"symptoms"`
}

// Symptom looks up a reported symptom by name
func (r ReportedCondition) Symptom(name string) (Symptom, bool) {
	for _, s := range r.Symptoms {
		if s.Name == name {
			return s, true
		}
	}
	return Symptom{}, false
}
