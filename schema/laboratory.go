package schema

import "time"

const (
	LaboratoryCollection = "laboratories"
)

const (
	LabResultPositive = "positive"
	LabResultNegative = "negative"
)

type Laboratory struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	PatientID          string     `json:"patient_id" bson:"patient_id"`
	LabType            string     `json:"lab_type" bson:"lab_type"`
	Result             string     `json:"result" bson:"result"`
	SpecimenCollection *time.Time `json:"specimen_collection,omitempty" bson:"specimen_collection,omitempty"`
	ReportedAt         *time.Time `json:"report,omitempty" bson:"report,omitempty"`
	CreatedAt          time.Time  `json:"created_at" bson:"created_at"`
}
