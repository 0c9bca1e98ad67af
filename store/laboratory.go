package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Bialogs/SaraAlert/schema"
)

type Laboratory interface {
	AddLaboratory(ctx context.Context, l schema.Laboratory) error
	CountNegativeLabs(ctx context.Context, patientID string) (int, error)
	CountNegativeLabsByPatients(ctx context.Context, patientIDs []string) (map[string]int, error)
}

func (m *mongoDB) AddLaboratory(ctx context.Context, l schema.Laboratory) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	_, err := m.collection(schema.LaboratoryCollection).InsertOne(ctx, &l)
	return err
}

func (m *mongoDB) CountNegativeLabs(ctx context.Context, patientID string) (int, error) {
	counts, err := m.CountNegativeLabsByPatients(ctx, []string{patientID})
	if err != nil {
		return 0, err
	}
	return counts[patientID], nil
}

// CountNegativeLabsByPatients counts negative lab results per monitoree.
// Monitorees without any negative result are absent from the map.
func (m *mongoDB) CountNegativeLabsByPatients(ctx context.Context, patientIDs []string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	counts := make(map[string]int)
	if len(patientIDs) == 0 {
		return counts, nil
	}

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"patient_id": bson.M{"$in": lo.Uniq(patientIDs)},
				"result":     schema.LabResultNegative,
			},
		},
		{
			"$group": bson.M{
				"_id":   "$patient_id",
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cursor, err := m.collection(schema.LaboratoryCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []struct {
		PatientID string `bson:"_id"`
		Count     int    `bson:"count"`
	}
	// All closes the cursor on every return
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	for _, result := range results {
		counts[result.PatientID] = result.Count
	}
	return counts, nil
}
