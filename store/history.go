package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/schema"
)

type History interface {
	AddHistory(ctx context.Context, h schema.History) error
	ListHistories(ctx context.Context, patientID string) ([]schema.History, error)
}

// AddHistory appends an audit record
func (m *mongoDB) AddHistory(ctx context.Context, h schema.History) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if h.PatientID == "" {
		return fmt.Errorf("patient_id should not be empty")
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	h.CreatedAt = h.CreatedAt.UTC()

	_, err := m.collection(schema.HistoryCollection).InsertOne(ctx, &h)
	return err
}

func (m *mongoDB) ListHistories(ctx context.Context, patientID string) ([]schema.History, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := m.collection(schema.HistoryCollection).Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}

	histories := make([]schema.History, 0)
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}
