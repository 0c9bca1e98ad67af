package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/schema"
)

type Transfer interface {
	AddTransfer(ctx context.Context, t schema.Transfer) error
	LatestTransfer(ctx context.Context, patientID string) (*schema.Transfer, error)
}

func (m *mongoDB) AddTransfer(ctx context.Context, t schema.Transfer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := m.collection(schema.TransferCollection).InsertOne(ctx, &t)
	return err
}

// LatestTransfer returns nil without error when the monitoree was never transferred
func (m *mongoDB) LatestTransfer(ctx context.Context, patientID string) (*schema.Transfer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var t schema.Transfer
	if err := m.collection(schema.TransferCollection).FindOne(ctx, bson.M{"patient_id": patientID}, opts).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
