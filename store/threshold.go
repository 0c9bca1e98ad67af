package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/schema"
)

type ThresholdCondition interface {
	GetThresholdCondition(ctx context.Context, hash string) (*schema.ThresholdCondition, error)
	UpsertThresholdCondition(ctx context.Context, t schema.ThresholdCondition) error
}

func (m *mongoDB) GetThresholdCondition(ctx context.Context, hash string) (*schema.ThresholdCondition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t schema.ThresholdCondition
	if err := m.collection(schema.ThresholdConditionCollection).FindOne(ctx, bson.M{"hash": hash}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrThresholdNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (m *mongoDB) UpsertThresholdCondition(ctx context.Context, t schema.ThresholdCondition) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	update := bson.M{
		"$set": bson.M{
			"symptoms": t.Symptoms,
		},
		"$setOnInsert": bson.M{
			"hash": t.Hash,
		},
	}
	_, err := m.collection(schema.ThresholdConditionCollection).UpdateOne(ctx, bson.M{"hash": t.Hash}, update, opts)
	return err
}
