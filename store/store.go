package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 5 * time.Second
	mongoLogPrefix = "mongo"
)

var (
	ErrMonitoreeNotFound  = fmt.Errorf("monitoree not found")
	ErrThresholdNotFound  = fmt.Errorf("threshold condition not found")
	ErrAssessmentNotFound = fmt.Errorf("assessment not found")
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/Bialogs/SaraAlert/store Assessment,History,Laboratory,MongoStore,Monitoree,Subjects,ThresholdCondition,Transfer

// MongoStore is the full storage surface of the service
type MongoStore interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	Monitoree
	Assessment
	ThresholdCondition
	History
	Laboratory
	Transfer
	Subjects
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *mongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
