package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const indexerLogPrefix = "indexer"

// MongoDBIndexer creates the indexes the service relies on
type MongoDBIndexer struct {
	connURI string
	dbName  string
}

func NewMongoDBIndexer(connURI, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI: connURI,
		dbName:  dbName,
	}
}

func (m *MongoDBIndexer) collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		MonitoreeCollection: {
			{
				Keys:    bson.D{{Key: "submission_token", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "responder_id", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "isolation", Value: 1}, {Key: "monitoring", Value: 1}, {Key: "purged", Value: 1}},
			},
		},
		AssessmentCollection: {
			{
				Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
		HistoryCollection: {
			{
				Keys: bson.D{{Key: "patient_id", Value: 1}},
			},
		},
		LaboratoryCollection: {
			{
				Keys: bson.D{{Key: "patient_id", Value: 1}},
			},
		},
		TransferCollection: {
			{
				Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
		ThresholdConditionCollection: {
			{
				Keys:    bson.D{{Key: "hash", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}
}

// IndexAll creates indexes for every collection
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		log.WithField("prefix", indexerLogPrefix).WithError(err).Error("connect mongo database")
		return err
	}
	defer client.Disconnect(context.Background())

	db := client.Database(m.dbName)
	for collection, indexes := range m.collectionIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			log.WithFields(log.Fields{
				"prefix":     indexerLogPrefix,
				"collection": collection,
				"error":      err,
			}).Error("create indexes")
			return err
		}
		log.WithField("prefix", indexerLogPrefix).WithField("collection", collection).Debug("indexes created")
	}

	return nil
}
