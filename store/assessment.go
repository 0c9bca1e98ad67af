package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/schema"
)

type Assessment interface {
	CreateAssessment(ctx context.Context, a schema.Assessment) (*schema.Assessment, error)
	LatestAssessment(ctx context.Context, patientID string) (*schema.Assessment, error)
	ListAssessments(ctx context.Context, patientID string, until time.Time) ([]schema.Assessment, error)
	ListAssessmentsByPatients(ctx context.Context, patientIDs []string, until time.Time) (map[string][]schema.Assessment, error)
}

// CreateAssessment writes an assessment together with its symptomatic flag.
// Assessments are never updated afterwards.
func (m *mongoDB) CreateAssessment(ctx context.Context, a schema.Assessment) (*schema.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	if _, err := m.collection(schema.AssessmentCollection).InsertOne(ctx, &a); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"patient_id": a.PatientID,
			"error":      err,
		}).Error("create assessment")
		return nil, err
	}

	return &a, nil
}

func (m *mongoDB) LatestAssessment(ctx context.Context, patientID string) (*schema.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var a schema.Assessment
	if err := m.collection(schema.AssessmentCollection).FindOne(ctx, bson.M{"patient_id": patientID}, opts).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

// ListAssessments returns the ledger of a monitoree up to and including until
func (m *mongoDB) ListAssessments(ctx context.Context, patientID string, until time.Time) ([]schema.Assessment, error) {
	assessments, err := m.ListAssessmentsByPatients(ctx, []string{patientID}, until)
	if err != nil {
		return nil, err
	}
	return assessments[patientID], nil
}

// ListAssessmentsByPatients loads the ledgers of many monitorees in one query
func (m *mongoDB) ListAssessmentsByPatients(ctx context.Context, patientIDs []string, until time.Time) (map[string][]schema.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result := make(map[string][]schema.Assessment)
	if len(patientIDs) == 0 {
		return result, nil
	}

	query := bson.M{
		"patient_id": bson.M{"$in": lo.Uniq(patientIDs)},
		"created_at": bson.M{"$lte": until.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := m.collection(schema.AssessmentCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("list assessments")
		return nil, err
	}

	var assessments []schema.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	return lo.GroupBy(assessments, func(a schema.Assessment) string {
		return a.PatientID
	}), nil
}
