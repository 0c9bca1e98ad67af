package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/schema"
)

// MonitoreeFilter narrows a monitoree listing. Zero values mean no narrowing.
type MonitoreeFilter struct {
	Workflow   schema.Workflow
	ActiveOnly bool
	IDs        []string
}

func (f MonitoreeFilter) query() bson.M {
	q := bson.M{}
	switch f.Workflow {
	case schema.WorkflowIsolation:
		q["isolation"] = true
	case schema.WorkflowSurveillance:
		q["isolation"] = false
	}
	if f.ActiveOnly {
		q["monitoring"] = true
	}
	if len(f.IDs) > 0 {
		q["_id"] = bson.M{"$in": f.IDs}
	}
	return q
}

type Monitoree interface {
	CreateMonitoree(ctx context.Context, m schema.Monitoree) (*schema.Monitoree, error)
	GetMonitoree(ctx context.Context, id string) (*schema.Monitoree, error)
	GetMonitoreeBySubmissionToken(ctx context.Context, token string) (*schema.Monitoree, error)
	ListDependents(ctx context.Context, responderID string) ([]schema.Monitoree, error)
	ListMonitorees(ctx context.Context, filter MonitoreeFilter) ([]schema.Monitoree, error)
	ListReminderCandidates(ctx context.Context) ([]schema.Monitoree, error)

	UpdateLastReminderSent(ctx context.Context, id string, ts time.Time) error
	SetPauseNotifications(ctx context.Context, id string, pause bool) error
	SetSymptomOnset(ctx context.Context, id string, onset time.Time) (bool, error)
	PurgeMonitoree(ctx context.Context, id string) error
}

// CreateMonitoree enrolls a monitoree. A submission token is always generated and
// a monitoree without a responder reports for itself.
func (m *mongoDB) CreateMonitoree(ctx context.Context, monitoree schema.Monitoree) (*schema.Monitoree, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if monitoree.ID == "" {
		monitoree.ID = uuid.New().String()
	}
	if monitoree.ResponderID == "" {
		monitoree.ResponderID = monitoree.ID
	}
	if monitoree.PublicHealthAction == "" {
		monitoree.PublicHealthAction = schema.PublicHealthActionNone
	}
	if monitoree.Purged {
		monitoree.Monitoring = false
	}
	monitoree.SubmissionToken = uuid.New().String()

	now := time.Now().UTC()
	if monitoree.CreatedAt.IsZero() {
		monitoree.CreatedAt = now
	}
	monitoree.UpdatedAt = now

	if _, err := m.collection(schema.MonitoreeCollection).InsertOne(ctx, &monitoree); err != nil {
		log.WithFields(log.Fields{
			"prefix":       mongoLogPrefix,
			"monitoree_id": monitoree.ID,
			"error":        err,
		}).Error("create monitoree")
		return nil, err
	}

	return &monitoree, nil
}

func (m *mongoDB) findMonitoree(ctx context.Context, query bson.M) (*schema.Monitoree, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var monitoree schema.Monitoree
	if err := m.collection(schema.MonitoreeCollection).FindOne(ctx, query).Decode(&monitoree); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMonitoreeNotFound
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "query": query, "error": err}).Error("find monitoree")
		return nil, err
	}

	return &monitoree, nil
}

func (m *mongoDB) GetMonitoree(ctx context.Context, id string) (*schema.Monitoree, error) {
	return m.findMonitoree(ctx, bson.M{"_id": id})
}

func (m *mongoDB) GetMonitoreeBySubmissionToken(ctx context.Context, token string) (*schema.Monitoree, error) {
	if token == "" {
		return nil, ErrMonitoreeNotFound
	}
	return m.findMonitoree(ctx, bson.M{"submission_token": token})
}

func (m *mongoDB) listMonitorees(ctx context.Context, query interface{}) ([]schema.Monitoree, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.MonitoreeCollection).Find(ctx, query, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "query": query, "error": err}).Error("list monitorees")
		return nil, err
	}

	monitorees := make([]schema.Monitoree, 0)
	if err := cursor.All(ctx, &monitorees); err != nil {
		return nil, err
	}
	return monitorees, nil
}

// ListDependents returns every monitoree answered for by the responder,
// the responder included
func (m *mongoDB) ListDependents(ctx context.Context, responderID string) ([]schema.Monitoree, error) {
	return m.listMonitorees(ctx, bson.M{"responder_id": responderID})
}

func (m *mongoDB) ListMonitorees(ctx context.Context, filter MonitoreeFilter) ([]schema.Monitoree, error) {
	return m.listMonitorees(ctx, filter.query())
}

// ListReminderCandidates returns the actively monitored responders that have
// not paused notifications
func (m *mongoDB) ListReminderCandidates(ctx context.Context) ([]schema.Monitoree, error) {
	return m.listMonitorees(ctx, bson.M{
		"monitoring":          true,
		"purged":              false,
		"pause_notifications": false,
		"$expr":               bson.M{"$eq": bson.A{"$responder_id", "$_id"}},
	})
}

func (m *mongoDB) updateMonitoree(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	result, err := m.collection(schema.MonitoreeCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "monitoree_id": id, "error": err}).Error("update monitoree")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMonitoreeNotFound
	}
	return nil
}

func (m *mongoDB) UpdateLastReminderSent(ctx context.Context, id string, ts time.Time) error {
	return m.updateMonitoree(ctx, id, bson.M{"last_assessment_reminder_sent": ts.UTC()})
}

func (m *mongoDB) SetPauseNotifications(ctx context.Context, id string, pause bool) error {
	return m.updateMonitoree(ctx, id, bson.M{"pause_notifications": pause})
}

// SetSymptomOnset records the onset only when none is known yet. It tells
// whether the onset was written.
func (m *mongoDB) SetSymptomOnset(ctx context.Context, id string, onset time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"symptom_onset": bson.M{"$exists": false}},
			bson.M{"symptom_onset": nil},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"symptom_onset": onset.UTC(),
			"updated_at":    time.Now().UTC(),
		},
	}
	result, err := m.collection(schema.MonitoreeCollection).UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "monitoree_id": id, "error": err}).Error("set symptom onset")
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// PurgeMonitoree marks the monitoree purged, which also ends its monitoring
func (m *mongoDB) PurgeMonitoree(ctx context.Context, id string) error {
	now := time.Now().UTC()
	if err := m.updateMonitoree(ctx, id, bson.M{
		"purged":     true,
		"monitoring": false,
		"closed_at":  now,
	}); err != nil {
		return fmt.Errorf("purge monitoree %s: %w", id, err)
	}
	return nil
}
