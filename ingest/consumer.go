package ingest

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBackoff     = time.Second
	DefaultMaxAttempts = 3
)

//go:generate mockgen -destination=mocks/mock_kafka.go -package=mocks github.com/Bialogs/SaraAlert/ingest MessageReader,MessageWriter

// MessageReader is the part of a kafka reader the consumer uses
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Consumer feeds report messages to the ingester one at a time
type Consumer struct {
	reader      MessageReader
	ingester    *Ingester
	backoff     time.Duration
	maxAttempts int
	clock       func() time.Time
}

func NewConsumer(reader MessageReader, ingester *Ingester, backoff time.Duration, maxAttempts int) *Consumer {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Consumer{
		reader:      reader,
		ingester:    ingester,
		backoff:     backoff,
		maxAttempts: maxAttempts,
		clock:       time.Now,
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Run consumes until the context is done. Broker failures are retried forever.
func (c *Consumer) Run(ctx context.Context) error {
	log.WithField("prefix", ingestLogPrefix).Info("consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.WithField("prefix", ingestLogPrefix).Info("consumer stopped")
				return nil
			}
			log.WithField("prefix", ingestLogPrefix).WithError(err).Error("fetch message")
			if !sleep(ctx, c.backoff) {
				return nil
			}
			continue
		}

		c.process(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.WithFields(log.Fields{
				"prefix":    ingestLogPrefix,
				"partition": msg.Partition,
				"offset":    msg.Offset,
			}).WithError(err).Error("commit message")
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg kafka.Message) {
	logger := log.WithFields(log.Fields{
		"prefix":    ingestLogPrefix,
		"partition": msg.Partition,
		"offset":    msg.Offset,
	})

	// once prepared, retries only write what is still pending
	var report *Report
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		var err error
		if report == nil {
			report, err = c.ingester.Prepare(ctx, msg.Value, c.clock())
		}
		if err == nil {
			err = c.ingester.Write(ctx, report)
		}
		if err == nil {
			logger.WithField("assessments", len(report.Written())).Debug("report ingested")
			return
		}

		if IsDrop(err) {
			logger.WithField("reason", err.Error()).Info("drop report")
			return
		}

		logger.WithField("attempt", attempt).WithError(err).Error("ingest report")
		if attempt < c.maxAttempts && !sleep(ctx, c.backoff) {
			return
		}
	}

	logger.Error("skip report after retries")
}
