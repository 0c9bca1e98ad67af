package main

import (
	"context"
	"fmt"
	"time"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bialogs/SaraAlert/api"
	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/config"
	"github.com/Bialogs/SaraAlert/dispatch"
	"github.com/Bialogs/SaraAlert/ingest"
	"github.com/Bialogs/SaraAlert/reminder"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

const cmdLogPrefix = "cmd"

// app holds what every command shares: the config, the mongo store and the
// classification engine
type app struct {
	cfg        *config.Config
	location   *time.Location
	client     *mongo.Client
	mongoStore store.MongoStore
	engine     *classify.Engine

	closers []func() error
}

func setupLogging(cfg *config.Config) {
	log.SetLevel(cfg.LogLevel())
	if cfg.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.LogLevel() >= log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if err := schema.NewMongoDBIndexer(cfg.Mongo.Conn, cfg.Mongo.Database).IndexAll(); err != nil {
		return nil, fmt.Errorf("index mongo database: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.Conn))
	if err != nil {
		return nil, fmt.Errorf("connect mongo database: %w", err)
	}

	a := &app{
		cfg:        cfg,
		location:   loc,
		client:     client,
		mongoStore: store.NewMongoStore(client, cfg.Mongo.Database),
		engine:     classify.New(cfg.Classification()),
	}

	if err := a.mongoStore.Ping(ctx); err != nil {
		a.close()
		return nil, fmt.Errorf("ping mongo database: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix":   cmdLogPrefix,
		"database": cfg.Mongo.Database,
		"timezone": loc.String(),
	}).Info("application initialized")
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.WithField("prefix", cmdLogPrefix).WithError(err).Warn("fail to close resource")
		}
	}
	if err := a.mongoStore.Close(context.Background()); err != nil {
		log.WithField("prefix", cmdLogPrefix).WithError(err).Warn("fail to disconnect mongo database")
	}
}

func (a *app) dispatcher(ctx context.Context) (dispatch.Dispatcher, error) {
	if a.cfg.Notifications.Dispatcher == config.DispatcherLog {
		return dispatch.LogDispatcher{}, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := sqs.New(sqs.Options{
		Region:       awsCfg.Region,
		Credentials:  awsCfg.Credentials,
		HTTPClient:   awsCfg.HTTPClient,
		BaseEndpoint: awsCfg.BaseEndpoint,
	})
	return dispatch.NewSQSDispatcher(ctx, client, a.cfg.SQS.QueueName)
}

func (a *app) evaluator(ctx context.Context) (*reminder.Evaluator, error) {
	dispatcher, err := a.dispatcher(ctx)
	if err != nil {
		return nil, err
	}

	messages, err := dispatch.NewMessages()
	if err != nil {
		return nil, err
	}

	return reminder.NewEvaluator(a.engine, a.mongoStore, a.mongoStore, dispatcher, messages, a.cfg.ReminderOptions()), nil
}

func (a *app) sweeper(evaluator *reminder.Evaluator) *reminder.Sweeper {
	return reminder.NewSweeper(evaluator, a.mongoStore, a.mongoStore, a.cfg.Reminder.Interval, a.cfg.Reminder.Rate)
}

func (a *app) consumer() *ingest.Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  a.cfg.Kafka.Brokers,
		Topic:    a.cfg.Kafka.Topic,
		GroupID:  a.cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	a.closers = append(a.closers, reader.Close)

	ingester := ingest.NewIngester(a.mongoStore, a.mongoStore, a.mongoStore, a.engine.Config().ReportingLimit)
	return ingest.NewConsumer(reader, ingester, ingest.DefaultBackoff, ingest.DefaultMaxAttempts)
}

func (a *app) publisher() *ingest.Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(a.cfg.Kafka.Brokers...),
		Topic:    a.cfg.Kafka.Topic,
		Balancer: &kafka.Hash{},
	}
	a.closers = append(a.closers, writer.Close)
	return ingest.NewPublisher(writer)
}

func (a *app) server(evaluator *reminder.Evaluator) *api.Server {
	return api.NewServer(a.mongoStore, a.engine, evaluator, a.publisher(), a.location, a.cfg.Server.Trace)
}

func (a *app) addr() string {
	return fmt.Sprintf(":%d", a.cfg.Server.Port)
}

// withApp builds the app for the command and closes it once the command returns
func withApp(run func(cmd *cobra.Command, a *app) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		return run(cmd, a)
	}
}
