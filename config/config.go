package config

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/consts"
	"github.com/Bialogs/SaraAlert/reminder"
)

const envPrefix = "SARA"

const (
	DispatcherSQS = "sqs"
	DispatcherLog = "log"
)

var (
	ErrMissingMongoConn   = fmt.Errorf("mongo.conn is required")
	ErrUnknownDispatcher  = fmt.Errorf("unknown notification dispatcher")
	ErrMissingKafkaBroker = fmt.Errorf("kafka.brokers is required")
	ErrInvalidReporting   = fmt.Errorf("reporting minutes must be positive")
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Mongo         MongoConfig         `mapstructure:"mongo"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	SQS           SQSConfig           `mapstructure:"sqs"`
	Log           LogConfig           `mapstructure:"log"`
	Reporting     ReportingConfig     `mapstructure:"reporting"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Reminder      ReminderConfig      `mapstructure:"reminder"`
	Timezone      TimezoneConfig      `mapstructure:"timezone"`
}

type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Trace bool `mapstructure:"trace"`
}

type MongoConfig struct {
	Conn     string `mapstructure:"conn"`
	Database string `mapstructure:"database"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

type SQSConfig struct {
	QueueName string `mapstructure:"queue_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReportingConfig struct {
	PeriodMinutes int `mapstructure:"period_minutes"`
	LimitMinutes  int `mapstructure:"limit_minutes"`
}

type NotificationsConfig struct {
	EnableSMS   bool   `mapstructure:"enable_sms"`
	EnableVoice bool   `mapstructure:"enable_voice"`
	EnableEmail bool   `mapstructure:"enable_email"`
	Dispatcher  string `mapstructure:"dispatcher"`
	ReportURL   string `mapstructure:"report_url"`
}

type ReminderConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Rate     float64       `mapstructure:"rate"`
}

type TimezoneConfig struct {
	Default string `mapstructure:"default"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.trace", false)
	v.SetDefault("mongo.conn", "")
	v.SetDefault("mongo.database", "sara_alert")
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "reports")
	v.SetDefault("kafka.group_id", "sara-monitor")
	v.SetDefault("sqs.queue_name", "sara-notifications")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("reporting.period_minutes", consts.ReportingPeriodMinutes)
	v.SetDefault("reporting.limit_minutes", consts.ReportingLimitMinutes)
	v.SetDefault("notifications.enable_sms", true)
	v.SetDefault("notifications.enable_voice", true)
	v.SetDefault("notifications.enable_email", true)
	v.SetDefault("notifications.dispatcher", DispatcherSQS)
	v.SetDefault("notifications.report_url", "")
	v.SetDefault("reminder.interval", time.Hour)
	v.SetDefault("reminder.rate", 10)
	v.SetDefault("timezone.default", consts.DefaultTimezone)
}

// Load reads the config file, when given, and lets SARA_ prefixed
// environment variables override it
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		log.WithFields(log.Fields{
			"prefix": "config",
			"path":   v.ConfigFileUsed(),
		}).Info("config file loaded")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// a comma separated env value arrives as a single element
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Mongo.Conn == "" {
		return ErrMissingMongoConn
	}
	if len(c.Kafka.Brokers) == 0 {
		return ErrMissingKafkaBroker
	}
	switch c.Notifications.Dispatcher {
	case DispatcherSQS, DispatcherLog:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDispatcher, c.Notifications.Dispatcher)
	}
	if c.Reporting.PeriodMinutes <= 0 {
		return fmt.Errorf("%w: reporting.period_minutes is %d", ErrInvalidReporting, c.Reporting.PeriodMinutes)
	}
	if c.Reporting.LimitMinutes <= 0 {
		return fmt.Errorf("%w: reporting.limit_minutes is %d", ErrInvalidReporting, c.Reporting.LimitMinutes)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return c.Classification().Validate()
}

// Classification returns the engine config with the configured reporting windows
func (c *Config) Classification() classify.Config {
	cfg := classify.DefaultConfig()
	cfg.ReportingPeriod = time.Duration(c.Reporting.PeriodMinutes) * time.Minute
	cfg.ReportingLimit = time.Duration(c.Reporting.LimitMinutes) * time.Minute
	return cfg
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone.Default == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone.Default)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone.Default, err)
	}
	return loc, nil
}

// ReminderOptions returns the evaluator options. The location must be valid,
// which Validate checks.
func (c *Config) ReminderOptions() reminder.Options {
	opts := reminder.DefaultOptions()
	opts.Flags = reminder.Flags{
		EnableSMS:   c.Notifications.EnableSMS,
		EnableVoice: c.Notifications.EnableVoice,
		EnableEmail: c.Notifications.EnableEmail,
	}
	opts.ReportURL = c.Notifications.ReportURL
	if loc, err := c.Location(); err == nil {
		opts.DefaultTimezone = loc
	}
	return opts
}

// LogLevel falls back to info on an unknown level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
