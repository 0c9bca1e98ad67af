package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/ingest"
	"github.com/Bialogs/SaraAlert/reminder"
	"github.com/Bialogs/SaraAlert/store"
)

var log = logrus.WithField("prefix", "api")

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks github.com/Bialogs/SaraAlert/api ReminderSender,ReportPublisher

// ReminderSender sends on-demand reminders
type ReminderSender interface {
	Send(ctx context.Context, s classify.Subject, now time.Time, force bool) (reminder.Outcome, error)
}

// ReportPublisher hands submitted reports over to the ingestion
type ReportPublisher interface {
	Publish(ctx context.Context, m ingest.Message) error
}

type Server struct {
	httpServer *http.Server
	traceMode  bool

	mongoStore      store.MongoStore
	engine          *classify.Engine
	reminders       ReminderSender
	publisher       ReportPublisher
	defaultTimezone *time.Location
	clock           func() time.Time
}

func NewServer(mongoStore store.MongoStore, engine *classify.Engine, reminders ReminderSender,
	publisher ReportPublisher, defaultTimezone *time.Location, traceMode bool) *Server {
	if defaultTimezone == nil {
		defaultTimezone = time.UTC
	}
	return &Server{
		traceMode:       traceMode,
		mongoStore:      mongoStore,
		engine:          engine,
		reminders:       reminders,
		publisher:       publisher,
		defaultTimezone: defaultTimezone,
		clock:           time.Now,
	}
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/api")
	{
		monitorees := apiRoute.Group("/monitorees")
		monitorees.GET("", s.listMonitorees)
		monitorees.GET("/:id", s.monitoreeDetail)
		monitorees.GET("/:id/status", s.monitoreeStatus)
		monitorees.POST("/:id/reminders", s.sendReminder)
		monitorees.POST("/:id/notifications", s.setNotifications)

		apiRoute.GET("/dashboard", s.dashboard)
		apiRoute.POST("/histories", s.createHistory)
		apiRoute.POST("/assessments/:token", s.submitAssessment)
	}

	return r
}

// Run serves until the context is done and then shuts the server down
func (s *Server) Run(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("api server started")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("api server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(c); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
