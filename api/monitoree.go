package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/consts"
	"github.com/Bialogs/SaraAlert/reminder"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

type monitoreeQueryParams struct {
	Workflow string `form:"workflow"`
	Active   bool   `form:"active"`
	Status   string `form:"status"`
}

func (p monitoreeQueryParams) filter() (store.MonitoreeFilter, error) {
	f := store.MonitoreeFilter{ActiveOnly: p.Active}
	switch schema.Workflow(strings.ToLower(p.Workflow)) {
	case "":
	case schema.WorkflowSurveillance:
		f.Workflow = schema.WorkflowSurveillance
	case schema.WorkflowIsolation:
		f.Workflow = schema.WorkflowIsolation
	default:
		return f, fmt.Errorf("unknown workflow %q", p.Workflow)
	}
	return f, nil
}

// loadSubject answers the request itself when the subject can not be loaded
func (s *Server) loadSubject(c *gin.Context, now time.Time) (*classify.Subject, bool) {
	subject, err := s.mongoStore.LoadSubject(c, c.Param("id"), now)
	if err != nil {
		if errors.Is(err, store.ErrMonitoreeNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorMonitoreeNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, false
	}
	return subject, true
}

func (s *Server) status(subject classify.Subject, now time.Time) schema.Status {
	status := s.engine.Status(subject, now)
	if status == schema.StatusUnknown {
		log.WithField("monitoree_id", subject.Monitoree.ID).Warn("monitoree in unknown status")
	}
	return status
}

func (s *Server) monitoreeStatus(c *gin.Context) {
	now := s.clock()
	subject, ok := s.loadSubject(c, now)
	if !ok {
		return
	}

	status := s.status(*subject, now)
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"id":        subject.Monitoree.ID,
			"status":    status,
			"humanized": status.Humanize(),
		},
	})
}

// endOfMonitoring counts the monitoring period from the last exposure, or from
// the enrollment when the exposure is unknown
func endOfMonitoring(m schema.Monitoree) string {
	if m.Isolation {
		return "N/A"
	}
	from := m.CreatedAt
	if m.LastDateOfExposure != nil {
		from = *m.LastDateOfExposure
	}
	return from.AddDate(0, 0, consts.MonitoringPeriodDays).Format("2006-01-02")
}

// monitoreeDetail returns the linelist entry of a monitoree
func (s *Server) monitoreeDetail(c *gin.Context) {
	now := s.clock()
	subject, ok := s.loadSubject(c, now)
	if !ok {
		return
	}
	m := subject.Monitoree

	transfer, err := s.mongoStore.LatestTransfer(c, m.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	linelist := gin.H{
		"id":                   m.ID,
		"name":                 strings.TrimSpace(m.LastName + ", " + m.FirstName),
		"jurisdiction":         m.JurisdictionID,
		"workflow":             m.Workflow(),
		"status":               s.status(*subject, now).Humanize(),
		"monitoring_plan":      m.MonitoringPlan,
		"public_health_action": m.PublicHealthAction,
		"risk_level":           m.ExposureRiskAssessment,
		"end_of_monitoring":    endOfMonitoring(m),
		"latest_report":        nil,
		"transferred":          nil,
	}
	if m.SymptomOnset != nil {
		linelist["symptom_onset"] = m.SymptomOnset.Format("2006-01-02")
	}
	if latest := classify.LatestAssessment(*subject, now); latest != nil {
		linelist["latest_report"] = latest.CreatedAt
	}
	if transfer != nil {
		linelist["transferred"] = transfer.CreatedAt
		linelist["transferred_from"] = transfer.FromJurisdiction
	}

	c.JSON(http.StatusOK, gin.H{"result": linelist})
}

// listMonitorees returns the ids of the monitorees in a status bucket
func (s *Server) listMonitorees(c *gin.Context) {
	var params monitoreeQueryParams
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter, err := params.filter()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownWorkflow, err)
		return
	}

	var status schema.Status
	if params.Status != "" {
		var ok bool
		if status, ok = schema.ParseStatus(params.Status); !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus, fmt.Errorf("unknown status %q", params.Status))
			return
		}
	}

	now := s.clock()
	subjects, err := s.mongoStore.LoadSubjects(c, filter, now)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	var ids []string
	if status == "" {
		ids = lo.Map(subjects, func(subject classify.Subject, _ int) string {
			return subject.Monitoree.ID
		})
	} else {
		ids = s.engine.Filter(subjects, status, now)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"ids":   ids,
			"total": len(ids),
		},
	})
}

// dashboard counts the monitorees per status and how many reported today
func (s *Server) dashboard(c *gin.Context) {
	var params monitoreeQueryParams
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter, err := params.filter()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownWorkflow, err)
		return
	}

	now := s.clock()
	subjects, err := s.mongoStore.LoadSubjects(c, filter, now)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	counts := s.engine.Counts(subjects, now)
	if counts[schema.StatusUnknown] > 0 {
		log.WithField("count", counts[schema.StatusUnknown]).Warn("monitorees in unknown status")
	}

	reported := 0
	active := classify.MonitoringActive(subjects, true)
	for _, subject := range active {
		loc := reminder.LocationOf(subject.Monitoree, s.defaultTimezone)
		local := now.In(loc)
		midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		if classify.ReportedBetween(subject, midnight, now) {
			reported++
		}
	}

	log.WithFields(logrus.Fields{
		"workflow": filter.Workflow,
		"total":    len(subjects),
	}).Debug("dashboard computed")

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"total":  len(subjects),
			"counts": counts,
			"reporting_summary": gin.H{
				"reported":     reported,
				"not_reported": len(active) - reported,
			},
		},
	})
}
