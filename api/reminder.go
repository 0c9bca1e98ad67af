package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bialogs/SaraAlert/reminder"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

// sendReminder sends a reminder on demand. force skips the contact time.
func (s *Server) sendReminder(c *gin.Context) {
	var params struct {
		Force bool `form:"force"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	now := s.clock()
	subject, ok := s.loadSubject(c, now)
	if !ok {
		return
	}

	outcome, err := s.reminders.Send(c, *subject, now, params.Force)
	if err != nil {
		if outcome == reminder.OutcomeFailed {
			abortWithEncoding(c, http.StatusBadGateway, errorDispatchFailed, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"outcome": outcome,
		},
	})
}

func requester(c *gin.Context) string {
	if r := strings.TrimSpace(c.GetHeader("X-Requester")); r != "" {
		return r
	}
	return schema.SystemActor
}

// setNotifications pauses or resumes the notifications of a monitoree
func (s *Server) setNotifications(c *gin.Context) {
	var params struct {
		Pause *bool `json:"pause" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	id := c.Param("id")
	if err := s.mongoStore.SetPauseNotifications(c, id, *params.Pause); err != nil {
		if errors.Is(err, store.ErrMonitoreeNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorMonitoreeNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	comment := "User resumed notifications for this monitoree."
	if *params.Pause {
		comment = "User paused notifications for this monitoree."
	}
	if err := s.mongoStore.AddHistory(c, schema.History{
		PatientID:   id,
		CreatedBy:   requester(c),
		HistoryType: schema.HistoryTypeMonitoringChange,
		Comment:     comment,
		CreatedAt:   s.clock(),
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
