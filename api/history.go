package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

func (s *Server) createHistory(c *gin.Context) {
	var params struct {
		PatientID string `json:"patient_id" binding:"required"`
		Type      string `json:"type"`
		Comment   string `json:"comment" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.mongoStore.GetMonitoree(c, params.PatientID); err != nil {
		if errors.Is(err, store.ErrMonitoreeNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorMonitoreeNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if params.Type == "" {
		params.Type = schema.HistoryTypeComment
	}

	if err := s.mongoStore.AddHistory(c, schema.History{
		PatientID:   params.PatientID,
		CreatedBy:   requester(c),
		HistoryType: params.Type,
		Comment:     params.Comment,
		CreatedAt:   s.clock(),
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
