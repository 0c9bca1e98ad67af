package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bialogs/SaraAlert/ingest"
	"github.com/Bialogs/SaraAlert/store"
	"github.com/Bialogs/SaraAlert/threshold"
)

// submitAssessment accepts a report for the monitoree holding the submission
// token. The report is stored asynchronously by the ingestion.
func (s *Server) submitAssessment(c *gin.Context) {
	var params ingest.Message
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	params.SubmissionToken = c.Param("token")

	if params.ReportedSymptoms != nil {
		if _, err := threshold.BuildSymptoms(params.ReportedSymptoms); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	if _, err := s.mongoStore.GetMonitoreeBySubmissionToken(c, params.SubmissionToken); err != nil {
		if errors.Is(err, store.ErrMonitoreeNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorInvalidToken, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.mongoStore.GetThresholdCondition(c, params.ThresholdConditionHash); err != nil {
		if errors.Is(err, store.ErrThresholdNotFound) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownThreshold, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.publisher.Publish(c, params); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorReportNotPublished, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "OK"})
}
