package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorMessage{Code: 999, Message: "internal server error"}
	errorInvalidParameters  = errorMessage{Code: 1000, Message: "invalid parameters"}
	errorMonitoreeNotFound  = errorMessage{Code: 1001, Message: "monitoree not found"}
	errorUnknownStatus      = errorMessage{Code: 1002, Message: "unknown status"}
	errorUnknownWorkflow    = errorMessage{Code: 1003, Message: "unknown workflow"}
	errorInvalidToken       = errorMessage{Code: 1004, Message: "invalid submission token"}
	errorUnknownThreshold   = errorMessage{Code: 1005, Message: "unknown threshold condition"}
	errorDispatchFailed     = errorMessage{Code: 1006, Message: "fail to dispatch notification"}
	errorReportNotPublished = errorMessage{Code: 1007, Message: "fail to accept report"}
	errorStoreUnavailable   = errorMessage{Code: 1008, Message: "store unavailable"}
)

// abortWithEncoding aborts the request with the error code in the body
func abortWithEncoding(c *gin.Context, status int, e errorMessage, errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		log.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"status": status,
			"code":   e.Code,
		}).WithError(err).Warn("request aborted")
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error": e,
	})
}
