package dispatch

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogDispatcher only logs notifications. It is meant for local runs.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(ctx context.Context, n Notification) error {
	log.WithFields(log.Fields{
		"prefix":       dispatchLogPrefix,
		"monitoree_id": n.MonitoreeID,
		"channel":      n.Channel,
		"kind":         n.Kind,
		"recipient":    n.Recipient,
	}).Info(n.Body)
	return nil
}
