package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const dispatchLogPrefix = "dispatch"

type Channel string

const (
	ChannelSMS        Channel = "sms"
	ChannelSMSWeblink Channel = "sms_weblink"
	ChannelVoice      Channel = "voice"
	ChannelEmail      Channel = "email"
)

type Kind string

const (
	// KindAssessment asks the monitoree to answer the report right in the message
	KindAssessment Kind = "assessment"
	// KindReminder only reminds the monitoree to report
	KindReminder Kind = "reminder"
)

// Notification is one outbound message handed to the delivery boundary
type Notification struct {
	ID          string    `json:"id"`
	MonitoreeID string    `json:"monitoree_id"`
	Channel     Channel   `json:"channel"`
	Kind        Kind      `json:"kind"`
	Recipient   string    `json:"recipient"`
	Language    string    `json:"language"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewNotification(monitoreeID string, channel Channel, kind Kind, recipient, lang, body string, now time.Time) Notification {
	return Notification{
		ID:          uuid.New().String(),
		MonitoreeID: monitoreeID,
		Channel:     channel,
		Kind:        kind,
		Recipient:   recipient,
		Language:    lang,
		Body:        body,
		CreatedAt:   now.UTC(),
	}
}

//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks github.com/Bialogs/SaraAlert/dispatch Dispatcher

// Dispatcher hands a notification over for delivery. A nil error means the
// notification is accepted and will be delivered.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}
