package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/Bialogs/SaraAlert/classify"
	"github.com/Bialogs/SaraAlert/consts"
	"github.com/Bialogs/SaraAlert/dispatch"
	"github.com/Bialogs/SaraAlert/schema"
	"github.com/Bialogs/SaraAlert/store"
)

const reminderLogPrefix = "reminder"

type Outcome string

const (
	OutcomeSent         Outcome = "sent"
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeNotResponder Outcome = "not_responder"
	OutcomeQuietHours   Outcome = "quiet_hours"
	OutcomeNoChannel    Outcome = "no_channel"
	OutcomeFailed       Outcome = "failed"
)

// Flags switches the outbound channels on and off
type Flags struct {
	EnableSMS   bool
	EnableVoice bool
	EnableEmail bool
}

type Options struct {
	Flags

	// Interval is the least time between two reminders to the same monitoree
	Interval        time.Duration
	DefaultTimezone *time.Location
	// ReportURL is the base of the links to the report form
	ReportURL string
}

func DefaultOptions() Options {
	loc, err := time.LoadLocation(consts.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return Options{
		Interval:        consts.ReminderInterval,
		DefaultTimezone: loc,
	}
}

// Evaluator decides whether a monitoree should be reminded and sends the reminder
type Evaluator struct {
	engine     *classify.Engine
	monitorees store.Monitoree
	histories  store.History
	dispatcher dispatch.Dispatcher
	messages   *dispatch.Messages
	opts       Options
}

func NewEvaluator(engine *classify.Engine, monitorees store.Monitoree, histories store.History,
	dispatcher dispatch.Dispatcher, messages *dispatch.Messages, opts Options) *Evaluator {
	if opts.Interval <= 0 {
		opts.Interval = consts.ReminderInterval
	}
	return &Evaluator{
		engine:     engine,
		monitorees: monitorees,
		histories:  histories,
		dispatcher: dispatcher,
		messages:   messages,
		opts:       opts,
	}
}

func (e *Evaluator) location(m schema.Monitoree) *time.Location {
	return LocationOf(m, e.opts.DefaultTimezone)
}

// ShouldRemind tells whether the subject is due a reminder today
func (e *Evaluator) ShouldRemind(s classify.Subject, now time.Time) bool {
	return e.engine.IsReminderEligible(s, now, e.location(s.Monitoree))
}

type delivery struct {
	channel   dispatch.Channel
	kind      dispatch.Kind
	recipient string
	method    string
}

// selectChannel picks the channel in the fixed order sms, sms weblink, voice
// and falls back to email
func (e *Evaluator) selectChannel(m schema.Monitoree, force bool) (delivery, bool) {
	method := strings.ToLower(m.PreferredContactMethod)
	phone := m.PrimaryTelephone != ""

	switch {
	case method == strings.ToLower(schema.ContactMethodSMSText) && e.opts.EnableSMS && phone && m.SelfReporterOrProxy():
		kind := dispatch.KindAssessment
		if force {
			kind = dispatch.KindReminder
		}
		return delivery{dispatch.ChannelSMS, kind, m.PrimaryTelephone, schema.ContactMethodSMSText}, true
	case method == strings.ToLower(schema.ContactMethodSMSWeblink) && e.opts.EnableSMS && phone && m.SelfReporterOrProxy():
		return delivery{dispatch.ChannelSMSWeblink, dispatch.KindReminder, m.PrimaryTelephone, schema.ContactMethodSMSWeblink}, true
	case method == strings.ToLower(schema.ContactMethodTelephone) && e.opts.EnableVoice && phone && m.SelfReporterOrProxy():
		return delivery{dispatch.ChannelVoice, dispatch.KindReminder, m.PrimaryTelephone, schema.ContactMethodTelephone}, true
	case e.opts.EnableEmail && strings.TrimSpace(m.Email) != "":
		return delivery{dispatch.ChannelEmail, dispatch.KindReminder, m.Email, schema.ContactMethodEmail}, true
	}
	return delivery{}, false
}

func (e *Evaluator) reportLink(m schema.Monitoree) string {
	if e.opts.ReportURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(e.opts.ReportURL, "/"), m.SubmissionToken)
}

func displayName(m schema.Monitoree) string {
	initials := ""
	for _, n := range []string{m.FirstName, m.LastName} {
		if r, size := utf8.DecodeRuneInString(strings.TrimSpace(n)); size > 0 && r != utf8.RuneError {
			initials += string(unicode.ToUpper(r))
		}
	}
	if initials == "" {
		return "you"
	}
	return initials
}

// Send reminds the monitoree unless it was reminded lately, it reports through
// a responder or it is outside its contact time. force skips the contact time.
// History and the reminder timestamp are written only after the notification is
// accepted by the dispatcher.
func (e *Evaluator) Send(ctx context.Context, s classify.Subject, now time.Time, force bool) (Outcome, error) {
	m := s.Monitoree
	logger := log.WithFields(log.Fields{
		"prefix":       reminderLogPrefix,
		"monitoree_id": m.ID,
		"force":        force,
	})

	if m.LastAssessmentReminderSent != nil && m.LastAssessmentReminderSent.After(now.Add(-e.opts.Interval)) {
		logger.Debug("reminded lately")
		return OutcomeRateLimited, nil
	}

	if !m.SelfReporterOrProxy() {
		logger.Debug("skip household member")
		return OutcomeNotResponder, nil
	}

	if !force {
		hour := now.In(e.location(m)).Hour()
		if !InContactWindow(m.PreferredContactTime, hour) {
			logger.WithField("hour", hour).Debug("outside of contact time")
			return OutcomeQuietHours, nil
		}
	}

	d, ok := e.selectChannel(m, force)
	if !ok {
		logger.WithField("preferred_contact_method", m.PreferredContactMethod).Info("no channel available")
		return OutcomeNoChannel, nil
	}

	lang := m.PrimaryLanguage
	if lang == "" {
		lang = consts.DefaultLanguage
	}
	body, err := e.messages.Render(lang, d.channel, d.kind, dispatch.MessageData{
		Name: displayName(m),
		Link: e.reportLink(m),
	})
	if err != nil {
		return OutcomeFailed, err
	}

	n := dispatch.NewNotification(m.ID, d.channel, d.kind, d.recipient, lang, body, now)
	if err := e.dispatcher.Dispatch(ctx, n); err != nil {
		logger.WithError(err).Error("dispatch reminder")
		return OutcomeFailed, fmt.Errorf("dispatch reminder: %w", err)
	}

	if err := e.histories.AddHistory(ctx, schema.History{
		PatientID:   m.ID,
		CreatedBy:   schema.SystemActor,
		HistoryType: schema.HistoryTypeReportReminder,
		Comment:     fmt.Sprintf("Sara Alert sent a report reminder to this monitoree via %s.", d.method),
		CreatedAt:   now,
	}); err != nil {
		logger.WithError(err).Error("add reminder history")
		return OutcomeSent, err
	}

	if err := e.monitorees.UpdateLastReminderSent(ctx, m.ID, now); err != nil {
		logger.WithError(err).Error("update last reminder sent")
		return OutcomeSent, err
	}

	logger.WithField("channel", d.channel).Info("reminder sent")
	return OutcomeSent, nil
}
