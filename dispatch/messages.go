package dispatch

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed i18n/*.json
var messageFiles embed.FS

// MessageData fills in the templates of the notification bodies
type MessageData struct {
	Name string
	Link string
}

// Messages renders localized notification bodies
type Messages struct {
	bundle *i18n.Bundle
}

func NewMessages() (*Messages, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := messageFiles.ReadDir("i18n")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, "i18n/"+e.Name()); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", e.Name(), err)
		}
	}

	return &Messages{bundle: bundle}, nil
}

func messageID(channel Channel, kind Kind) string {
	if channel == ChannelSMS {
		return fmt.Sprintf("%s.%s", channel, kind)
	}
	return string(channel)
}

// Render returns the body of a notification in the given language. Unknown
// languages fall back to English.
func (m *Messages) Render(lang string, channel Channel, kind Kind, data MessageData) (string, error) {
	lang = strings.ReplaceAll(strings.ToLower(lang), "_", "-")
	localizer := i18n.NewLocalizer(m.bundle, lang, language.English.String())

	body, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID(channel, kind),
		TemplateData: data,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   dispatchLogPrefix,
			"language": lang,
			"channel":  channel,
		}).WithError(err).Error("fail to render notification body")
		return "", err
	}
	return body, nil
}
