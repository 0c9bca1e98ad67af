package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesRender(t *testing.T) {
	m, err := NewMessages()
	require.NoError(t, err)

	body, err := m.Render("en", ChannelSMS, KindAssessment, MessageData{Name: "AL"})
	assert.NoError(t, err)
	assert.Contains(t, body, "Is AL experiencing any symptoms")

	body, err = m.Render("en", ChannelSMS, KindReminder, MessageData{Name: "AL"})
	assert.NoError(t, err)
	assert.Contains(t, body, "reminding AL")

	body, err = m.Render("en", ChannelEmail, KindReminder, MessageData{Name: "AL", Link: "https://example.com/r/token"})
	assert.NoError(t, err)
	assert.Contains(t, body, "https://example.com/r/token")
}

func TestMessagesRenderLocalized(t *testing.T) {
	m, err := NewMessages()
	require.NoError(t, err)

	body, err := m.Render("es", ChannelVoice, KindReminder, MessageData{Name: "AL"})
	assert.NoError(t, err)
	assert.Contains(t, body, "Hola")

	body, err = m.Render("fr", ChannelVoice, KindReminder, MessageData{Name: "AL"})
	assert.NoError(t, err)
	assert.Contains(t, body, "Hello")
}
