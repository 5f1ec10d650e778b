package bot

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMessage(t *testing.T) {
	text := IDMessage(123456789, "<Ali>", "https://example.org")

	assert.Contains(t, text, "<code>123456789</code>")
	assert.Contains(t, text, "&lt;Ali&gt;")
	assert.Contains(t, text, "https://example.org")

	assert.Contains(t, IDMessage(1, "", ""), "کاربر")
	assert.NotContains(t, IDMessage(1, "", ""), "🌐")
}

func TestIDReply(t *testing.T) {
	assert.Nil(t, IDReply(nil, ""))
	assert.Nil(t, IDReply(&models.Update{}, ""))

	params := IDReply(&models.Update{Message: &models.Message{
		Chat: models.Chat{ID: 42, Type: models.ChatTypePrivate},
		From: &models.User{ID: 7, FirstName: "Sara"},
		Text: "/id",
	}}, "")
	require.NotNil(t, params)
	assert.Equal(t, int64(42), params.ChatID)
	assert.Equal(t, models.ParseModeHTML, params.ParseMode)
	assert.Contains(t, params.Text, "<code>7</code>")
}
