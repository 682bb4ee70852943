package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FromFallsBackToUsername(t *testing.T) {
	m := New("smtp.example.com", "465", "bot@example.com", "pw", "")
	assert.Equal(t, "bot@example.com", m.from)

	m = New("smtp.example.com", "465", "bot@example.com", "pw", "noreply@example.com")
	assert.Equal(t, "noreply@example.com", m.from)
}

func TestBuildMessage_MultipartAlternative(t *testing.T) {
	msg, err := buildMessage("from@example.com", "to@example.com", "Payment update", "plain body", "<p>html body</p>")
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "From: from@example.com\r\n")
	assert.Contains(t, s, "To: to@example.com\r\n")
	assert.Contains(t, s, "Subject: Payment update\r\n")
	assert.Contains(t, s, "multipart/alternative")
	assert.Contains(t, s, "text/plain")
	assert.Contains(t, s, "text/html")
	assert.Contains(t, s, "plain body")
	assert.Contains(t, s, "<p>html body</p>")
	assert.True(t, strings.HasSuffix(s, "--pl-alt-boundary--\r\n"))
}

func TestBuildMessage_SkipsEmptyParts(t *testing.T) {
	msg, err := buildMessage("from@example.com", "to@example.com", "s", "only text", "")
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "text/plain")
	assert.NotContains(t, s, "text/html")
}

func TestSend_UnreachableServer(t *testing.T) {
	m := New("127.0.0.1", "1", "u", "p", "f@example.com")
	err := m.Send("to@example.com", "s", "t", "h")
	assert.Error(t, err)
}
