package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"dojo_path/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	msg := string(buildMessage("no-reply@dojopath.local", "fighter@example.com", "【DojoPath】確認", "1行目\n2行目", now))

	assert.Contains(t, msg, "From: no-reply@dojopath.local\r\n")
	assert.Contains(t, msg, "To: fighter@example.com\r\n")
	assert.Contains(t, msg, "Subject: =?UTF-8?q?")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n1行目\r\n2行目\r\n"))
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(context.Background(), &config.Config{Mailer: config.MailerConfig{Type: "smtp"}})
	require.NoError(t, err)
	assert.IsType(t, &SmtpMailer{}, m)

	m, err = NewMailer(context.Background(), &config.Config{Mailer: config.MailerConfig{Type: "unknown"}})
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)
}
