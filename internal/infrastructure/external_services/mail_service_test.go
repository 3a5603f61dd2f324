package external_services

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeecare/hms-backend/internal/infrastructure/config"
)

func TestNewSMTPMailer_DisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewSMTPMailer(config.EmailConfig{}))
}

func TestSMTPMailer_SendEmail(t *testing.T) {
	m := NewSMTPMailer(config.EmailConfig{Host: "smtp.example.com", Port: "587", Username: "u", AppPassword: "p", From: "clinic@example.com"})
	require.NotNil(t, m)

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	m.sendMail = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	err := m.SendEmail(context.Background(), "jane@example.com", "Appointment Accepted", "See you soon")
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"jane@example.com"}, gotTo)
	assert.True(t, strings.Contains(string(gotMsg), "Subject: Appointment Accepted\r\n"))
	assert.True(t, strings.HasSuffix(string(gotMsg), "See you soon\r\n"))
}

func TestSMTPMailer_SendEmail_Errors(t *testing.T) {
	m := NewSMTPMailer(config.EmailConfig{Host: "smtp.example.com", Port: "587"})
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("relay down") }

	err := m.SendEmail(context.Background(), "jane@example.com", "s", "b")
	assert.ErrorContains(t, err, "relay down")

	err = m.SendEmail(context.Background(), "jane@example.com\r\nBcc: x@y.z", "s", "b")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendEmail(ctx, "jane@example.com", "s", "b"), context.Canceled)
}
