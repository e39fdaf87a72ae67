package sender_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	smtplib "github.com/skillsync/skillsync/internal/lib/smtp"
	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/services/sender"
)

// Мок для smtp.Client
type ClientMock struct {
	mock.Mock
	data bytes.Buffer
}

func (m *ClientMock) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *ClientMock) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nopWriteCloser{&m.data}, args.Error(1)
}

func (m *ClientMock) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ClientMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Мок для smtp.TransportInterface
type TransportMock struct {
	mock.Mock
}

func (m *TransportMock) Connect() (smtplib.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtplib.Client), args.Error(1)
}

func (m *TransportMock) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSenderService_SendSwapRequestEmail(t *testing.T) {
	event := models.SwapRequestEvent{
		SwapID:         "s1",
		RequesterName:  "Alice Johnson",
		ReceiverName:   "Bob Smith",
		ReceiverEmail:  "bob@example.com",
		ReceiverUserID: "2",
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	client := new(ClientMock)
	client.On("Mail", "noreply@skillsync.local").Return(nil).Once()
	client.On("Rcpt", "bob@example.com").Return(nil).Once()
	client.On("Data").Return(nopWriteCloser{&client.data}, nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()

	transport := new(TransportMock)
	transport.On("Connect").Return(client, nil).Once()
	transport.On("GetSMTPUser").Return("noreply@skillsync.local")

	svc := sender.New(transport, newNoopLogger())

	require.NoError(t, svc.SendSwapRequestEmail(body))

	msg := client.data.String()
	assert.Contains(t, msg, "To: bob@example.com")
	assert.Contains(t, msg, "Subject: New swap request on SkillSync")
	assert.Contains(t, msg, "Hi Bob Smith!")
	assert.Contains(t, msg, "Alice Johnson sent you a new skill swap request.")

	client.AssertExpectations(t)
	transport.AssertExpectations(t)
}

func TestSenderService_SendSwapRequestEmail_BadPayload(t *testing.T) {
	transport := new(TransportMock)
	svc := sender.New(transport, newNoopLogger())

	err := svc.SendSwapRequestEmail([]byte("not a json"))
	assert.Error(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSenderService_SendSwapRequestEmail_ConnectError(t *testing.T) {
	event := models.SwapRequestEvent{ReceiverEmail: "bob@example.com"}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	transport := new(TransportMock)
	transport.On("GetSMTPUser").Return("noreply@skillsync.local")
	transport.On("Connect").Return(nil, errors.New("connection refused")).Once()

	svc := sender.New(transport, newNoopLogger())

	assert.Error(t, svc.SendSwapRequestEmail(body))
	transport.AssertExpectations(t)
}
