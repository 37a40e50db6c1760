package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"propnest-backend/internal/emails"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []emails.ContactNotification
	err  error
}

func (m *recordingMailer) SendContactNotification(ctx context.Context, n emails.ContactNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

func usersApp(t *testing.T, mailer emails.Sender) *fiber.App {
	svc := setupUsersTest(t)
	h := &Handlers{Service: svc, Mailer: mailer}
	app := fiber.New()
	app.Post("/api/users/signup", h.Signup)
	app.Post("/api/contact", h.Contact)
	return app
}

func TestSignupHandler_CreatedThenConflict(t *testing.T) {
	app := usersApp(t, nil)

	body, _ := json.Marshal(map[string]string{
		"fullname": "Asha Rao",
		"email":    "asha@example.com",
		"password": "Str0ng@Pass",
	})
	req := httptest.NewRequest("POST", "/api/users/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result["userId"])

	req = httptest.NewRequest("POST", "/api/users/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSignupHandler_WeakPassword(t *testing.T) {
	app := usersApp(t, nil)

	body, _ := json.Marshal(map[string]string{
		"fullname": "Asha Rao",
		"email":    "asha@example.com",
		"password": "short",
	})
	req := httptest.NewRequest("POST", "/api/users/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result map[string]string
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, ErrInvalidPassword.Error(), result["message"])
}

func TestContactHandler_NotifiesDesk(t *testing.T) {
	mailer := &recordingMailer{}
	app := usersApp(t, mailer)

	body, _ := json.Marshal(map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"phone":   "+91 98765 43210",
		"message": "Is the flat still available?",
	})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].Email)
	assert.Equal(t, "+91 98765 43210", mailer.sent[0].Phone)
}

func TestContactHandler_MailerFailureStill201(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("brevo down")}
	app := usersApp(t, mailer)

	body, _ := json.Marshal(map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "hello",
	})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	// The message is stored; the desk notification is best effort.
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestContactHandler_MissingMessage(t *testing.T) {
	app := usersApp(t, nil)

	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "asha@example.com"})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
