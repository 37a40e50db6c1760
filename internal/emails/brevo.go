package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"
)

const brevoAPI = "https://api.brevo.com/v3/smtp/email"

// BrevoSendRequest matches Brevo API v3 send transactional email body.
type BrevoSendRequest struct {
	Sender      BrevoSender   `json:"sender"`
	To          []BrevoTo     `json:"to"`
	Subject     string        `json:"subject"`
	HTMLContent string        `json:"htmlContent"`
	ReplyTo     *BrevoReplyTo `json:"replyTo,omitempty"`
}

type BrevoSender struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BrevoTo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type BrevoReplyTo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ContactNotification carries contact-form fields into the desk email.
type ContactNotification struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
}

// Sender notifies the listings desk about contact submissions. Nil = no-op.
type Sender interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
}

// BrevoClient sends emails via Brevo (Sendinblue) API.
// Env: SENDINBLUE_API_KEY, MAIL_FROM, CONTACT_DESK_EMAIL.
type BrevoClient struct {
	APIKey    string
	MailFrom  string
	DeskEmail string
	Client    *http.Client
}

func (c *BrevoClient) from() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return "noreply@propnest.in"
}

func (c *BrevoClient) desk() string {
	if c.DeskEmail != "" {
		return c.DeskEmail
	}
	return "listings@propnest.in"
}

// SendContactNotification emails the contact-form submission to the desk,
// with reply-to pointed at the submitter.
func (c *BrevoClient) SendContactNotification(ctx context.Context, n ContactNotification) error {
	if c.APIKey == "" {
		return nil
	}
	subject := "New contact enquiry from " + n.Name
	if n.PropertyID != "" {
		subject = fmt.Sprintf("New enquiry about property %s from %s", n.PropertyID, n.Name)
	}
	htmlBody := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p>%s</p>",
		html.EscapeString(n.Name), html.EscapeString(n.Email), html.EscapeString(n.Phone), html.EscapeString(n.Message),
	)

	body := BrevoSendRequest{
		Sender:      BrevoSender{Email: c.from(), Name: "propnest.in"},
		To:          []BrevoTo{{Email: c.desk()}},
		Subject:     subject,
		HTMLContent: htmlBody,
		ReplyTo:     &BrevoReplyTo{Email: n.Email, Name: n.Name},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoAPI, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo: send returned %d", resp.StatusCode)
	}
	return nil
}
