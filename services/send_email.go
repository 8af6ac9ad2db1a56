package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/config"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends notification emails through the Resend API. A Mailer built
// without an API key is a no-op so the server runs fine without mail
// configured.
type Mailer struct {
	apiKey    string
	fromEmail string
	notifyTo  string
	client    *http.Client
}

// NewMailer reads RESEND_API_KEY, RESEND_FROM_EMAIL and NOTIFY_EMAIL from
// config.
func NewMailer(cfg map[string]string) Mailer {
	return Mailer{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		notifyTo:  config.GetString(cfg, "NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the mailer is fully configured.
func (m Mailer) Enabled() bool {
	return m.apiKey != "" && m.fromEmail != "" && m.notifyTo != ""
}

// Notify sends a notification email to the configured site owner address.
// Intended to be called from a goroutine; failures are logged, never
// propagated to the request that triggered them.
func (m Mailer) Notify(subject, body string) {
	if !m.Enabled() {
		return
	}
	if err := m.send(subject, body, []string{m.notifyTo}); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to send notification email")
	}
}

func (m Mailer) send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Text:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
