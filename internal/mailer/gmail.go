package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const gmailSendPath = "/gmail/v1/users/me/messages/send"

// ErrAuthExpired is returned when Gmail rejects the bearer token; the caller
// should force a re-authentication instead of retrying.
var ErrAuthExpired = errors.New("gmail access token expired or revoked")

// Attachment is one file to include in the outgoing message. Data is the
// base64-encoded file content, exactly as uploaded by the client.
type Attachment struct {
	Filename string `json:"filename" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

// Message describes one outgoing email. HTML selects the content type of the
// body part; attachments ride along as base64 parts.
type Message struct {
	To          string
	Subject     string
	Body        string
	HTML        bool
	Attachments []Attachment
}

// GmailSender delivers messages through the Gmail REST API using the
// caller-supplied OAuth bearer token. It holds no credentials of its own.
type GmailSender struct {
	client *resty.Client
}

// NewGmailSender creates a sender against the public Gmail endpoint.
func NewGmailSender() *GmailSender {
	client := resty.New().
		SetBaseURL("https://gmail.googleapis.com").
		SetTimeout(30 * time.Second)
	return &GmailSender{client: client}
}

// NewGmailSenderWithBaseURL exists for tests against a local server.
func NewGmailSenderWithBaseURL(baseURL string) *GmailSender {
	client := resty.New().SetBaseURL(baseURL)
	return &GmailSender{client: client}
}

type gmailErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Send builds the MIME message and posts it. A 401 (or invalid-credentials
// 403) maps to ErrAuthExpired; every other failure is a plain error.
func (s *GmailSender) Send(ctx context.Context, accessToken string, msg Message) error {
	raw := EncodeMessage(msg)

	var apiErr gmailErrorResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(map[string]string{"raw": raw}).
		SetError(&apiErr).
		Post(gmailSendPath)
	if err != nil {
		log.Printf("Error calling Gmail send API: %v", err)
		return fmt.Errorf("gmail send request failed: %w", err)
	}

	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized ||
		(resp.StatusCode() == http.StatusForbidden && apiErr.Error.Status == "PERMISSION_DENIED") {
		return ErrAuthExpired
	}

	return fmt.Errorf("gmail send failed with status %d: %s", resp.StatusCode(), apiErr.Error.Message)
}

// EncodeMessage renders msg as an RFC 2822 multipart/mixed message and
// base64url-encodes it the way the Gmail API expects (no padding).
func EncodeMessage(msg Message) string {
	return base64.RawURLEncoding.EncodeToString([]byte(BuildMIME(msg)))
}

// BuildMIME assembles the multipart/mixed body. The boundary only needs to
// be unlikely to collide with content, not cryptographically random.
func BuildMIME(msg Message) string {
	boundary := fmt.Sprintf("----=_Part_%d", time.Now().UnixNano())
	const nl = "\r\n"

	contentType := "text/plain; charset=UTF-8"
	if msg.HTML {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	b.WriteString(strings.Join([]string{
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		`Content-Type: multipart/mixed; boundary="` + boundary + `"`,
		"",
		"--" + boundary,
		"Content-Type: " + contentType,
		"Content-Transfer-Encoding: 7bit",
		"",
		msg.Body,
		"",
	}, nl))

	for _, att := range msg.Attachments {
		b.WriteString(strings.Join([]string{
			"--" + boundary,
			fmt.Sprintf(`Content-Type: %s; name="%s"`, att.MimeType, att.Filename),
			"Content-Transfer-Encoding: base64",
			fmt.Sprintf(`Content-Disposition: attachment; filename="%s"`, att.Filename),
			"",
			att.Data,
			"",
		}, nl))
	}

	b.WriteString("--" + boundary + "--")
	return b.String()
}
