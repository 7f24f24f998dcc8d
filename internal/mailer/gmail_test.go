package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIME(t *testing.T) {
	msg := Message{
		To:      "hr@acme.example",
		Subject: "Application for Engineer",
		Body:    "<p>Hello</p>",
		HTML:    true,
		Attachments: []Attachment{
			{Filename: "cv.pdf", MimeType: "application/pdf", Data: "ZmFrZQ=="},
		},
	}

	mime := BuildMIME(msg)

	assert.Contains(t, mime, "To: hr@acme.example\r\n")
	assert.Contains(t, mime, "Subject: Application for Engineer\r\n")
	assert.Contains(t, mime, "MIME-Version: 1.0")
	assert.Contains(t, mime, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, mime, `Content-Type: application/pdf; name="cv.pdf"`)
	assert.Contains(t, mime, `Content-Disposition: attachment; filename="cv.pdf"`)
	assert.Contains(t, mime, "ZmFrZQ==")
	assert.True(t, strings.HasSuffix(mime, "--"), "message must end with closing boundary")
}

func TestBuildMIME_PlainTextWithoutAttachments(t *testing.T) {
	mime := BuildMIME(Message{To: "a@b.c", Subject: "Hi", Body: "Hello"})

	assert.Contains(t, mime, "Content-Type: text/plain; charset=UTF-8")
	assert.NotContains(t, mime, "Content-Disposition: attachment")
}

func TestEncodeMessage_IsBase64URLWithoutPadding(t *testing.T) {
	raw := EncodeMessage(Message{To: "a@b.c", Subject: "Hi", Body: "Hello + goodbye /"})

	assert.NotContains(t, raw, "=")
	assert.NotContains(t, raw, "+")
	assert.NotContains(t, raw, "/")

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Hello + goodbye /")
}

func TestGmailSender_Send(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantExpired bool
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			body:   `{"id":"msg-1"}`,
		},
		{
			name:        "Unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"code":401,"message":"Invalid Credentials","status":"UNAUTHENTICATED"}}`,
			wantErr:     true,
			wantExpired: true,
		},
		{
			name:        "PermissionDenied",
			status:      http.StatusForbidden,
			body:        `{"error":{"code":403,"message":"Request had insufficient authentication scopes.","status":"PERMISSION_DENIED"}}`,
			wantErr:     true,
			wantExpired: true,
		},
		{
			name:    "ServerError",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"code":500,"message":"Backend Error","status":"INTERNAL"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, gmailSendPath, r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			sender := NewGmailSenderWithBaseURL(srv.URL)
			err := sender.Send(context.Background(), "test-token", Message{
				To: "hr@acme.example", Subject: "Hi", Body: "Hello",
			})

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantExpired, errors.Is(err, ErrAuthExpired), "unexpected auth-expiry classification: %v", err)
		})
	}
}
