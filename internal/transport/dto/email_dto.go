package dto

import (
	"job-email-generator/internal/mailer"
	"job-email-generator/internal/models"
)

type GenerateEmailRequest struct {
	// Not required: unknown or missing template ids fall back to template 1.
	TemplateID     int    `json:"templateId"`
	CompanyName    string `json:"companyName" validate:"required"`
	Position       string `json:"position" validate:"required"`
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
}

type GenerateEmailResponse struct {
	Subject  string `json:"subject"`
	BodyText string `json:"bodyText"`
	BodyHTML string `json:"bodyHtml"`
}

// SendEmailRequest is the Gmail send payload. The OAuth access token comes
// from the client session and is forwarded as-is, never stored.
type SendEmailRequest struct {
	TemplateID     int                 `json:"templateId"`
	CompanyName    string              `json:"companyName" validate:"required"`
	Position       string              `json:"position" validate:"required"`
	RecipientEmail string              `json:"recipientEmail" validate:"required,email"`
	AccessToken    string              `json:"accessToken" validate:"required"`
	Attachments    []mailer.Attachment `json:"attachments" validate:"dive"`
}

type SendEmailResponse struct {
	Success bool                 `json:"success"`
	Entry   *models.EmailHistory `json:"entry,omitempty"`
}

// MailtoRequest builds a mailto: URI instead of sending; attachments can only
// be named, not carried, so the body gets a manual-attachment note.
type MailtoRequest struct {
	TemplateID      int      `json:"templateId"`
	CompanyName     string   `json:"companyName" validate:"required"`
	Position        string   `json:"position" validate:"required"`
	RecipientEmail  string   `json:"recipientEmail" validate:"required,email"`
	AttachmentNames []string `json:"attachmentNames"`
}

type MailtoResponse struct {
	URI   string               `json:"uri"`
	Entry *models.EmailHistory `json:"entry,omitempty"`
}
