package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"job-email-generator/internal/email"
	"job-email-generator/internal/mailer"
	"job-email-generator/internal/models"
	"job-email-generator/internal/storage"
	"job-email-generator/internal/transport/dto"
)

const previewLength = 200

// Sender abstracts the Gmail API client so tests can stand in for it.
type Sender interface {
	Send(ctx context.Context, accessToken string, msg mailer.Message) error
}

type emailService struct {
	resumes storage.ResumeRepository
	history storage.EmailHistoryRepository
	sender  Sender
}

// NewEmailService creates a new EmailService.
func NewEmailService(resumes storage.ResumeRepository, history storage.EmailHistoryRepository, sender Sender) EmailService {
	return &emailService{resumes: resumes, history: history, sender: sender}
}

// Generate renders an email from the user's resume. A user with no saved
// resume still gets content via the single generic template.
func (s *emailService) Generate(ctx context.Context, userID string, req *dto.GenerateEmailRequest) (*email.GeneratedEmail, error) {
	generated, _, err := s.generate(ctx, userID, req.TemplateID, email.JobDetails{
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		return nil, err
	}
	return generated, nil
}

func (s *emailService) generate(ctx context.Context, userID string, templateID int, job email.JobDetails) (*email.GeneratedEmail, string, error) {
	templateName := "Generic Application"
	if meta, ok := email.MetadataByID(email.TemplateID(templateID)); ok {
		templateName = meta.Name
	} else if meta, ok := email.MetadataByID(email.TemplateProfessionalIntro); ok {
		// Unknown ids fall back to the first template downstream; keep the
		// recorded name consistent with what actually gets sent.
		templateName = meta.Name
	}

	resume, err := s.resumes.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("No resume for user %s, using generic template", userID)
			generated := email.GenerateLegacy(job)
			return &generated, "Generic Application", nil
		}
		return nil, "", fmt.Errorf("failed to load resume for generation: %w", err)
	}

	generated := email.Generate(email.TemplateID(templateID), resume, job)
	return &generated, templateName, nil
}

// SendGmail renders and sends the email through the Gmail API, then records
// the attempt. Both outcomes leave a history entry; only the status differs.
func (s *emailService) SendGmail(ctx context.Context, userID string, req *dto.SendEmailRequest) (*models.EmailHistory, error) {
	generated, templateName, err := s.generate(ctx, userID, req.TemplateID, email.JobDetails{
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		return nil, err
	}

	msg := mailer.Message{
		To:          req.RecipientEmail,
		Subject:     generated.Subject,
		Body:        generated.BodyHTML,
		HTML:        true,
		Attachments: req.Attachments,
	}

	sendErr := s.sender.Send(ctx, req.AccessToken, msg)

	status := models.EmailStatusSent
	if sendErr != nil {
		status = models.EmailStatusFailed
	}
	entry := s.historyEntry(userID, req.TemplateID, templateName, req.CompanyName, req.Position,
		req.RecipientEmail, generated, status, attachmentNames(req.Attachments))

	saved, recordErr := s.history.Insert(ctx, entry)
	if recordErr != nil {
		// The send already happened; losing the record is worth a log line
		// but must not turn a delivered email into a reported failure.
		log.Printf("Error recording send attempt for user %s: %v", userID, recordErr)
	}

	if sendErr != nil {
		if errors.Is(sendErr, mailer.ErrAuthExpired) {
			return saved, mailer.ErrAuthExpired
		}
		return saved, fmt.Errorf("failed to send email: %w", sendErr)
	}
	return saved, nil
}

// BuildMailto renders the email and returns a mailto: URI for the client to
// open. Nothing is sent server-side, so the history entry stays pending.
func (s *emailService) BuildMailto(ctx context.Context, userID string, req *dto.MailtoRequest) (string, *models.EmailHistory, error) {
	generated, templateName, err := s.generate(ctx, userID, req.TemplateID, email.JobDetails{
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		RecipientEmail: req.RecipientEmail,
	})
	if err != nil {
		return "", nil, err
	}

	uri := mailer.BuildMailtoURI(req.RecipientEmail, generated.Subject, generated.BodyText, req.AttachmentNames)

	entry := s.historyEntry(userID, req.TemplateID, templateName, req.CompanyName, req.Position,
		req.RecipientEmail, generated, models.EmailStatusPending, req.AttachmentNames)
	saved, recordErr := s.history.Insert(ctx, entry)
	if recordErr != nil {
		log.Printf("Error recording mailto attempt for user %s: %v", userID, recordErr)
	}

	return uri, saved, nil
}

func (s *emailService) historyEntry(userID string, templateID int, templateName, company, position, recipient string,
	generated *email.GeneratedEmail, status models.EmailStatus, attachmentNames []string) *models.EmailHistory {

	preview := generated.BodyText
	if len(preview) > previewLength {
		// Back up to a rune boundary so the stored preview stays valid UTF-8.
		cut := previewLength
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "..."
	}

	entry := &models.EmailHistory{
		UserID:         userID,
		CompanyName:    company,
		Position:       position,
		RecipientEmail: recipient,
		TemplateID:     templateID,
		TemplateName:   templateName,
		SentDate:       time.Now().UTC(),
		Status:         status,
		EmailSubject:   generated.Subject,
		EmailPreview:   preview,
	}
	if len(attachmentNames) > 0 {
		entry.Attachments.CV = attachmentNames[0]
	}
	if len(attachmentNames) > 1 {
		entry.Attachments.CoverLetter = attachmentNames[1]
	}
	return entry
}

func attachmentNames(attachments []mailer.Attachment) []string {
	names := make([]string, 0, len(attachments))
	for _, a := range attachments {
		names = append(names, a.Filename)
	}
	return names
}
