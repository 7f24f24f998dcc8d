package email

import "fmt"

// GenerateLegacy is the original single-template generator, kept as the
// fallback used by the send flow when the user has no stored resume
// document. It only needs the job details the send form collects.
func GenerateLegacy(job JobDetails) GeneratedEmail {
	bodyText := fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my interest in the %s position at %s. With my background and experience, I am confident I would be a valuable addition to your team.

I have attached my CV for your review. I would welcome the opportunity to discuss how my skills and experience align with your requirements.

Thank you for considering my application. I look forward to hearing from you.

Best regards`,
		job.Position, job.CompanyName)

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p>Dear Hiring Manager,</p>

<p>I am writing to express my interest in the <strong>%s</strong> position at <strong style="color: #1a73e8;">%s</strong>. With my background and experience, I am confident I would be a valuable addition to your team.</p>

<p>I have attached my CV for your review. I would welcome the opportunity to discuss how my skills and experience align with your requirements.</p>

<p>Thank you for considering my application. I look forward to hearing from you.</p>

<p>Best regards</p>
</div>`,
		job.Position, job.CompanyName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Application for %s at %s", job.Position, job.CompanyName),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}
