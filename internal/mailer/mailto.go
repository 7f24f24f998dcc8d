package mailer

import (
	"net/url"
	"strings"
)

// BuildMailtoURI composes the fallback link for clients sending through
// Outlook or another default mail client. Attachments cannot ride a mailto:
// link, so their filenames are appended as a manual-attach note instead.
func BuildMailtoURI(to, subject, body string, attachmentNames []string) string {
	if len(attachmentNames) > 0 {
		var note strings.Builder
		note.WriteString("\n\nNote: Please attach your files manually:\n")
		for i, name := range attachmentNames {
			if i > 0 {
				note.WriteString("\n")
			}
			note.WriteString("• " + name)
		}
		body += note.String()
	}

	return "mailto:" + to + "?subject=" + escapeQueryComponent(subject) +
		"&body=" + escapeQueryComponent(body)
}

// escapeQueryComponent percent-encodes a mailto query value. QueryEscape's
// form encoding uses "+" for spaces, which mail clients do not decode, so
// spaces become %20.
func escapeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
