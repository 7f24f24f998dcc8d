package email

// TemplateID identifies one of the six fixed email templates.
type TemplateID int

const (
	TemplateProfessionalIntro    TemplateID = 1
	TemplateSkillsHighlight      TemplateID = 2
	TemplateExperienceFocused    TemplateID = 3
	TemplateProjectShowcase      TemplateID = 4
	TemplateCareerTransition     TemplateID = 5
	TemplateComprehensiveProfile TemplateID = 6
)

// JobDetails carries the user-entered application target.
type JobDetails struct {
	CompanyName    string `json:"companyName"`
	Position       string `json:"position"`
	RecipientEmail string `json:"recipientEmail"`
}

// GeneratedEmail is the result of rendering a template against a resume
// snapshot: a subject line plus plain-text and HTML bodies.
type GeneratedEmail struct {
	Subject  string `json:"subject"`
	BodyText string `json:"bodyText"`
	BodyHTML string `json:"bodyHtml"`
}

// TemplateMetadata describes one template for the gallery view. The table in
// metadata.go is compiled in and never mutated at runtime.
type TemplateMetadata struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Subject     string     `json:"subject"`
	Preview     string     `json:"preview"`
	Description string     `json:"description"`
}
