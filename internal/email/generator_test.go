package email

import (
	"fmt"
	"strings"
	"testing"

	"job-email-generator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJob = JobDetails{
	CompanyName:    "Acme",
	Position:       "Engineer",
	RecipientEmail: "hr@acme.example",
}

func fullResume() *models.ResumeData {
	return &models.ResumeData{
		UserID: "user-1",
		PersonalInfo: models.PersonalInfo{
			FullName: "Jordan Doe",
			Email:    "jordan@example.com",
			Phone:    "+1 555 0100",
			Location: "Lisbon, Portugal",
			Summary:  "I build reliable backend systems.",
		},
		SocialLinks: models.SocialLinks{
			LinkedIn: "https://linkedin.com/in/jordandoe",
			GitHub:   "https://github.com/jordandoe",
		},
		WorkExperiences: []models.WorkExperience{
			{
				ID:               "w1",
				Company:          "Globex",
				Position:         "Backend Developer",
				StartDate:        "2021-03-01",
				CurrentlyWorking: true,
				Description:      "building payment services",
				Responsibilities: []string{"Own the billing pipeline", "", "Review code", "Mentor juniors", "On-call"},
			},
			{
				ID:        "w2",
				Company:   "Initech",
				Position:  "Junior Developer",
				StartDate: "2019-01-01",
				EndDate:   "2021-02-01",
			},
		},
		Education: []models.Education{
			{
				ID:           "e1",
				Institution:  "University of Lisbon",
				Degree:       "BSc",
				FieldOfStudy: "Computer Science",
				StartDate:    "2015-09",
				EndDate:      "2018-06",
			},
		},
		Projects: []models.Project{
			{
				ID:           "p1",
				Name:         "Invoicer",
				Role:         "Author",
				Technologies: []string{"Go", "Postgres"},
				StartDate:    "2022-01",
				EndDate:      "2022-08",
				Description:  "A small invoicing tool",
				KeyFeatures:  []string{"PDF export", "", "Recurring invoices"},
				GitHubURL:    "https://github.com/jordandoe/invoicer",
			},
		},
		Skills: models.Skills{
			Position:       "Backend Developer",
			SelectedSkills: []string{"Go", "PostgreSQL", "Redis", "Docker", "Kubernetes", "gRPC"},
		},
	}
}

// Every template must produce non-empty output containing the company and
// position even when the resume has no optional section filled in.
func TestGenerate_EmptyResumeAllTemplates(t *testing.T) {
	empty := models.NewResumeData("user-1")

	for id := TemplateProfessionalIntro; id <= TemplateComprehensiveProfile; id++ {
		t.Run(fmt.Sprintf("template_%d", id), func(t *testing.T) {
			got := Generate(id, empty, testJob)

			require.NotEmpty(t, got.Subject)
			require.NotEmpty(t, got.BodyText)
			require.NotEmpty(t, got.BodyHTML)

			assert.Contains(t, got.BodyText, "Acme")
			assert.Contains(t, got.BodyText, "Engineer")
			assert.Contains(t, got.BodyHTML, "Acme")
			assert.Contains(t, got.BodyHTML, "Engineer")
			// Placeholder name substitutes for the missing personal info
			assert.Contains(t, got.BodyText, "Your Name")
		})
	}
}

// Unknown template ids fall back to Professional Introduction; the output
// must be byte-identical to selecting template 1 explicitly.
func TestGenerate_UnknownTemplateFallsBack(t *testing.T) {
	resume := fullResume()

	want := Generate(TemplateProfessionalIntro, resume, testJob)

	for _, id := range []TemplateID{0, 7, 42, -1} {
		got := Generate(id, resume, testJob)
		assert.Equal(t, want, got, "template id %d should fall back to template 1", id)
	}
}

func TestGenerate_SkillsHighlightEmptyResume(t *testing.T) {
	got := Generate(TemplateSkillsHighlight, models.NewResumeData("user-1"), testJob)

	assert.Equal(t, "Skilled Engineer Ready to Contribute - Your Name", got.Subject)
	assert.Contains(t, got.BodyText, "• Your key skills")
	// Missing target position degrades to the generic field
	assert.Contains(t, got.BodyText, "software development")
}

func TestGenerate_SkillsHighlight(t *testing.T) {
	got := Generate(TemplateSkillsHighlight, fullResume(), testJob)

	assert.Equal(t, "Skilled Engineer Ready to Contribute - Jordan Doe", got.Subject)
	assert.Contains(t, got.BodyText, "• Go\n• PostgreSQL")
	assert.Contains(t, got.BodyText, "Recent Achievements:")
	assert.Contains(t, got.BodyText, "• Invoicer: A small invoicing tool")
	assert.Contains(t, got.BodyHTML, "<li>Go</li>")
}

func TestGenerate_ProfessionalIntroduction(t *testing.T) {
	got := Generate(TemplateProfessionalIntro, fullResume(), testJob)

	assert.Equal(t, "Application for Engineer - Jordan Doe", got.Subject)
	// Top five skills only
	assert.Contains(t, got.BodyText, "Go, PostgreSQL, Redis, Docker, Kubernetes")
	assert.NotContains(t, got.BodyText, "Kubernetes, gRPC")
	assert.Contains(t, got.BodyText, "Currently, I am working as a Backend Developer at Globex")
	assert.Contains(t, got.BodyText, "I hold a BSc in Computer Science from University of Lisbon")
	// Social links line, text and linkified HTML
	assert.Contains(t, got.BodyText, "LinkedIn: https://linkedin.com/in/jordandoe | GitHub: https://github.com/jordandoe")
	assert.Contains(t, got.BodyHTML, `<a href="https://linkedin.com/in/jordandoe" style="color: #1a73e8; text-decoration: none;">LinkedIn</a>`)
}

func TestGenerate_ExperienceFocused(t *testing.T) {
	got := Generate(TemplateExperienceFocused, fullResume(), testJob)

	assert.Equal(t, "Experienced Engineer Seeking New Opportunity - Jordan Doe", got.Subject)
	assert.Contains(t, got.BodyText, "With 2+ years of professional experience")
	assert.Contains(t, got.BodyText, "Backend Developer | Globex | Mar 2021 - Present")
	assert.Contains(t, got.BodyText, "Junior Developer | Initech | Jan 2019 - Feb 2021")
	// Blank responsibilities are dropped before the cap is applied
	assert.Contains(t, got.BodyText, "• Own the billing pipeline\n• Review code\n• Mentor juniors")
	assert.NotContains(t, got.BodyText, "On-call")
}

func TestGenerate_ExperienceFocusedNoHistory(t *testing.T) {
	got := Generate(TemplateExperienceFocused, models.NewResumeData("user-1"), testJob)
	assert.Contains(t, got.BodyText, "With several years of professional experience")
}

func TestGenerate_ProjectShowcase(t *testing.T) {
	got := Generate(TemplateProjectShowcase, fullResume(), testJob)

	assert.Equal(t, "Application for Engineer - Portfolio Included", got.Subject)
	assert.Contains(t, got.BodyText, "Invoicer | Author | Jan 2022 - Aug 2022")
	assert.Contains(t, got.BodyText, "Technologies: Go, Postgres")
	assert.Contains(t, got.BodyText, "GitHub: https://github.com/jordandoe/invoicer")
	assert.NotContains(t, got.BodyText, "Project URL:")
	assert.Contains(t, got.BodyHTML, `<a href="https://github.com/jordandoe/invoicer" style="color: #1a73e8;">`)
}

func TestGenerate_CareerTransition(t *testing.T) {
	got := Generate(TemplateCareerTransition, fullResume(), testJob)

	assert.Equal(t, "Transitioning Professional Applying for Engineer", got.Subject)
	assert.Contains(t, got.BodyText, "experience as Backend Developer")
	assert.Contains(t, got.BodyText, "• BSc in Computer Science - University of Lisbon")
	// Summary doubles as the motivation paragraph
	assert.Contains(t, got.BodyText, "Why This Opportunity:\nI build reliable backend systems.")
}

func TestGenerate_ComprehensiveProfile(t *testing.T) {
	got := Generate(TemplateComprehensiveProfile, fullResume(), testJob)

	assert.Equal(t, "Application for Engineer - Jordan Doe", got.Subject)
	for _, section := range []string{
		"Technical Proficiency",
		"Professional Experience & Key Projects",
		"Featured Projects:",
		"Education",
		"What I Bring to Your Team",
	} {
		assert.Contains(t, got.BodyText, section)
	}
	assert.Contains(t, got.BodyText, "BSc in Computer Science\nUniversity of Lisbon | Sep 2015 - Jun 2018")
	// All six skills listed, not just the top five
	assert.Contains(t, got.BodyText, "• gRPC")
}

func TestGenerate_Deterministic(t *testing.T) {
	resume := fullResume()
	first := Generate(TemplateComprehensiveProfile, resume, testJob)
	second := Generate(TemplateComprehensiveProfile, resume, testJob)
	assert.Equal(t, first, second)
}

func TestGenerateLegacy(t *testing.T) {
	got := GenerateLegacy(testJob)

	assert.Equal(t, "Application for Engineer at Acme", got.Subject)
	assert.Contains(t, got.BodyText, "Engineer position at Acme")
	assert.True(t, strings.HasPrefix(got.BodyHTML, "<div"))
}

func TestFormatSocialLinks(t *testing.T) {
	tests := []struct {
		name  string
		links models.SocialLinks
		want  string
	}{
		{
			name:  "Empty",
			links: models.SocialLinks{},
			want:  "",
		},
		{
			name:  "Single",
			links: models.SocialLinks{GitHub: "https://github.com/x"},
			want:  "\nGitHub: https://github.com/x",
		},
		{
			name: "OrderIsFixed",
			links: models.SocialLinks{
				GitHub:   "https://github.com/x",
				LinkedIn: "https://linkedin.com/in/x",
				Other:    "Dribbble handle: x",
			},
			want: "\nLinkedIn: https://linkedin.com/in/x | GitHub: https://github.com/x | Dribbble handle: x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSocialLinks(tt.links))
		})
	}
}
