package email

import (
	"fmt"
	"log"
	"strings"

	"job-email-generator/internal/models"
)

// Placeholder text substituted for resume sections the user has not filled
// in. Keeping the surrounding sentences intact (at the cost of generic
// wording) avoids grammatically broken output.
const (
	placeholderName       = "Your Name"
	placeholderSkills     = "your skills"
	placeholderSkillsLine = "• Your key skills"
	placeholderField      = "software development"
)

// Generate renders the template identified by id against a resume snapshot
// and the entered job details. It is pure: no I/O, no errors, deterministic
// for a given input. An id outside 1-6 falls back to Professional
// Introduction; the branch is logged so caller bugs stay visible.
func Generate(id TemplateID, resume *models.ResumeData, job JobDetails) GeneratedEmail {
	switch id {
	case TemplateProfessionalIntro:
		return generateProfessionalIntroduction(resume, job)
	case TemplateSkillsHighlight:
		return generateSkillsHighlight(resume, job)
	case TemplateExperienceFocused:
		return generateExperienceFocused(resume, job)
	case TemplateProjectShowcase:
		return generateProjectShowcase(resume, job)
	case TemplateCareerTransition:
		return generateCareerTransition(resume, job)
	case TemplateComprehensiveProfile:
		return generateComprehensiveProfile(resume, job)
	default:
		log.Printf("Unknown template id %d, falling back to Professional Introduction", id)
		return generateProfessionalIntroduction(resume, job)
	}
}

// formatSocialLinks renders the signature link line, prefixed with a newline
// when any link is set so callers can append it directly.
func formatSocialLinks(links models.SocialLinks) string {
	var parts []string
	if links.LinkedIn != "" {
		parts = append(parts, "LinkedIn: "+links.LinkedIn)
	}
	if links.GitHub != "" {
		parts = append(parts, "GitHub: "+links.GitHub)
	}
	if links.Portfolio != "" {
		parts = append(parts, "Portfolio: "+links.Portfolio)
	}
	if links.Website != "" {
		parts = append(parts, "Website: "+links.Website)
	}
	if links.Twitter != "" {
		parts = append(parts, "Twitter: "+links.Twitter)
	}
	if links.Other != "" {
		parts = append(parts, links.Other)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, " | ")
}

// formatSocialLinksHTML turns the plain link line into anchors. Entries
// without a URL (the free-form "other" slot) pass through unchanged.
func formatSocialLinksHTML(linksText string) string {
	trimmed := strings.TrimSpace(linksText)
	if trimmed == "" {
		return ""
	}
	entries := strings.Split(trimmed, " | ")
	for i, entry := range entries {
		if !strings.Contains(entry, "http") {
			continue
		}
		label, url, found := strings.Cut(entry, ": ")
		if !found {
			continue
		}
		entries[i] = fmt.Sprintf(`<a href="%s" style="color: #1a73e8; text-decoration: none;">%s</a>`, url, label)
	}
	return strings.Join(entries, " | ")
}

// fullNameOr returns the resume holder's name or the generic placeholder.
func fullNameOr(info models.PersonalInfo) string {
	if info.FullName != "" {
		return info.FullName
	}
	return placeholderName
}

// contactLine renders the "email | phone | location" header used by every
// template. Blank fields stay blank; the separators are kept so the layout
// never shifts.
func contactLine(info models.PersonalInfo) string {
	return fmt.Sprintf("%s | %s | %s", info.Email, info.Phone, info.Location)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// firstN caps a section list to the template's display limit.
func firstN[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func bulletLines(values []string) string {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		lines = append(lines, "• "+v)
	}
	return strings.Join(lines, "\n")
}

func listItems(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString("<li>" + v + "</li>")
	}
	return b.String()
}

// Template 1: Professional Introduction. Classic professional approach with
// emphasis on qualifications and enthusiasm.
func generateProfessionalIntroduction(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)
	topSkills := strings.Join(firstN(resume.Skills.SelectedSkills, 5), ", ")
	if topSkills == "" {
		topSkills = placeholderSkills
	}
	linksText := formatSocialLinks(resume.SocialLinks)

	summary := resume.PersonalInfo.Summary
	if summary == "" {
		summary = "With my background and proven track record, I am confident I would be a valuable addition to your team."
	}

	experiencePara := "I bring hands-on experience and a passion for excellence to every project I undertake."
	var experienceParaHTML string
	if len(resume.WorkExperiences) > 0 {
		latest := resume.WorkExperiences[0]
		desc := latest.Description
		if desc == "" {
			desc = "developing my skills and contributing to impactful projects"
		}
		experiencePara = fmt.Sprintf("Currently, I am working as a %s at %s, where I have been %s.",
			latest.Position, latest.Company, desc)
		experienceParaHTML = fmt.Sprintf("<p>Currently, I am working as a <strong>%s</strong> at <strong>%s</strong>, where I have been %s.</p>",
			latest.Position, latest.Company, desc)
	} else {
		experienceParaHTML = "<p>" + experiencePara + "</p>"
	}

	var educationPara, educationParaHTML string
	if len(resume.Education) > 0 {
		latest := resume.Education[0]
		educationPara = fmt.Sprintf("I hold a %s in %s from %s, which has provided me with a strong foundation in the field.",
			latest.Degree, latest.FieldOfStudy, latest.Institution)
		educationParaHTML = fmt.Sprintf("<p>I hold a <strong>%s</strong> in <strong>%s</strong> from <strong>%s</strong>, which has provided me with a strong foundation in the field.</p>",
			latest.Degree, latest.FieldOfStudy, latest.Institution)
	}

	bodyText := fmt.Sprintf(`%s
%s%s

Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. %s

%s

My technical expertise includes %s, which I believe align perfectly with the requirements of this role.

%s

I am particularly drawn to %s because of your innovative approach and commitment to excellence. I would welcome the opportunity to discuss how my experience and skills can contribute to your team's success.

I have attached my resume for your review. Thank you for considering my application. I look forward to hearing from you.

Best regards,
%s`,
		fullName, contactLine(resume.PersonalInfo), linksText,
		job.Position, job.CompanyName, summary,
		experiencePara,
		topSkills,
		educationPara,
		job.CompanyName,
		fullName)

	linksHTML := ""
	if linksText != "" {
		linksHTML = "<br>" + formatSocialLinksHTML(linksText)
	}

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p><strong>%s</strong><br>
%s%s</p>

<p>Dear Hiring Manager,</p>

<p>I am writing to express my strong interest in the <strong>%s</strong> position at <strong style="color: #1a73e8;">%s</strong>. %s</p>

%s

<p>My technical expertise includes <strong>%s</strong>, which I believe align perfectly with the requirements of this role.</p>

%s

<p>I am particularly drawn to <strong style="color: #1a73e8;">%s</strong> because of your innovative approach and commitment to excellence. I would welcome the opportunity to discuss how my experience and skills can contribute to your team's success.</p>

<p>I have attached my resume for your review. Thank you for considering my application. I look forward to hearing from you.</p>

<p>Best regards,<br>
%s</p>
</div>`,
		fullName, contactLine(resume.PersonalInfo), linksHTML,
		job.Position, job.CompanyName, summary,
		experienceParaHTML,
		topSkills,
		educationParaHTML,
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Application for %s - %s", job.Position, fullName),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

// Template 2: Skills Highlight. Emphasizes technical expertise and specific
// skill sets, plus the two most recent projects.
func generateSkillsHighlight(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)

	skillsList := placeholderSkillsLine
	if len(resume.Skills.SelectedSkills) > 0 {
		skillsList = bulletLines(resume.Skills.SelectedSkills)
	}

	field := resume.Skills.Position
	if field == "" {
		field = placeholderField
	}

	recentProjects := firstN(resume.Projects, 2)

	var achievements, achievementsHTML string
	if len(recentProjects) > 0 {
		lines := make([]string, 0, len(recentProjects))
		items := make([]string, 0, len(recentProjects))
		for _, p := range recentProjects {
			desc := p.Description
			if desc == "" {
				desc = "Successfully delivered project"
			}
			lines = append(lines, fmt.Sprintf("• %s: %s", p.Name, desc))
			items = append(items, fmt.Sprintf("<li><strong>%s</strong>: %s</li>", p.Name, desc))
		}
		achievements = "Recent Achievements:\n" + strings.Join(lines, "\n")
		achievementsHTML = `<p style="font-weight: bold; margin-top: 20px;">Recent Achievements:</p>
<ul>
` + strings.Join(items, "") + `
</ul>`
	}

	bodyText := fmt.Sprintf(`%s
%s

Dear Hiring Manager,

I am excited to apply for the %s role at %s. As a professional with expertise in %s, I am eager to bring my technical capabilities to your innovative team.

Key Skills & Competencies:
%s

%s

I am impressed by %s's commitment to innovation, and I am confident that my technical background and problem-solving abilities would make me a strong contributor to your projects.

Please find my resume attached. I would appreciate the opportunity to discuss how my skill set aligns with your needs.

Thank you for your time and consideration.

Sincerely,
%s`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName, field,
		skillsList,
		achievements,
		job.CompanyName,
		fullName)

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p><strong>%s</strong><br>
%s</p>

<p>Dear Hiring Manager,</p>

<p>I am excited to apply for the <strong>%s</strong> role at <strong style="color: #1a73e8;">%s</strong>. As a professional with expertise in <strong>%s</strong>, I am eager to bring my technical capabilities to your innovative team.</p>

<p style="font-weight: bold; margin-top: 20px;">Key Skills & Competencies:</p>
<ul style="margin-top: 10px;">
%s
</ul>

%s

<p>I am impressed by <strong style="color: #1a73e8;">%s</strong>'s commitment to innovation, and I am confident that my technical background and problem-solving abilities would make me a strong contributor to your projects.</p>

<p>Please find my resume attached. I would appreciate the opportunity to discuss how my skill set aligns with your needs.</p>

<p>Thank you for your time and consideration.</p>

<p>Sincerely,<br>
%s</p>
</div>`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName, field,
		listItems(resume.Skills.SelectedSkills),
		achievementsHTML,
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Skilled %s Ready to Contribute - %s", job.Position, fullName),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

// Template 3: Experience-Focused. Best for candidates with significant work
// history; renders up to the three most recent entries.
func generateExperienceFocused(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)

	experienceYears := "several"
	if len(resume.WorkExperiences) > 0 {
		experienceYears = fmt.Sprintf("%d+", len(resume.WorkExperiences))
	}

	top := firstN(resume.WorkExperiences, 3)
	var blocks, blocksHTML []string
	for _, exp := range top {
		rng := formatDateRange(exp.StartDate, exp.EndDate, exp.CurrentlyWorking)
		resp := firstN(nonEmpty(exp.Responsibilities), 3)
		blocks = append(blocks, fmt.Sprintf("\n%s | %s | %s\n%s\n%s",
			exp.Position, exp.Company, rng, exp.Description, bulletLines(resp)))
		blocksHTML = append(blocksHTML, fmt.Sprintf(`
<div style="margin-bottom: 15px;">
<p style="margin: 5px 0;"><strong>%s</strong> | %s | <em>%s</em></p>
<p style="margin: 5px 0;">%s</p>
<ul style="margin: 5px 0;">
%s
</ul>
</div>`,
			exp.Position, exp.Company, rng, exp.Description, listItems(resp)))
	}

	bodyText := fmt.Sprintf(`%s
%s

Dear Hiring Manager,

With %s years of professional experience, I am writing to apply for the %s position at %s. Throughout my career, I have consistently delivered results and driven success in challenging environments.

Professional Highlights:
%s

I am particularly interested in %s because of your reputation for excellence. My experience has prepared me to make immediate contributions to your team.

I have attached my detailed resume and would welcome the opportunity to discuss how my background aligns with your requirements.

Thank you for considering my application.

Best regards,
%s`,
		fullName, contactLine(resume.PersonalInfo),
		experienceYears, job.Position, job.CompanyName,
		strings.Join(blocks, "\n"),
		job.CompanyName,
		fullName)

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p><strong>%s</strong><br>
%s</p>

<p>Dear Hiring Manager,</p>

<p>With <strong>%s years</strong> of professional experience, I am writing to apply for the <strong>%s</strong> position at <strong style="color: #1a73e8;">%s</strong>. Throughout my career, I have consistently delivered results and driven success in challenging environments.</p>

<p style="font-weight: bold; margin-top: 20px;">Professional Highlights:</p>
%s

<p>I am particularly interested in <strong style="color: #1a73e8;">%s</strong> because of your reputation for excellence. My experience has prepared me to make immediate contributions to your team.</p>

<p>I have attached my detailed resume and would welcome the opportunity to discuss how my background aligns with your requirements.</p>

<p>Thank you for considering my application.</p>

<p>Best regards,<br>
%s</p>
</div>`,
		fullName, contactLine(resume.PersonalInfo),
		experienceYears, job.Position, job.CompanyName,
		strings.Join(blocksHTML, ""),
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Experienced %s Seeking New Opportunity - %s", job.Position, fullName),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

// Template 4: Project Showcase. Perfect for showcasing concrete work
// examples; renders up to three projects with stack and links.
func generateProjectShowcase(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)
	topProjects := firstN(resume.Projects, 3)

	var blocks, blocksHTML []string
	for _, p := range topProjects {
		rng := formatDateRange(p.StartDate, p.EndDate, p.CurrentlyWorking)
		features := firstN(nonEmpty(p.KeyFeatures), 3)

		block := fmt.Sprintf("\n%s | %s | %s\n%s\nTechnologies: %s\n%s",
			p.Name, p.Role, rng, p.Description, strings.Join(p.Technologies, ", "), bulletLines(features))
		if p.ProjectURL != "" {
			block += "\nProject URL: " + p.ProjectURL
		}
		if p.GitHubURL != "" {
			block += "\nGitHub: " + p.GitHubURL
		}
		blocks = append(blocks, block)

		htmlBlock := fmt.Sprintf(`
<div style="margin-bottom: 20px; padding: 15px; background-color: #f8f9fa; border-left: 4px solid #1a73e8;">
<p style="margin: 5px 0;"><strong>%s</strong> | %s | <em>%s</em></p>
<p style="margin: 5px 0;">%s</p>
<p style="margin: 5px 0;"><strong>Technologies:</strong> %s</p>
<ul style="margin: 5px 0;">
%s
</ul>`,
			p.Name, p.Role, rng, p.Description, strings.Join(p.Technologies, ", "), listItems(features))
		if p.ProjectURL != "" {
			htmlBlock += fmt.Sprintf(`
<p style="margin: 5px 0;"><strong>Project URL:</strong> <a href="%s" style="color: #1a73e8;">%s</a></p>`, p.ProjectURL, p.ProjectURL)
		}
		if p.GitHubURL != "" {
			htmlBlock += fmt.Sprintf(`
<p style="margin: 5px 0;"><strong>GitHub:</strong> <a href="%s" style="color: #1a73e8;">%s</a></p>`, p.GitHubURL, p.GitHubURL)
		}
		htmlBlock += "\n</div>"
		blocksHTML = append(blocksHTML, htmlBlock)
	}

	bodyText := fmt.Sprintf(`%s
%s

Dear Hiring Manager,

I am applying for the %s role at %s, and I am excited to share how my project experience aligns with your needs.

Featured Projects:
%s

Technical Expertise:
%s

These projects demonstrate my ability to deliver high-quality solutions, which I understand is crucial for success in this role. I am particularly drawn to %s's innovative work.

My resume and portfolio are attached for your review. I would love to discuss how my project experience can benefit your team.

Thank you for your consideration.

Sincerely,
%s`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName,
		strings.Join(blocks, "\n\n"),
		strings.Join(resume.Skills.SelectedSkills, ", "),
		job.CompanyName,
		fullName)

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p><strong>%s</strong><br>
%s</p>

<p>Dear Hiring Manager,</p>

<p>I am applying for the <strong>%s</strong> role at <strong style="color: #1a73e8;">%s</strong>, and I am excited to share how my project experience aligns with your needs.</p>

<p style="font-weight: bold; margin-top: 20px;">Featured Projects:</p>
%s

<p style="font-weight: bold;">Technical Expertise:</p>
<p>%s</p>

<p>These projects demonstrate my ability to deliver high-quality solutions, which I understand is crucial for success in this role. I am particularly drawn to <strong style="color: #1a73e8;">%s</strong>'s innovative work.</p>

<p>My resume and portfolio are attached for your review. I would love to discuss how my project experience can benefit your team.</p>

<p>Thank you for your consideration.</p>

<p>Sincerely,<br>
%s</p>
</div>`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName,
		strings.Join(blocksHTML, ""),
		strings.Join(resume.Skills.SelectedSkills, ", "),
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Application for %s - Portfolio Included", job.Position),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

// Template 5: Career Transition. Ideal for career changers emphasizing
// transferable skills and recent training.
func generateCareerTransition(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)

	previousField := "my previous field"
	if len(resume.WorkExperiences) > 0 && resume.WorkExperiences[0].Position != "" {
		previousField = resume.WorkExperiences[0].Position
	}

	transferable := firstN(resume.Skills.SelectedSkills, 6)

	var recentEducation []models.Education
	for _, edu := range resume.Education {
		if edu.Degree != "" {
			recentEducation = append(recentEducation, edu)
		}
		if len(recentEducation) == 2 {
			break
		}
	}

	var training, trainingHTML string
	if len(recentEducation) > 0 {
		lines := make([]string, 0, len(recentEducation))
		items := make([]string, 0, len(recentEducation))
		for _, edu := range recentEducation {
			lines = append(lines, fmt.Sprintf("• %s in %s - %s", edu.Degree, edu.FieldOfStudy, edu.Institution))
			items = append(items, fmt.Sprintf("<li><strong>%s</strong> in %s - %s</li>", edu.Degree, edu.FieldOfStudy, edu.Institution))
		}
		training = "Recent Training & Development:\n" + strings.Join(lines, "\n")
		trainingHTML = `<p style="font-weight: bold; margin-top: 20px;">Recent Training & Development:</p>
<ul>
` + strings.Join(items, "") + `
</ul>`
	}

	motivation := resume.PersonalInfo.Summary
	if motivation == "" {
		motivation = "I am passionate about this field and eager to apply my diverse background to new challenges."
	}

	bodyText := fmt.Sprintf(`%s
%s

Dear Hiring Manager,

I am writing to express my interest in the %s position at %s. While my background includes experience as %s, I have developed strong transferable skills that make me an excellent candidate for this role.

Transferable Skills:
%s

%s

Why This Opportunity:
%s

I am particularly excited about %s because of your innovative approach. My unique perspective combined with my skills would bring fresh insights to your team.

Please find my resume attached. I would appreciate the opportunity to discuss how my diverse background can add value to your organization.

Thank you for considering my application.

Best regards,
%s`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName, previousField,
		bulletLines(transferable),
		training,
		motivation,
		job.CompanyName,
		fullName)

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<p><strong>%s</strong><br>
%s</p>

<p>Dear Hiring Manager,</p>

<p>I am writing to express my interest in the <strong>%s</strong> position at <strong style="color: #1a73e8;">%s</strong>. While my background includes experience as <strong>%s</strong>, I have developed strong transferable skills that make me an excellent candidate for this role.</p>

<p style="font-weight: bold; margin-top: 20px;">Transferable Skills:</p>
<ul>
%s
</ul>

%s

<p style="font-weight: bold; margin-top: 20px;">Why This Opportunity:</p>
<p>%s</p>

<p>I am particularly excited about <strong style="color: #1a73e8;">%s</strong> because of your innovative approach. My unique perspective combined with my skills would bring fresh insights to your team.</p>

<p>Please find my resume attached. I would appreciate the opportunity to discuss how my diverse background can add value to your organization.</p>

<p>Thank you for considering my application.</p>

<p>Best regards,<br>
%s</p>
</div>`,
		fullName, contactLine(resume.PersonalInfo),
		job.Position, job.CompanyName, previousField,
		listItems(transferable),
		trainingHTML,
		motivation,
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Transitioning Professional Applying for %s", job.Position),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

// Template 6: Comprehensive Profile. Detailed template showcasing all resume
// sections; the longest of the six.
func generateComprehensiveProfile(resume *models.ResumeData, job JobDetails) GeneratedEmail {
	fullName := fullNameOr(resume.PersonalInfo)
	linksText := formatSocialLinks(resume.SocialLinks)
	allSkills := resume.Skills.SelectedSkills

	field := resume.Skills.Position
	if field == "" {
		field = "professional"
	}
	summary := resume.PersonalInfo.Summary
	if summary == "" {
		summary = fmt.Sprintf("As a %s with comprehensive experience across multiple domains, I bring hands-on expertise in modern technologies, agile methodologies, and full-stack development that align with your team's needs.", field)
	}

	skillsSection := "• Your technical skills"
	skillsItemsHTML := "<li>Your technical skills</li>"
	if len(allSkills) > 0 {
		skillsSection = bulletLines(allSkills)
		skillsItemsHTML = listItems(allSkills)
	}

	var experienceSection, experienceSectionHTML string
	if len(resume.WorkExperiences) > 0 {
		top := firstN(resume.WorkExperiences, 3)
		blocks := make([]string, 0, len(top))
		htmlBlocks := make([]string, 0, len(top))
		for _, exp := range top {
			rng := formatDateRange(exp.StartDate, exp.EndDate, exp.CurrentlyWorking)
			resp := firstN(nonEmpty(exp.Responsibilities), 3)
			blocks = append(blocks, fmt.Sprintf("%s | %s | %s\n%s\n%s",
				exp.Position, exp.Company, rng, exp.Description, bulletLines(resp)))
			htmlBlocks = append(htmlBlocks, fmt.Sprintf(`<div style="margin-bottom: 20px;">
<p style="margin: 5px 0;"><strong>%s</strong> | %s | <em>%s</em></p>
<p style="margin: 5px 0;">%s</p>
<ul style="margin: 5px 0;">
%s
</ul>
</div>`,
				exp.Position, exp.Company, rng, exp.Description, listItems(resp)))
		}
		experienceSection = "Professional Experience & Key Projects\n\n" + strings.Join(blocks, "\n\n")
		experienceSectionHTML = `<h3 style="color: #1a73e8; margin-top: 25px; margin-bottom: 10px;">Professional Experience & Key Projects</h3>
` + strings.Join(htmlBlocks, "")
	}

	var projectsSection, projectsSectionHTML string
	if len(resume.Projects) > 0 {
		top := firstN(resume.Projects, 3)
		blocks := make([]string, 0, len(top))
		htmlBlocks := make([]string, 0, len(top))
		for _, p := range top {
			features := firstN(nonEmpty(p.KeyFeatures), 2)
			block := fmt.Sprintf("%s\n%s\nTechnologies: %s\n%s",
				p.Name, p.Description, strings.Join(p.Technologies, ", "), bulletLines(features))
			if p.ProjectURL != "" {
				block += "\nProject URL: " + p.ProjectURL
			}
			if p.GitHubURL != "" {
				block += "\nGitHub: " + p.GitHubURL
			}
			blocks = append(blocks, block)

			htmlBlock := fmt.Sprintf(`<div style="margin-bottom: 20px; padding: 15px; background-color: #f8f9fa; border-left: 4px solid #1a73e8;">
<p style="margin: 5px 0;"><strong>%s</strong></p>
<p style="margin: 5px 0;">%s</p>
<p style="margin: 5px 0;"><strong>Technologies:</strong> %s</p>
<ul style="margin: 5px 0;">
%s
</ul>`,
				p.Name, p.Description, strings.Join(p.Technologies, ", "), listItems(features))
			if p.ProjectURL != "" {
				htmlBlock += fmt.Sprintf(`
<p style="margin: 5px 0;"><strong>Project URL:</strong> <a href="%s" style="color: #1a73e8;">%s</a></p>`, p.ProjectURL, p.ProjectURL)
			}
			if p.GitHubURL != "" {
				htmlBlock += fmt.Sprintf(`
<p style="margin: 5px 0;"><strong>GitHub:</strong> <a href="%s" style="color: #1a73e8;">%s</a></p>`, p.GitHubURL, p.GitHubURL)
			}
			htmlBlock += "\n</div>"
			htmlBlocks = append(htmlBlocks, htmlBlock)
		}
		projectsSection = "Featured Projects:\n\n" + strings.Join(blocks, "\n\n")
		projectsSectionHTML = `<h3 style="color: #1a73e8; margin-top: 25px; margin-bottom: 10px;">Featured Projects</h3>
` + strings.Join(htmlBlocks, "")
	}

	var educationSection, educationSectionHTML string
	if len(resume.Education) > 0 {
		top := resume.Education
		if len(top) > 2 {
			top = top[:2]
		}
		blocks := make([]string, 0, len(top))
		htmlBlocks := make([]string, 0, len(top))
		for _, edu := range top {
			rng := formatDateRange(edu.StartDate, edu.EndDate, edu.CurrentlyStudying)
			blocks = append(blocks, fmt.Sprintf("%s in %s\n%s | %s",
				edu.Degree, edu.FieldOfStudy, edu.Institution, rng))
			htmlBlocks = append(htmlBlocks, fmt.Sprintf(`<p style="margin: 5px 0;"><strong>%s</strong> in %s<br>
%s | <em>%s</em></p>`,
				edu.Degree, edu.FieldOfStudy, edu.Institution, rng))
		}
		educationSection = "Education\n\n" + strings.Join(blocks, "\n\n")
		educationSectionHTML = `<h3 style="color: #1a73e8; margin-top: 25px; margin-bottom: 10px;">Education</h3>
` + strings.Join(htmlBlocks, "")
	}

	const strengths = `What I Bring to Your Team

• Problem-Solving: Strong analytical skills with ability to debug complex issues and optimize application performance
• Collaboration: Experience working in team environments, participating in code reviews, and contributing to technical discussions
• Learning Agility: Quick learner passionate about emerging technologies, best practices, and continuous skill development
• Clean Code Advocate: Commitment to writing maintainable, well-documented code following industry standards
• Initiative: Self-starter with proven ability to manage multiple projects and deliver results in fast-paced environments`

	const strengthsHTML = `<h3 style="color: #1a73e8; margin-top: 25px; margin-bottom: 10px;">What I Bring to Your Team</h3>
<ul>
<li><strong>Problem-Solving:</strong> Strong analytical skills with ability to debug complex issues and optimize application performance</li>
<li><strong>Collaboration:</strong> Experience working in team environments, participating in code reviews, and contributing to technical discussions</li>
<li><strong>Learning Agility:</strong> Quick learner passionate about emerging technologies, best practices, and continuous skill development</li>
<li><strong>Clean Code Advocate:</strong> Commitment to writing maintainable, well-documented code following industry standards</li>
<li><strong>Initiative:</strong> Self-starter with proven ability to manage multiple projects and deliver results in fast-paced environments</li>
</ul>`

	contact := fmt.Sprintf("%s | %s", resume.PersonalInfo.Phone, resume.PersonalInfo.Email)
	if linksText != "" {
		contact += "\n" + strings.TrimPrefix(linksText, "\n")
	}

	bodyText := fmt.Sprintf(`%s
%s

Dear Hiring Manager,

I am writing to express my interest in the %s position at %s. %s

Technical Proficiency

%s

%s

%s

%s

%s

I am excited about the opportunity to contribute to %s's innovative projects while learning from your experienced engineering team. My combination of academic foundation, practical experience, and enthusiasm for software development positions me to make meaningful contributions from day one.

I would welcome the opportunity to discuss how my technical skills, project experience, and passion align with your team's objectives. Thank you for considering my application.

Best regards,
%s`,
		fullName, contact,
		job.Position, job.CompanyName, summary,
		skillsSection,
		experienceSection,
		projectsSection,
		educationSection,
		strengths,
		job.CompanyName,
		fullName)

	contactHTML := fmt.Sprintf("%s | %s", resume.PersonalInfo.Phone, resume.PersonalInfo.Email)
	if linksText != "" {
		contactHTML += "<br>" + formatSocialLinksHTML(linksText)
	}

	bodyHTML := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px;">
<p><strong style="font-size: 18px;">%s</strong><br>
%s</p>

<p>Dear Hiring Manager,</p>

<p>I am writing to express my interest in the <strong>%s</strong> position at <strong style="color: #1a73e8;">%s</strong>. %s</p>

<h3 style="color: #1a73e8; margin-top: 25px; margin-bottom: 10px;">Technical Proficiency</h3>
<ul style="columns: 2; -webkit-columns: 2; -moz-columns: 2;">
%s
</ul>

%s

%s

%s

%s

<p>I am excited about the opportunity to contribute to <strong style="color: #1a73e8;">%s</strong>'s innovative projects while learning from your experienced engineering team. My combination of academic foundation, practical experience, and enthusiasm for software development positions me to make meaningful contributions from day one.</p>

<p>I would welcome the opportunity to discuss how my technical skills, project experience, and passion align with your team's objectives. Thank you for considering my application.</p>

<p>Best regards,<br>
%s</p>
</div>`,
		fullName, contactHTML,
		job.Position, job.CompanyName, summary,
		skillsItemsHTML,
		experienceSectionHTML,
		projectsSectionHTML,
		educationSectionHTML,
		strengthsHTML,
		job.CompanyName,
		fullName)

	return GeneratedEmail{
		Subject:  fmt.Sprintf("Application for %s - %s", job.Position, fullName),
		BodyText: bodyText,
		BodyHTML: bodyHTML,
	}
}

