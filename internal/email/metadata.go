package email

// TemplateRegistry is the fixed set of six templates shown in the gallery.
// Order matches template ids 1 through 6.
var TemplateRegistry = []TemplateMetadata{
	{
		ID:          TemplateProfessionalIntro,
		Name:        "Professional Introduction",
		Subject:     "Application for {Position} - {Your Name}",
		Preview:     "A formal introduction highlighting your interest and qualifications",
		Description: "Classic professional approach with emphasis on qualifications and enthusiasm",
	},
	{
		ID:          TemplateSkillsHighlight,
		Name:        "Skills Highlight",
		Subject:     "Skilled {Position} Ready to Contribute - {Your Name}",
		Preview:     "Focus on specific technical skills and competencies",
		Description: "Emphasizes technical expertise and specific skill sets relevant to the position",
	},
	{
		ID:          TemplateExperienceFocused,
		Name:        "Experience-Focused",
		Subject:     "Experienced {Position} Seeking New Opportunity - {Your Name}",
		Preview:     "Emphasizes professional experience and career achievements",
		Description: "Best for candidates with significant work history and accomplishments",
	},
	{
		ID:          TemplateProjectShowcase,
		Name:        "Project Showcase",
		Subject:     "Application for {Position} - Portfolio Included",
		Preview:     "Highlights specific projects and tangible results",
		Description: "Perfect for showcasing concrete work examples and project outcomes",
	},
	{
		ID:          TemplateCareerTransition,
		Name:        "Career Transition",
		Subject:     "Transitioning Professional Applying for {Position}",
		Preview:     "Addresses career change while highlighting transferable skills",
		Description: "Ideal for career changers emphasizing transferable skills and motivation",
	},
	{
		ID:          TemplateComprehensiveProfile,
		Name:        "Comprehensive Profile",
		Subject:     "Application for {Position} - {Your Name}",
		Preview:     "Complete professional profile with all sections",
		Description: "Detailed template showcasing skills, experience, projects, and education",
	},
}

// MetadataByID returns the registry entry for id, or false when id is not one
// of the six known templates.
func MetadataByID(id TemplateID) (TemplateMetadata, bool) {
	for _, meta := range TemplateRegistry {
		if meta.ID == id {
			return meta, true
		}
	}
	return TemplateMetadata{}, false
}
