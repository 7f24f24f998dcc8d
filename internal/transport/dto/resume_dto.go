package dto

import "job-email-generator/internal/models"

// SaveResumeRequest carries the full document body for an upsert. The server
// owns userId and both timestamps; clients never send them.
type SaveResumeRequest struct {
	PersonalInfo    models.PersonalInfo     `json:"personalInfo"`
	SocialLinks     models.SocialLinks      `json:"socialLinks"`
	WorkExperiences []models.WorkExperience `json:"workExperiences"`
	Education       []models.Education      `json:"education"`
	Projects        []models.Project        `json:"projects"`
	Skills          models.Skills           `json:"skills"`
}

// ResumeResponse wraps the document so an absent resume can be returned as
// an explicit null rather than a 404.
type ResumeResponse struct {
	Resume *models.ResumeData `json:"resume"`
}
