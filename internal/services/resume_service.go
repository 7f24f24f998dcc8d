package services

import (
	"context"
	"errors"
	"fmt"

	"job-email-generator/internal/models"
	"job-email-generator/internal/storage"
	"job-email-generator/internal/transport/dto"

	"github.com/google/uuid"
)

type resumeService struct {
	resumes storage.ResumeRepository
	history storage.EmailHistoryRepository
}

// NewResumeService creates a new ResumeService.
func NewResumeService(resumes storage.ResumeRepository, history storage.EmailHistoryRepository) ResumeService {
	return &resumeService{resumes: resumes, history: history}
}

// Load returns the user's resume document, or ErrResumeNotFound when the
// user has never saved one. Callers decide whether absence is an error or
// an explicit null.
func (s *resumeService) Load(ctx context.Context, userID string) (*models.ResumeData, error) {
	resume, err := s.resumes.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return resume, nil
}

// Save overwrites the whole document. Embedded entries arriving without an
// id get one assigned here so the client can address them on later edits.
func (s *resumeService) Save(ctx context.Context, userID string, req *dto.SaveResumeRequest) (*models.ResumeData, error) {
	resume := models.NewResumeData(userID)
	resume.PersonalInfo = req.PersonalInfo
	resume.SocialLinks = req.SocialLinks
	resume.Skills = req.Skills
	if resume.Skills.SelectedSkills == nil {
		resume.Skills.SelectedSkills = []string{}
	}
	if req.WorkExperiences != nil {
		resume.WorkExperiences = req.WorkExperiences
	}
	if req.Education != nil {
		resume.Education = req.Education
	}
	if req.Projects != nil {
		resume.Projects = req.Projects
	}

	for i := range resume.WorkExperiences {
		if resume.WorkExperiences[i].ID == "" {
			resume.WorkExperiences[i].ID = uuid.NewString()
		}
	}
	for i := range resume.Education {
		if resume.Education[i].ID == "" {
			resume.Education[i].ID = uuid.NewString()
		}
	}
	for i := range resume.Projects {
		if resume.Projects[i].ID == "" {
			resume.Projects[i].ID = uuid.NewString()
		}
	}

	saved, err := s.resumes.Upsert(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return saved, nil
}

// Delete removes the user's resume document and their email history
// (account-deletion flow).
func (s *resumeService) Delete(ctx context.Context, userID string) error {
	if err := s.resumes.Delete(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrResumeNotFound
		}
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if err := s.history.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete email history: %w", err)
	}
	return nil
}
