package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "job-email-generator/internal/mocks"
	"job-email-generator/internal/models"
	"job-email-generator/internal/services"
	"job-email-generator/internal/storage"
	"job-email-generator/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "auth0|user-123"

func TestResumeService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumes := mock_storage.NewMockResumeRepository(ctrl)
	mockHistory := mock_storage.NewMockEmailHistoryRepository(ctrl)
	svc := services.NewResumeService(mockResumes, mockHistory)

	repoErr := errors.New("connection refused")

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func() {
				resume := models.NewResumeData(testUserID)
				resume.PersonalInfo.FullName = "Jane Doe"
				mockResumes.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(resume, nil).Times(1)
			},
			expectedError: nil,
		},
		{
			name: "Not Found",
			mockSetup: func() {
				mockResumes.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrResumeNotFound,
		},
		{
			name: "Repository Error",
			mockSetup: func() {
				mockResumes.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(nil, repoErr).Times(1)
			},
			expectedError: repoErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			resume, err := svc.Load(context.Background(), testUserID)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resume)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resume)
				assert.Equal(t, "Jane Doe", resume.PersonalInfo.FullName)
			}
		})
	}
}

func TestResumeService_Save_AssignsEntryIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumes := mock_storage.NewMockResumeRepository(ctrl)
	mockHistory := mock_storage.NewMockEmailHistoryRepository(ctrl)
	svc := services.NewResumeService(mockResumes, mockHistory)

	req := &dto.SaveResumeRequest{
		PersonalInfo: models.PersonalInfo{FullName: "Jane Doe"},
		WorkExperiences: []models.WorkExperience{
			{Company: "Acme", Position: "Engineer"},
			{ID: "existing-id", Company: "Globex", Position: "Senior Engineer"},
		},
		Education: []models.Education{{Institution: "MIT"}},
		Projects:  []models.Project{{Name: "Toolkit"}},
		Skills:    models.Skills{Position: "Engineer"},
	}

	var captured *models.ResumeData
	mockResumes.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resume *models.ResumeData) (*models.ResumeData, error) {
			captured = resume
			resume.CreatedAt = time.Now()
			resume.LastUpdated = time.Now()
			return resume, nil
		}).Times(1)

	saved, err := svc.Save(context.Background(), testUserID, req)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, testUserID, captured.UserID)
	assert.NotEmpty(t, captured.WorkExperiences[0].ID)
	assert.Equal(t, "existing-id", captured.WorkExperiences[1].ID)
	assert.NotEmpty(t, captured.Education[0].ID)
	assert.NotEmpty(t, captured.Projects[0].ID)
	assert.NotNil(t, captured.Skills.SelectedSkills)
}

func TestResumeService_Save_WholeDocumentOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumes := mock_storage.NewMockResumeRepository(ctrl)
	mockHistory := mock_storage.NewMockEmailHistoryRepository(ctrl)
	svc := services.NewResumeService(mockResumes, mockHistory)

	// An empty request still produces a complete document with empty lists,
	// replacing whatever was stored before.
	mockResumes.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resume *models.ResumeData) (*models.ResumeData, error) {
			assert.NotNil(t, resume.WorkExperiences)
			assert.NotNil(t, resume.Education)
			assert.NotNil(t, resume.Projects)
			assert.Empty(t, resume.WorkExperiences)
			return resume, nil
		}).Times(1)

	_, err := svc.Save(context.Background(), testUserID, &dto.SaveResumeRequest{})
	require.NoError(t, err)
}

func TestResumeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumes := mock_storage.NewMockResumeRepository(ctrl)
	mockHistory := mock_storage.NewMockEmailHistoryRepository(ctrl)
	svc := services.NewResumeService(mockResumes, mockHistory)

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func() {
				mockResumes.EXPECT().Delete(gomock.Any(), testUserID).Return(nil).Times(1)
				mockHistory.EXPECT().DeleteAllByUser(gomock.Any(), testUserID).Return(nil).Times(1)
			},
		},
		{
			name: "Not Found",
			mockSetup: func() {
				mockResumes.EXPECT().Delete(gomock.Any(), testUserID).Return(storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrResumeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := svc.Delete(context.Background(), testUserID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
