package dto

import "job-email-generator/internal/models"

type EmailHistoryListResponse struct {
	Entries []models.EmailHistory `json:"entries"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

type DeleteHistoryResponse struct {
	Success bool `json:"success"`
}
