package services

import "errors"

var (
	ErrResumeNotFound  = errors.New("resume not found")
	ErrHistoryNotFound = errors.New("history entry not found")
	ErrInvalidInput    = errors.New("invalid input")
)
