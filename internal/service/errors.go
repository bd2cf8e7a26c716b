package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Resource Errors =====
var (
	ErrSubjectRequired  = errors.New("authenticated subject required")
	ErrWorldNotFound    = errors.New("world not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrCampaignNotFound = errors.New("campaign not found")
)

// ===== Campaign Errors =====
var (
	ErrEventSummaryRequired = errors.New("event summary is required")
)

// ===== Generation Errors =====
var (
	ErrPromptRequired   = errors.New("prompt is required")
	ErrGenerationFailed = errors.New("text generation failed")
	ErrEmptyCompletion  = errors.New("provider returned no completion")
)
