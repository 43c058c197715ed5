package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/view"
)

// Error codes that are not domain errors.
const (
	CodeInvalidParams  = "INVALID_PARAMS"
	CodeMethodNotFound = "METHOD_NOT_FOUND"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) CodeValue() string {
	return e.Code
}

func (e *APIError) MessageValue() string {
	return e.Message
}

func (e *APIError) DetailsValue() any {
	return e.Details
}

func (e *APIError) RecoveryHintValue() string {
	return e.RecoveryHint
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, scholarship.ErrRecordNotFound):
		return &APIError{Code: "SCHOLARSHIP_NOT_FOUND", Message: "scholarship not found", RecoveryHint: "Use list_scholarships for exact names"}
	case errors.Is(err, scholarship.ErrInvalidDueDate):
		return &APIError{Code: "INVALID_DATE", Message: err.Error(), RecoveryHint: "Use a real calendar date as YYYY-MM-DD"}
	case errors.Is(err, scholarship.ErrInvalidQuery):
		return &APIError{Code: "INVALID_QUERY", Message: "search query is empty", RecoveryHint: "Pass at least one search term"}
	case errors.Is(err, calendar.ErrInvalidMonth):
		return &APIError{Code: "INVALID_MONTH", Message: err.Error(), RecoveryHint: "Use YYYY-MM"}
	case errors.Is(err, profile.ErrInvalidProfile):
		return &APIError{Code: "INVALID_PROFILE", Message: err.Error(), RecoveryHint: "Call profile_options for allowed values"}
	case errors.Is(err, view.ErrUnknownView):
		return &APIError{Code: "UNKNOWN_VIEW", Message: err.Error(), RecoveryHint: "Use one of home, find, calendar, statistics, about"}
	case errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: CodeInvalidParams, Message: err.Error()}
	default:
		return nil
	}
}

func invalidParams(err error) *APIError {
	return &APIError{Code: CodeInvalidParams, Message: err.Error(), RecoveryHint: "Check the tool's input schema"}
}
