package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgEntryTooLong = "entry exceeds maximum length"

	// Generation errors
	ErrMsgUpstreamUnavailable = "upstream model unavailable"
	ErrMsgRateLimited         = "upstream model rate limited"
	ErrMsgGenerationParse     = "model output contained no parsable JSON"
	ErrMsgGenerationSchema    = "model output did not match the quest schema"
	ErrMsgCancelled           = "request cancelled"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Journal errors
	ErrMsgEntryNotFound = "journal entry not found"

	// Inventory errors
	ErrMsgItemNotFound = "item not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrEntryTooLong = errors.New(ErrMsgEntryTooLong)

	// Generation errors
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)
	// ErrRateLimited is a kind of ErrUpstreamUnavailable so callers that only
	// check the broad class still match it with errors.Is.
	ErrRateLimited      = fmt.Errorf("%s: %w", ErrMsgRateLimited, ErrUpstreamUnavailable)
	ErrGenerationParse  = errors.New(ErrMsgGenerationParse)
	ErrGenerationSchema = errors.New(ErrMsgGenerationSchema)
	ErrCancelled        = errors.New(ErrMsgCancelled)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Journal errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)

	// Inventory errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
