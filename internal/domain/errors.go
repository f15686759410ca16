package domain

import "errors"

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternalError = errors.New("internal error")

	ErrCycleNotFound          = errors.New("budget cycle not found")
	ErrCycleAlreadyActive     = errors.New("an active budget cycle already exists")
	ErrCycleClosed            = errors.New("budget cycle is closed")
	ErrCategoryNotFound       = errors.New("budget category not found")
	ErrCategoryAlreadyExists  = errors.New("budget category already exists")
	ErrCategoryBucketMismatch = errors.New("category does not belong to bucket")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidBucket          = errors.New("invalid bucket")
	ErrInvalidAmount          = errors.New("amount must be zero or positive")
	ErrInvalidPayday          = errors.New("payday must be between 1 and 31")
	ErrInvalidAllocation      = errors.New("allocation percentages must be within [0,1] and sum to 1")
	ErrInvalidStrategy        = errors.New("unknown budget strategy")
	ErrNoIncome               = errors.New("cycle has no net income")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
)

// Validation constants
const (
	MaxCategoryNameLength    = 100
	MaxDescriptionLength     = 255
	MinPaydayDay             = 1
	MaxPaydayDay             = 31
	AllocationApplyTolerance = 0.01
)
