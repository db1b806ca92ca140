package services

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses in handleServiceError.
var (
	// Authentication / session lifecycle
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrSessionInvalid         = errors.New("invalid session")
	ErrSessionExpired         = errors.New("session expired")
	ErrIdentityExchangeFailed = errors.New("failed to get session data")

	// Missing records
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrDriveNotFound        = errors.New("drive not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrTestNotFound         = errors.New("test not found")
	ErrResourceNotFound     = errors.New("resource not found")

	// Business rules
	ErrAlreadyApplied = errors.New("already applied to this drive")
)
