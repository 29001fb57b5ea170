package services

import "errors"

// Sentinel errors returned by services. Controllers match with errors.Is
// and map each to an HTTP status.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")

	ErrAlreadyOnboarded = errors.New("onboarding already completed")
	ErrNotOnboarded     = errors.New("onboarding not completed")
	ErrSlugTaken        = errors.New("slug already in use")
	ErrInvalidSlug      = errors.New("invalid slug format")
	ErrInvalidTemplate  = errors.New("invalid template id")
	ErrEmailTaken       = errors.New("email already registered")

	ErrSelfDeletion   = errors.New("cannot delete your own account")
	ErrLastSuperAdmin = errors.New("cannot delete the last super admin")
)
