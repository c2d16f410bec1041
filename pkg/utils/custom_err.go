package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")

	// Billing / webhook failures
	ErrMalformedEvent          = errors.New("malformed billing event")
	ErrBillingCustomerNotFound = errors.New("billing customer not found")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrSubscriptionRequired    = errors.New("active subscription required")
	ErrOAuthStateMismatch      = errors.New("oauth state mismatch")
	ErrOAuthExchangeFailed     = errors.New("oauth code exchange failed")

	// Content / draft failures
	ErrContentNotFound  = errors.New("content not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrNotContentOwner  = errors.New("not the content owner")
	ErrGenerationFailed = errors.New("content generation failed")
)
