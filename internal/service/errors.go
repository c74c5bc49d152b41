package service

import "errors"

var (
	// ErrInvalidDataProvided indicates the caller supplied incomplete or
	// malformed input (empty credentials, failed guest validation).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials indicates the admin login or password did not match.
	ErrWrongCredentials = errors.New("wrong login or password")

	// ErrTokenCreationFailed indicates JWT signing failed.
	ErrTokenCreationFailed = errors.New("failed to create token")

	// ErrTokenIsExpiredOrInvalid is the normalised verdict for every token
	// validation failure: expired, wrong issuer, wrong signature, malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotEligible indicates the booking cannot accept a check-in right
	// now. The wrapped message carries the guest-facing reason.
	ErrNotEligible = errors.New("check-in is not available")

	// ErrCheckInNotCompleted indicates a portal submission was requested for
	// a booking whose guest has not completed online check-in.
	ErrCheckInNotCompleted = errors.New("check-in not completed for this booking")

	// ErrCredentialsNotConfigured indicates the Portale Alloggiati operator
	// credentials are missing from the environment.
	ErrCredentialsNotConfigured = errors.New("alloggiati credentials are not configured")
)
