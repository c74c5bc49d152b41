package service

import (
	"context"

	"github.com/fiumana/guestdesk/models"
)

// CheckInService drives the guest check-in lifecycle: the eligibility window,
// encrypted submission, retention-aware retrieval, and purging.
type CheckInService interface {
	// GetBookingSummary returns the public view of a booking for the
	// check-in page. Never exposes stored guest data.
	GetBookingSummary(ctx context.Context, bookingID string) (models.BookingSummary, error)

	// ValidateEligibility evaluates the check-in window for the booking.
	// An unknown booking yields a not-eligible verdict, not an error.
	ValidateEligibility(ctx context.Context, bookingID string) (models.Eligibility, error)

	// Submit validates, encrypts and stores the guest record, and marks the
	// booking's check-in as completed, all in one transaction.
	Submit(ctx context.Context, bookingID string, request models.SubmitCheckInRequest, meta models.SubmissionMeta) (models.SubmitCheckInResponse, error)

	// Retrieve decrypts the stored guest record. Expired records are deleted
	// on read; expired, missing and undecryptable records all surface as
	// store.ErrCheckInDataNotFound.
	Retrieve(ctx context.Context, bookingID string) (*models.GuestRecord, error)

	// PurgeExpired removes every record past its retention window and
	// reports how many were deleted.
	PurgeExpired(ctx context.Context) (int64, error)

	// DeleteRecord removes the stored record for the booking. Deleting a
	// missing record succeeds.
	DeleteRecord(ctx context.Context, bookingID string) error

	// GenerateAccessLink builds the guest-facing check-in URL for an
	// existing booking.
	GenerateAccessLink(ctx context.Context, bookingID string) (string, error)
}

// AlloggiatiService drives guest reporting to the Portale Alloggiati.
type AlloggiatiService interface {
	// ListPending returns bookings awaiting portal submission, earliest
	// arrival first.
	ListPending(ctx context.Context) ([]models.PendingSubmission, error)

	// Submit reports one booking's guests to the portal. Re-submitting an
	// already reported booking short-circuits to a successful result with
	// protocol number "ALREADY_SENT" and never reaches the portal.
	Submit(ctx context.Context, bookingID string) (models.SubmissionResult, error)

	// SubmitAll reports every pending booking. Individual failures are
	// captured per booking and never abort the batch.
	SubmitAll(ctx context.Context) (models.BatchReport, error)

	// TestConnection verifies credentials and portal reachability without
	// submitting guest data.
	TestConnection(ctx context.Context) (bool, string)
}

// AuthService authenticates the administrator and manages JWT tokens.
type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
