// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/crypto"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/store"
	"github.com/fiumana/guestdesk/internal/validators"
	"github.com/fiumana/guestdesk/models"
)

const (
	// retentionDays is how long an encrypted guest record is kept after
	// submission before it becomes eligible for purging.
	retentionDays = 30

	// eligibilityWindowDays is how many days before arrival the check-in
	// form opens.
	eligibilityWindowDays = 7

	dateLayout = "2006-01-02"
)

// Guest-facing eligibility rejection reasons.
const (
	reasonBookingNotFound  = "Booking not found"
	reasonAlreadyCompleted = "Check-in already completed"
	reasonTooEarly         = "Check-in is only available within 7 days of arrival"
	reasonBookingEnded     = "Booking has already ended"
)

// checkInService is the concrete implementation of CheckInService.
//
// Guest records exist in plaintext only inside a single call: Submit encrypts
// before persisting, Retrieve decrypts after loading, and nothing in between
// ever sees the payload.
type checkInService struct {
	checkInRepository store.CheckInRepository
	bookingRepository store.BookingRepository

	vault     crypto.Vault
	validator validators.Validator

	// checkinBaseURL is the public base the access links are built from.
	checkinBaseURL string

	// now is stubbed in tests to pin the eligibility clock.
	now func() time.Time

	logger *logger.Logger
}

// NewCheckInService constructs a CheckInService wired to the given
// repositories, encryption vault and guest validator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCheckInService(
	checkInRepository store.CheckInRepository,
	bookingRepository store.BookingRepository,
	vault crypto.Vault,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) CheckInService {
	return &checkInService{
		checkInRepository: checkInRepository,
		bookingRepository: bookingRepository,
		vault:             vault,
		validator:         validator,
		checkinBaseURL:    cfg.CheckinBaseURL,
		now:               time.Now,
		logger:            logger,
	}
}

// GetBookingSummary returns the booking fields shown on the public check-in
// page.
func (c *checkInService) GetBookingSummary(ctx context.Context, bookingID string) (models.BookingSummary, error) {
	booking, err := c.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.BookingSummary{}, err
	}

	return models.BookingSummary{
		ID:               booking.ID,
		PropertyName:     booking.PropertyName,
		PropertyAddress:  booking.PropertyAddress,
		CheckInDate:      booking.CheckInDate.Format(dateLayout),
		CheckOutDate:     booking.CheckOutDate.Format(dateLayout),
		GuestCount:       booking.GuestCount,
		GuestName:        booking.GuestName,
		CheckInCompleted: booking.CheckInCompleted,
	}, nil
}

// ValidateEligibility evaluates the check-in window for the booking.
//
// An unknown booking produces a not-eligible verdict with the same reason the
// guest would see, so the public endpoint does not leak which booking ids
// exist as distinct error shapes.
func (c *checkInService) ValidateEligibility(ctx context.Context, bookingID string) (models.Eligibility, error) {
	booking, err := c.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return models.Eligibility{State: models.StateNotEligible, Reason: reasonBookingNotFound}, nil
		}
		return models.Eligibility{}, err
	}

	return eligibilityAt(booking, c.now()), nil
}

// eligibilityAt applies the window rules to a booking at a given instant.
//
// The days-before-arrival count rounds up, so the window opens at the first
// instant exactly seven calendar days of time remain.
func eligibilityAt(booking models.Booking, now time.Time) models.Eligibility {
	if booking.CheckInCompleted {
		return models.Eligibility{State: models.StateSubmitted, Reason: reasonAlreadyCompleted}
	}

	daysBefore := int(math.Ceil(booking.CheckInDate.Sub(now).Hours() / 24))
	if daysBefore > eligibilityWindowDays {
		return models.Eligibility{State: models.StateNotEligible, Reason: reasonTooEarly}
	}

	if now.After(booking.CheckOutDate) {
		return models.Eligibility{State: models.StateNotEligible, Reason: reasonBookingEnded}
	}

	return models.Eligibility{Valid: true, State: models.StateEligiblePending}
}

// Submit validates the guest payload, stamps the server-controlled fields,
// encrypts the record and stores it together with the booking flag flip.
//
// Returns:
//   - ErrInvalidDataProvided (wrapping the validator's verdict) for a bad payload.
//   - store.ErrBookingNotFound for an unknown booking.
//   - ErrNotEligible (wrapping the guest-facing reason) outside the window.
func (c *checkInService) Submit(ctx context.Context, bookingID string, request models.SubmitCheckInRequest, meta models.SubmissionMeta) (models.SubmitCheckInResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).
			Str("func", "checkInService.Submit").
			Str("booking_id", bookingID).
			Msg("guest payload failed validation")
		return models.SubmitCheckInResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	booking, err := c.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.SubmitCheckInResponse{}, err
	}

	now := c.now()
	if eligibility := eligibilityAt(booking, now); !eligibility.Valid {
		log.Warn().
			Str("func", "checkInService.Submit").
			Str("booking_id", bookingID).
			Str("reason", eligibility.Reason).
			Msg("submission outside the check-in window")
		return models.SubmitCheckInResponse{}, fmt.Errorf("%w: %s", ErrNotEligible, eligibility.Reason)
	}

	record := request.GuestRecord()
	record.ArrivalDate = booking.CheckInDate
	record.DepartureDate = booking.CheckOutDate
	record.SubmittedAt = now
	record.IPAddress = meta.IPAddress
	record.UserAgent = meta.UserAgent

	blob, err := c.vault.EncryptObject(record)
	if err != nil {
		log.Err(err).
			Str("func", "checkInService.Submit").
			Str("booking_id", bookingID).
			Msg("failed to encrypt guest record")
		return models.SubmitCheckInResponse{}, fmt.Errorf("failed to encrypt guest record: %w", err)
	}

	data := models.CheckInData{
		BookingID:     bookingID,
		EncryptedData: blob,
		ExpiresAt:     now.AddDate(0, 0, retentionDays),
	}
	contact := models.GuestContact{
		Name:  record.FullName(),
		Email: record.Email,
		Phone: record.Phone,
	}

	if err := c.checkInRepository.SaveSubmission(ctx, data, contact); err != nil {
		return models.SubmitCheckInResponse{}, err
	}

	log.Info().
		Str("func", "checkInService.Submit").
		Str("booking_id", bookingID).
		Int("additional_guests", len(record.AdditionalGuests)).
		Msg("check-in submitted")

	return models.SubmitCheckInResponse{
		Success:      true,
		BookingID:    booking.ID,
		PropertyName: booking.PropertyName,
		CheckInDate:  booking.CheckInDate.Format(dateLayout),
		CheckOutDate: booking.CheckOutDate.Format(dateLayout),
	}, nil
}

// Retrieve loads and decrypts the stored guest record.
//
// A record past its retention window is deleted on read and reported as
// missing. A record that fails decryption (rotated key, corrupted blob) is
// also reported as missing; the guest re-submits rather than anyone
// attempting recovery.
func (c *checkInService) Retrieve(ctx context.Context, bookingID string) (*models.GuestRecord, error) {
	log := logger.FromContext(ctx)

	data, err := c.checkInRepository.GetCheckInData(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if c.now().After(data.ExpiresAt) {
		log.Info().
			Str("func", "checkInService.Retrieve").
			Str("booking_id", bookingID).
			Time("expired_at", data.ExpiresAt).
			Msg("check-in record passed retention, deleting")

		if deleteErr := c.checkInRepository.DeleteCheckInData(ctx, bookingID); deleteErr != nil {
			log.Err(deleteErr).
				Str("func", "checkInService.Retrieve").
				Str("booking_id", bookingID).
				Msg("failed to delete expired check-in record")
		}
		return nil, store.ErrCheckInDataNotFound
	}

	var record models.GuestRecord
	if err := c.vault.DecryptObject(data.EncryptedData, &record); err != nil {
		log.Warn().
			Err(err).
			Str("func", "checkInService.Retrieve").
			Str("booking_id", bookingID).
			Msg("failed to decrypt check-in record")
		return nil, store.ErrCheckInDataNotFound
	}

	return &record, nil
}

// PurgeExpired removes every record past its retention window.
func (c *checkInService) PurgeExpired(ctx context.Context) (int64, error) {
	return c.checkInRepository.PurgeExpired(ctx, c.now())
}

// DeleteRecord removes the stored record for the booking regardless of
// expiry. Used for GDPR erasure requests.
func (c *checkInService) DeleteRecord(ctx context.Context, bookingID string) error {
	return c.checkInRepository.DeleteCheckInData(ctx, bookingID)
}

// GenerateAccessLink builds the guest-facing check-in URL for the booking.
// The booking must exist; the link itself carries no secret beyond the
// booking id.
func (c *checkInService) GenerateAccessLink(ctx context.Context, bookingID string) (string, error) {
	if _, err := c.bookingRepository.GetBooking(ctx, bookingID); err != nil {
		return "", err
	}

	return strings.TrimRight(c.checkinBaseURL, "/") + "/" + bookingID, nil
}
