// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fiumana/guestdesk/internal/adapter"
	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/store"
	"github.com/fiumana/guestdesk/models"
)

const (
	esitoOK = "OK"

	// alreadySentProtocol is the synthetic protocol number returned when a
	// booking was reported earlier. The portal is never contacted twice.
	alreadySentProtocol = "ALREADY_SENT"
)

// alloggiatiService is the concrete implementation of AlloggiatiService.
//
// Credentials are read from configuration at call time, never cached, so an
// operator can rotate them without a restart. Test mode short-circuits the
// portal entirely while still exercising the full local workflow, including
// the alloggiati_sent flag flip.
type alloggiatiService struct {
	bookingRepository  store.BookingRepository
	propertyRepository store.PropertyRepository
	checkInService     CheckInService
	client             adapter.AlloggiatiClient

	cfg config.Alloggiati

	// now is stubbed in tests to pin simulated protocol numbers.
	now func() time.Time

	logger *logger.Logger
}

// NewAlloggiatiService constructs an AlloggiatiService. checkInService is
// used to decrypt guest records for mapping; guest data never transits this
// service in stored form.
func NewAlloggiatiService(
	bookingRepository store.BookingRepository,
	propertyRepository store.PropertyRepository,
	checkInService CheckInService,
	client adapter.AlloggiatiClient,
	cfg config.Alloggiati,
	logger *logger.Logger,
) AlloggiatiService {
	return &alloggiatiService{
		bookingRepository:  bookingRepository,
		propertyRepository: propertyRepository,
		checkInService:     checkInService,
		client:             client,
		cfg:                cfg,
		now:                time.Now,
		logger:             logger,
	}
}

// ListPending returns bookings with a completed check-in that were not yet
// reported, earliest arrival first.
func (a *alloggiatiService) ListPending(ctx context.Context) ([]models.PendingSubmission, error) {
	bookings, err := a.bookingRepository.ListPendingReports(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]models.PendingSubmission, 0, len(bookings))
	for _, booking := range bookings {
		pending = append(pending, models.PendingSubmission{
			BookingID:    booking.ID,
			GuestName:    booking.GuestName,
			PropertyName: booking.PropertyName,
			CheckInDate:  booking.CheckInDate,
		})
	}

	return pending, nil
}

// Submit reports one booking's guests to the portal.
//
// Portal-level rejections and transport failures both come back as an
// unsuccessful SubmissionResult rather than an error, so one bad booking in a
// batch never aborts the rest. Errors are reserved for local preconditions:
//   - store.ErrBookingNotFound for an unknown booking.
//   - ErrCheckInNotCompleted when the guest has not checked in yet.
//   - ErrCredentialsNotConfigured when operator credentials are missing.
func (a *alloggiatiService) Submit(ctx context.Context, bookingID string) (models.SubmissionResult, error) {
	log := logger.FromContext(ctx)

	booking, err := a.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	if !booking.CheckInCompleted {
		return models.SubmissionResult{}, fmt.Errorf("%w: %s", ErrCheckInNotCompleted, bookingID)
	}

	if booking.AlloggiatiSent {
		log.Info().
			Str("func", "alloggiatiService.Submit").
			Str("booking_id", bookingID).
			Msg("booking already reported, skipping portal call")
		return models.SubmissionResult{Success: true, ProtocolNumber: alreadySentProtocol}, nil
	}

	if !a.cfg.TestMode && (a.cfg.User == "" || a.cfg.Token == "" || a.cfg.WsKey == "") {
		return models.SubmissionResult{}, ErrCredentialsNotConfigured
	}

	record, err := a.checkInService.Retrieve(ctx, bookingID)
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("failed to load guest record: %w", err)
	}

	if a.cfg.TestMode {
		log.Info().
			Str("func", "alloggiatiService.Submit").
			Str("booking_id", bookingID).
			Msg("test mode, simulating portal submission")

		if err := a.bookingRepository.MarkAlloggiatiSent(ctx, bookingID); err != nil {
			return models.SubmissionResult{}, err
		}
		return models.SubmissionResult{
			Success:        true,
			ProtocolNumber: fmt.Sprintf("TEST-%d", a.now().UnixMilli()),
		}, nil
	}

	request := models.AlloggiatiRequest{
		Utente:         a.cfg.User,
		Token:          a.cfg.Token,
		EssePi:         a.cfg.WsKey,
		IDAppartamento: a.apartmentID(ctx, booking.PropertyID),
		Alloggiati:     buildAlloggiatiGuests(log, *record, booking),
	}

	response, err := a.client.Send(ctx, request)
	if err != nil {
		log.Err(err).
			Str("func", "alloggiatiService.Submit").
			Str("booking_id", bookingID).
			Msg("portal submission failed")
		return models.SubmissionResult{Success: false, Errors: []string{err.Error()}}, nil
	}

	if response.Esito != esitoOK {
		submissionErrors := response.Errori
		if len(submissionErrors) == 0 {
			submissionErrors = []string{"Unknown error"}
		}
		log.Warn().
			Str("func", "alloggiatiService.Submit").
			Str("booking_id", bookingID).
			Strs("errors", submissionErrors).
			Msg("portal rejected the submission")
		return models.SubmissionResult{Success: false, Errors: submissionErrors}, nil
	}

	if err := a.bookingRepository.MarkAlloggiatiSent(ctx, bookingID); err != nil {
		return models.SubmissionResult{}, err
	}

	log.Info().
		Str("func", "alloggiatiService.Submit").
		Str("booking_id", bookingID).
		Str("protocol_number", response.NumeroRicevuta).
		Msg("booking reported to the portal")

	return models.SubmissionResult{Success: true, ProtocolNumber: response.NumeroRicevuta}, nil
}

// SubmitAll reports every pending booking, isolating failures per booking.
func (a *alloggiatiService) SubmitAll(ctx context.Context) (models.BatchReport, error) {
	log := logger.FromContext(ctx)

	pending, err := a.ListPending(ctx)
	if err != nil {
		return models.BatchReport{}, err
	}

	report := models.BatchReport{
		Total:   len(pending),
		Results: make([]models.BatchResult, 0, len(pending)),
	}

	for _, submission := range pending {
		result, err := a.Submit(ctx, submission.BookingID)
		if err != nil {
			report.FailureCount++
			report.Results = append(report.Results, models.BatchResult{
				BookingID: submission.BookingID,
				Error:     err.Error(),
			})
			continue
		}

		if !result.Success {
			report.FailureCount++
			errorText := "Unknown error"
			if len(result.Errors) > 0 {
				errorText = result.Errors[0]
			}
			report.Results = append(report.Results, models.BatchResult{
				BookingID: submission.BookingID,
				Error:     errorText,
			})
			continue
		}

		report.SuccessCount++
		report.Results = append(report.Results, models.BatchResult{
			BookingID:      submission.BookingID,
			Success:        true,
			ProtocolNumber: result.ProtocolNumber,
		})
	}

	log.Info().
		Str("func", "alloggiatiService.SubmitAll").
		Int("total", report.Total).
		Int("succeeded", report.SuccessCount).
		Int("failed", report.FailureCount).
		Msg("batch submission finished")

	return report, nil
}

// TestConnection verifies credentials and portal reachability.
func (a *alloggiatiService) TestConnection(ctx context.Context) (bool, string) {
	if a.cfg.User == "" || a.cfg.Token == "" || a.cfg.WsKey == "" {
		return false, ErrCredentialsNotConfigured.Error()
	}

	response, err := a.client.Test(ctx, a.cfg.User, a.cfg.Token, a.cfg.WsKey)
	if err != nil {
		return false, err.Error()
	}

	message := response.Messaggio
	if message == "" {
		message = "Connection test completed"
	}

	return response.Esito == esitoOK, message
}

// apartmentID resolves the portal apartment identifier for a property,
// falling back to the property id itself when unmapped. The fallback is
// logged with the property name so operators can spot mapping gaps.
func (a *alloggiatiService) apartmentID(ctx context.Context, propertyID string) string {
	if mapped, ok := a.cfg.ApartmentMap[propertyID]; ok {
		return mapped
	}

	propertyName := propertyID
	if property, err := a.propertyRepository.GetProperty(ctx, propertyID); err == nil {
		propertyName = property.Name
	}

	logger.FromContext(ctx).Warn().
		Str("func", "alloggiatiService.apartmentID").
		Str("property", propertyName).
		Msg("property has no apartment mapping, sending the property id")

	return propertyID
}
