// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/store"
	"github.com/fiumana/guestdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// fixedNow pins the eligibility clock for the whole test suite.
var fixedNow = time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

func newCheckInService(
	checkInRepo *mockCheckInRepository,
	bookingRepo *mockBookingRepository,
	vault *mockVault,
	validator *mockValidator,
) *checkInService {
	svc := NewCheckInService(
		checkInRepo,
		bookingRepo,
		vault,
		validator,
		config.App{CheckinBaseURL: "https://stay.example.com"},
		logger.Nop(),
	).(*checkInService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func eligibleBooking() models.Booking {
	return models.Booking{
		ID:           "bk-1",
		PropertyID:   "prop-1",
		PropertyName: "Casa Bella",
		GuestCount:   2,
		CheckInDate:  fixedNow.AddDate(0, 0, 3),
		CheckOutDate: fixedNow.AddDate(0, 0, 6),
	}
}

func submitRequest() models.SubmitCheckInRequest {
	return models.SubmitCheckInRequest{
		FirstName:       "Mario",
		LastName:        "Rossi",
		DateOfBirth:     "1985-03-12",
		Nationality:     "IT",
		DocumentType:    models.DocumentPassport,
		DocumentNumber:  "YA1234567",
		Email:           "mario.rossi@example.com",
		Phone:           "+39 333 0000000",
		PrivacyAccepted: true,
		TermsAccepted:   true,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetBookingSummary
// ─────────────────────────────────────────────────────────────────────────────

func TestGetBookingSummary_Success(t *testing.T) {
	booking := eligibleBooking()
	booking.GuestName = "Mario Rossi"
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) { return booking, nil },
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	got, err := svc.GetBookingSummary(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.Equal(t, booking.ID, got.ID)
	assert.Equal(t, "Casa Bella", got.PropertyName)
	assert.Equal(t, booking.CheckInDate.Format(dateLayout), got.CheckInDate)
	assert.Equal(t, booking.CheckOutDate.Format(dateLayout), got.CheckOutDate)
	assert.Equal(t, 2, got.GuestCount)
	assert.Equal(t, "Mario Rossi", got.GuestName)
	assert.False(t, got.CheckInCompleted)
}

func TestGetBookingSummary_UnknownBooking(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) {
			return models.Booking{}, store.ErrBookingNotFound
		},
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	_, err := svc.GetBookingSummary(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrBookingNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Eligibility window
// ─────────────────────────────────────────────────────────────────────────────

func TestEligibilityAt_WindowMatrix(t *testing.T) {
	tests := []struct {
		name       string
		booking    models.Booking
		wantValid  bool
		wantState  models.CheckInState
		wantReason string
	}{
		{
			name:      "ArrivalInThreeDays → eligible",
			booking:   models.Booking{CheckInDate: fixedNow.AddDate(0, 0, 3), CheckOutDate: fixedNow.AddDate(0, 0, 6)},
			wantValid: true,
			wantState: models.StateEligiblePending,
		},
		{
			name:      "ArrivalToday → eligible",
			booking:   models.Booking{CheckInDate: fixedNow.Add(2 * time.Hour), CheckOutDate: fixedNow.AddDate(0, 0, 3)},
			wantValid: true,
			wantState: models.StateEligiblePending,
		},
		{
			name:      "ExactlySevenDaysBefore → eligible",
			booking:   models.Booking{CheckInDate: fixedNow.AddDate(0, 0, 7), CheckOutDate: fixedNow.AddDate(0, 0, 10)},
			wantValid: true,
			wantState: models.StateEligiblePending,
		},
		{
			name:       "SevenDaysAndOneHourBefore → too early",
			booking:    models.Booking{CheckInDate: fixedNow.Add(7*24*time.Hour + time.Hour), CheckOutDate: fixedNow.AddDate(0, 0, 10)},
			wantValid:  false,
			wantState:  models.StateNotEligible,
			wantReason: reasonTooEarly,
		},
		{
			name:       "EightDaysBefore → too early",
			booking:    models.Booking{CheckInDate: fixedNow.AddDate(0, 0, 8), CheckOutDate: fixedNow.AddDate(0, 0, 11)},
			wantValid:  false,
			wantState:  models.StateNotEligible,
			wantReason: reasonTooEarly,
		},
		{
			name:       "AfterDeparture → booking ended",
			booking:    models.Booking{CheckInDate: fixedNow.AddDate(0, 0, -5), CheckOutDate: fixedNow.AddDate(0, 0, -1)},
			wantValid:  false,
			wantState:  models.StateNotEligible,
			wantReason: reasonBookingEnded,
		},
		{
			name:      "DuringStay → eligible",
			booking:   models.Booking{CheckInDate: fixedNow.AddDate(0, 0, -1), CheckOutDate: fixedNow.AddDate(0, 0, 2)},
			wantValid: true,
			wantState: models.StateEligiblePending,
		},
		{
			name:       "AlreadyCompleted → submitted",
			booking:    models.Booking{CheckInCompleted: true, CheckInDate: fixedNow.AddDate(0, 0, 3), CheckOutDate: fixedNow.AddDate(0, 0, 6)},
			wantValid:  false,
			wantState:  models.StateSubmitted,
			wantReason: reasonAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eligibilityAt(tt.booking, fixedNow)

			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestValidateEligibility_UnknownBooking(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) {
			return models.Booking{}, store.ErrBookingNotFound
		},
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	got, err := svc.ValidateEligibility(context.Background(), "missing")

	// an unknown booking is a verdict, not an error
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, models.StateNotEligible, got.State)
	assert.Equal(t, reasonBookingNotFound, got.Reason)
}

func TestValidateEligibility_RepositoryFailure(t *testing.T) {
	dbErr := errors.New("connection lost")
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) {
			return models.Booking{}, dbErr
		},
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	_, err := svc.ValidateEligibility(context.Background(), "bk-1")
	require.ErrorIs(t, err, dbErr)
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmit_Success(t *testing.T) {
	booking := eligibleBooking()

	var savedData models.CheckInData
	var savedContact models.GuestContact
	checkInRepo := &mockCheckInRepository{
		onSaveSubmission: func(_ context.Context, data models.CheckInData, contact models.GuestContact) error {
			savedData = data
			savedContact = contact
			return nil
		},
	}
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, id string) (models.Booking, error) {
			require.Equal(t, booking.ID, id)
			return booking, nil
		},
	}
	vault := &mockVault{}
	svc := newCheckInService(checkInRepo, bookingRepo, vault, &mockValidator{})

	got, err := svc.Submit(context.Background(), booking.ID, submitRequest(), models.SubmissionMeta{
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, booking.ID, got.BookingID)
	assert.Equal(t, "Casa Bella", got.PropertyName)
	assert.Equal(t, booking.CheckInDate.Format(dateLayout), got.CheckInDate)

	// stored row: booking id and the 30-day retention stamp
	assert.Equal(t, booking.ID, savedData.BookingID)
	assert.Equal(t, fixedNow.AddDate(0, 0, retentionDays), savedData.ExpiresAt)

	// the encrypted payload carries the server-stamped fields, never the
	// client's idea of the stay window
	var record models.GuestRecord
	require.NoError(t, vault.DecryptObject(savedData.EncryptedData, &record))
	assert.True(t, record.ArrivalDate.Equal(booking.CheckInDate))
	assert.True(t, record.DepartureDate.Equal(booking.CheckOutDate))
	assert.True(t, record.SubmittedAt.Equal(fixedNow))
	assert.Equal(t, "203.0.113.7", record.IPAddress)
	assert.Equal(t, "Mozilla/5.0", record.UserAgent)

	// plaintext contact copied onto the booking row
	assert.Equal(t, models.GuestContact{
		Name:  "Mario Rossi",
		Email: "mario.rossi@example.com",
		Phone: "+39 333 0000000",
	}, savedContact)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	validationErr := errors.New("first name is required")
	svc := newCheckInService(&mockCheckInRepository{}, &mockBookingRepository{}, &mockVault{}, &mockValidator{err: validationErr})

	_, err := svc.Submit(context.Background(), "bk-1", models.SubmitCheckInRequest{}, models.SubmissionMeta{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validationErr)
}

func TestSubmit_NotEligible(t *testing.T) {
	booking := eligibleBooking()
	booking.CheckInDate = fixedNow.AddDate(0, 0, 20) // far outside the window
	booking.CheckOutDate = fixedNow.AddDate(0, 0, 23)

	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) { return booking, nil },
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	_, err := svc.Submit(context.Background(), booking.ID, submitRequest(), models.SubmissionMeta{})

	require.ErrorIs(t, err, ErrNotEligible)
	assert.Contains(t, err.Error(), reasonTooEarly)
}

func TestSubmit_BookingNotFound(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) {
			return models.Booking{}, store.ErrBookingNotFound
		},
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	_, err := svc.Submit(context.Background(), "missing", submitRequest(), models.SubmissionMeta{})
	require.ErrorIs(t, err, store.ErrBookingNotFound)
}

func TestSubmit_EncryptionFailure(t *testing.T) {
	booking := eligibleBooking()
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) { return booking, nil },
	}
	encryptErr := errors.New("encryption key is not configured")
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{encryptErr: encryptErr}, &mockValidator{})

	_, err := svc.Submit(context.Background(), booking.ID, submitRequest(), models.SubmissionMeta{})
	require.ErrorIs(t, err, encryptErr)
}

// ─────────────────────────────────────────────────────────────────────────────
// Retrieve
// ─────────────────────────────────────────────────────────────────────────────

func TestRetrieve_Success(t *testing.T) {
	vault := &mockVault{}
	blob, err := vault.EncryptObject(models.GuestRecord{FirstName: "Mario", LastName: "Rossi"})
	require.NoError(t, err)

	checkInRepo := &mockCheckInRepository{
		onGetCheckInData: func(_ context.Context, _ string) (models.CheckInData, error) {
			return models.CheckInData{BookingID: "bk-1", EncryptedData: blob, ExpiresAt: fixedNow.AddDate(0, 0, 10)}, nil
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, vault, &mockValidator{})

	record, err := svc.Retrieve(context.Background(), "bk-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Mario", record.FirstName)
}

func TestRetrieve_NotFound(t *testing.T) {
	checkInRepo := &mockCheckInRepository{
		onGetCheckInData: func(_ context.Context, _ string) (models.CheckInData, error) {
			return models.CheckInData{}, store.ErrCheckInDataNotFound
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, &mockVault{}, &mockValidator{})

	_, err := svc.Retrieve(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrCheckInDataNotFound)
}

func TestRetrieve_ExpiredRecordIsDeletedLazily(t *testing.T) {
	deleted := false
	checkInRepo := &mockCheckInRepository{
		onGetCheckInData: func(_ context.Context, _ string) (models.CheckInData, error) {
			return models.CheckInData{BookingID: "bk-1", EncryptedData: "blob", ExpiresAt: fixedNow.AddDate(0, 0, -1)}, nil
		},
		onDeleteCheckIn: func(_ context.Context, id string) error {
			deleted = true
			assert.Equal(t, "bk-1", id)
			return nil
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, &mockVault{}, &mockValidator{})

	_, err := svc.Retrieve(context.Background(), "bk-1")

	require.ErrorIs(t, err, store.ErrCheckInDataNotFound)
	assert.True(t, deleted, "expired record must be deleted on read")
}

func TestRetrieve_ExpiredDeleteFailureStillReportsMissing(t *testing.T) {
	checkInRepo := &mockCheckInRepository{
		onGetCheckInData: func(_ context.Context, _ string) (models.CheckInData, error) {
			return models.CheckInData{BookingID: "bk-1", ExpiresAt: fixedNow.AddDate(0, 0, -1)}, nil
		},
		onDeleteCheckIn: func(_ context.Context, _ string) error {
			return errors.New("db failure")
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, &mockVault{}, &mockValidator{})

	_, err := svc.Retrieve(context.Background(), "bk-1")
	require.ErrorIs(t, err, store.ErrCheckInDataNotFound)
}

func TestRetrieve_UndecryptableRecordReportsMissing(t *testing.T) {
	checkInRepo := &mockCheckInRepository{
		onGetCheckInData: func(_ context.Context, _ string) (models.CheckInData, error) {
			return models.CheckInData{BookingID: "bk-1", EncryptedData: "garbage", ExpiresAt: fixedNow.AddDate(0, 0, 10)}, nil
		},
	}
	vault := &mockVault{decryptErr: errors.New("failed to decrypt data")}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, vault, &mockValidator{})

	record, err := svc.Retrieve(context.Background(), "bk-1")

	require.ErrorIs(t, err, store.ErrCheckInDataNotFound)
	assert.Nil(t, record)
}

// ─────────────────────────────────────────────────────────────────────────────
// PurgeExpired / DeleteRecord / GenerateAccessLink
// ─────────────────────────────────────────────────────────────────────────────

func TestPurgeExpired_UsesServiceClock(t *testing.T) {
	checkInRepo := &mockCheckInRepository{
		onPurgeExpired: func(_ context.Context, now time.Time) (int64, error) {
			assert.True(t, now.Equal(fixedNow))
			return 4, nil
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, &mockVault{}, &mockValidator{})

	purged, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)
}

func TestDeleteRecord_Delegates(t *testing.T) {
	called := false
	checkInRepo := &mockCheckInRepository{
		onDeleteCheckIn: func(_ context.Context, id string) error {
			called = true
			assert.Equal(t, "bk-1", id)
			return nil
		},
	}
	svc := newCheckInService(checkInRepo, &mockBookingRepository{}, &mockVault{}, &mockValidator{})

	require.NoError(t, svc.DeleteRecord(context.Background(), "bk-1"))
	assert.True(t, called)
}

func TestGenerateAccessLink_Success(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) { return eligibleBooking(), nil },
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	link, err := svc.GenerateAccessLink(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "https://stay.example.com/bk-1", link)
}

func TestGenerateAccessLink_TrailingSlashBaseURL(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) { return eligibleBooking(), nil },
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})
	svc.checkinBaseURL = "https://stay.example.com/"

	link, err := svc.GenerateAccessLink(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "https://stay.example.com/bk-1", link)
}

func TestGenerateAccessLink_UnknownBooking(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		onGetBooking: func(_ context.Context, _ string) (models.Booking, error) {
			return models.Booking{}, store.ErrBookingNotFound
		},
	}
	svc := newCheckInService(&mockCheckInRepository{}, bookingRepo, &mockVault{}, &mockValidator{})

	_, err := svc.GenerateAccessLink(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrBookingNotFound)
}
