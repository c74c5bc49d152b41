// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fiumana/guestdesk/models"
)

// Hand-rolled function-field mocks shared by the service tests. A nil
// function field means "not expected to be called" and panics loudly.

type mockCheckInRepository struct {
	onSaveSubmission func(ctx context.Context, data models.CheckInData, contact models.GuestContact) error
	onGetCheckInData func(ctx context.Context, bookingID string) (models.CheckInData, error)
	onDeleteCheckIn  func(ctx context.Context, bookingID string) error
	onPurgeExpired   func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockCheckInRepository) SaveSubmission(ctx context.Context, data models.CheckInData, contact models.GuestContact) error {
	return m.onSaveSubmission(ctx, data, contact)
}

func (m *mockCheckInRepository) GetCheckInData(ctx context.Context, bookingID string) (models.CheckInData, error) {
	return m.onGetCheckInData(ctx, bookingID)
}

func (m *mockCheckInRepository) DeleteCheckInData(ctx context.Context, bookingID string) error {
	return m.onDeleteCheckIn(ctx, bookingID)
}

func (m *mockCheckInRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.onPurgeExpired(ctx, now)
}

type mockBookingRepository struct {
	onGetBooking         func(ctx context.Context, bookingID string) (models.Booking, error)
	onMarkAlloggiatiSent func(ctx context.Context, bookingID string) error
	onListPending        func(ctx context.Context) ([]models.Booking, error)
}

func (m *mockBookingRepository) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	return m.onGetBooking(ctx, bookingID)
}

func (m *mockBookingRepository) MarkAlloggiatiSent(ctx context.Context, bookingID string) error {
	return m.onMarkAlloggiatiSent(ctx, bookingID)
}

func (m *mockBookingRepository) ListPendingReports(ctx context.Context) ([]models.Booking, error) {
	return m.onListPending(ctx)
}

type mockPropertyRepository struct {
	onGetProperty func(ctx context.Context, propertyID string) (models.Property, error)
}

func (m *mockPropertyRepository) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	return m.onGetProperty(ctx, propertyID)
}

// mockVault round-trips objects through plain JSON so tests can inspect what
// would have been encrypted without real key material.
type mockVault struct {
	encryptErr error
	decryptErr error
}

func (m *mockVault) Encrypt(plaintext []byte) (string, error) {
	if m.encryptErr != nil {
		return "", m.encryptErr
	}
	return string(plaintext), nil
}

func (m *mockVault) Decrypt(blob string) ([]byte, error) {
	if m.decryptErr != nil {
		return nil, m.decryptErr
	}
	return []byte(blob), nil
}

func (m *mockVault) EncryptObject(value any) (string, error) {
	if m.encryptErr != nil {
		return "", m.encryptErr
	}
	raw, err := json.Marshal(value)
	return string(raw), err
}

func (m *mockVault) DecryptObject(blob string, target any) error {
	if m.decryptErr != nil {
		return m.decryptErr
	}
	return json.Unmarshal([]byte(blob), target)
}

func (m *mockVault) Hash(data string) string {
	return data
}

type mockValidator struct {
	err error
}

func (m *mockValidator) Validate(_ context.Context, _ any, _ ...string) error {
	return m.err
}

type mockAlloggiatiClient struct {
	onSend func(ctx context.Context, request models.AlloggiatiRequest) (models.AlloggiatiResponse, error)
	onTest func(ctx context.Context, utente, token, essePi string) (models.AlloggiatiResponse, error)
}

func (m *mockAlloggiatiClient) Send(ctx context.Context, request models.AlloggiatiRequest) (models.AlloggiatiResponse, error) {
	return m.onSend(ctx, request)
}

func (m *mockAlloggiatiClient) Test(ctx context.Context, utente, token, essePi string) (models.AlloggiatiResponse, error) {
	return m.onTest(ctx, utente, token, essePi)
}

type mockCheckInService struct {
	onRetrieve func(ctx context.Context, bookingID string) (*models.GuestRecord, error)
}

func (m *mockCheckInService) GetBookingSummary(_ context.Context, _ string) (models.BookingSummary, error) {
	panic("not implemented")
}

func (m *mockCheckInService) ValidateEligibility(_ context.Context, _ string) (models.Eligibility, error) {
	panic("not implemented")
}

func (m *mockCheckInService) Submit(_ context.Context, _ string, _ models.SubmitCheckInRequest, _ models.SubmissionMeta) (models.SubmitCheckInResponse, error) {
	panic("not implemented")
}

func (m *mockCheckInService) Retrieve(ctx context.Context, bookingID string) (*models.GuestRecord, error) {
	return m.onRetrieve(ctx, bookingID)
}

func (m *mockCheckInService) PurgeExpired(_ context.Context) (int64, error) {
	panic("not implemented")
}

func (m *mockCheckInService) DeleteRecord(_ context.Context, _ string) error {
	panic("not implemented")
}

func (m *mockCheckInService) GenerateAccessLink(_ context.Context, _ string) (string, error) {
	panic("not implemented")
}
