// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/service"
	"github.com/fiumana/guestdesk/models"
	"github.com/go-chi/chi/v5"
)

// Hand-rolled function-field service mocks. A nil function field means the
// endpoint under test is not expected to reach that call.

type mockCheckInService struct {
	onGetBookingSummary   func(ctx context.Context, bookingID string) (models.BookingSummary, error)
	onValidateEligibility func(ctx context.Context, bookingID string) (models.Eligibility, error)
	onSubmit              func(ctx context.Context, bookingID string, request models.SubmitCheckInRequest, meta models.SubmissionMeta) (models.SubmitCheckInResponse, error)
	onRetrieve            func(ctx context.Context, bookingID string) (*models.GuestRecord, error)
	onPurgeExpired        func(ctx context.Context) (int64, error)
	onDeleteRecord        func(ctx context.Context, bookingID string) error
	onGenerateAccessLink  func(ctx context.Context, bookingID string) (string, error)
}

func (m *mockCheckInService) GetBookingSummary(ctx context.Context, bookingID string) (models.BookingSummary, error) {
	return m.onGetBookingSummary(ctx, bookingID)
}

func (m *mockCheckInService) ValidateEligibility(ctx context.Context, bookingID string) (models.Eligibility, error) {
	return m.onValidateEligibility(ctx, bookingID)
}

func (m *mockCheckInService) Submit(ctx context.Context, bookingID string, request models.SubmitCheckInRequest, meta models.SubmissionMeta) (models.SubmitCheckInResponse, error) {
	return m.onSubmit(ctx, bookingID, request, meta)
}

func (m *mockCheckInService) Retrieve(ctx context.Context, bookingID string) (*models.GuestRecord, error) {
	return m.onRetrieve(ctx, bookingID)
}

func (m *mockCheckInService) PurgeExpired(ctx context.Context) (int64, error) {
	return m.onPurgeExpired(ctx)
}

func (m *mockCheckInService) DeleteRecord(ctx context.Context, bookingID string) error {
	return m.onDeleteRecord(ctx, bookingID)
}

func (m *mockCheckInService) GenerateAccessLink(ctx context.Context, bookingID string) (string, error) {
	return m.onGenerateAccessLink(ctx, bookingID)
}

type mockAlloggiatiService struct {
	onListPending    func(ctx context.Context) ([]models.PendingSubmission, error)
	onSubmit         func(ctx context.Context, bookingID string) (models.SubmissionResult, error)
	onSubmitAll      func(ctx context.Context) (models.BatchReport, error)
	onTestConnection func(ctx context.Context) (bool, string)
}

func (m *mockAlloggiatiService) ListPending(ctx context.Context) ([]models.PendingSubmission, error) {
	return m.onListPending(ctx)
}

func (m *mockAlloggiatiService) Submit(ctx context.Context, bookingID string) (models.SubmissionResult, error) {
	return m.onSubmit(ctx, bookingID)
}

func (m *mockAlloggiatiService) SubmitAll(ctx context.Context) (models.BatchReport, error) {
	return m.onSubmitAll(ctx)
}

func (m *mockAlloggiatiService) TestConnection(ctx context.Context) (bool, string) {
	return m.onTestConnection(ctx)
}

type mockAuthService struct {
	onLogin      func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	onParseToken func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.onLogin(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.onParseToken(ctx, tokenString)
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}

// withURLParam injects a chi route parameter when a handler is invoked
// directly, outside the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
