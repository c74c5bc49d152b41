// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fiumana/guestdesk/internal/service"
	"github.com/fiumana/guestdesk/internal/utils"
	"github.com/fiumana/guestdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(t *testing.T, auth *mockAuthService, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	h := newTestHandler(&service.Services{AuthService: auth})

	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/alloggiati/pending", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		onParseToken: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid-jwt", tokenString)
			return models.Token{Login: "admin"}, nil
		},
	}

	rr, capturedReq := executeAuth(t, auth, "Bearer valid-jwt")

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, capturedReq)

	// the admin login must be available to downstream handlers
	login, ok := utils.GetAdminLoginFromContext(capturedReq.Context())
	require.True(t, ok)
	assert.Equal(t, "admin", login)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rr, capturedReq := executeAuth(t, &mockAuthService{}, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, capturedReq, "next handler must not be called")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rr, capturedReq := executeAuth(t, &mockAuthService{}, "Bearer")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, capturedReq)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	rr, capturedReq := executeAuth(t, &mockAuthService{}, "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, capturedReq)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		onParseToken: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	rr, capturedReq := executeAuth(t, auth, "Bearer expired-jwt")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, capturedReq)
}

func TestAuthMiddleware_UnexpectedParseError(t *testing.T) {
	auth := &mockAuthService{
		onParseToken: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, errors.New("parser blew up")
		},
	}

	rr, _ := executeAuth(t, auth, "Bearer anything")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"Valid", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"MissingToken", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"EmptyToken", "Bearer ", "", ErrEmptyToken},
		{"NoScheme", "abc.def.ghi", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
