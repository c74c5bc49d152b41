package http

import (
	"errors"
	"net/http"

	"github.com/fiumana/guestdesk/internal/service"
	"github.com/fiumana/guestdesk/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrNotEligible:              http.StatusBadRequest,
	service.ErrCheckInNotCompleted:      http.StatusBadRequest,
	service.ErrCredentialsNotConfigured: http.StatusBadRequest,
	service.ErrWrongCredentials:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,

	store.ErrBookingNotFound:     http.StatusNotFound,
	store.ErrPropertyNotFound:    http.StatusNotFound,
	store.ErrCheckInDataNotFound: http.StatusNotFound,
	store.ErrCheckInDataNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
