// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CheckInState is the per-booking state of the check-in lifecycle.
type CheckInState string

const (
	// StateNotEligible — the booking cannot accept a check-in right now:
	// unknown booking, check-in already completed, more than seven days
	// before arrival, or after departure.
	StateNotEligible CheckInState = "NOT_ELIGIBLE"

	// StateEligiblePending — the guest may submit check-in data.
	StateEligiblePending CheckInState = "ELIGIBLE_PENDING"

	// StateSubmitted — check-in data was accepted and stored encrypted.
	StateSubmitted CheckInState = "SUBMITTED"

	// StateExpiredPurged — the encrypted record passed its retention window
	// and was removed (lazily on read or by the daily sweep).
	StateExpiredPurged CheckInState = "EXPIRED_PURGED"
)

// CheckInData is the encrypted-at-rest representation of one booking's
// guest record. EncryptedData is opaque: it is produced only by the crypto
// vault from a [GuestRecord] and can only be read back through it with the
// same key material.
type CheckInData struct {
	BookingID     string    `json:"bookingId"`
	EncryptedData string    `json:"-"`
	ExpiresAt     time.Time `json:"expiresAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Eligibility is the result of the check-in window validation.
type Eligibility struct {
	Valid  bool         `json:"valid"`
	State  CheckInState `json:"state"`
	Reason string       `json:"reason,omitempty"`
}

// SubmissionMeta carries the request-level metadata stamped onto a guest
// record at submission time.
type SubmissionMeta struct {
	IPAddress string
	UserAgent string
}
