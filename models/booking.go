// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Property is a rental unit managed by the back office. Only the fields the
// check-in flow needs are carried here; listing content, media and pricing
// live in their own modules.
type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// Booking is a stay reservation. The check-in core mutates exactly two of
// its flags: CheckInCompleted is set true once, on a successful guest
// submission, and never reset; AlloggiatiSent is set true after a successful
// report to the lodging portal and guards re-submission.
type Booking struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`

	// Denormalised property fields, joined in on read.
	PropertyName    string `json:"propertyName,omitempty"`
	PropertyAddress string `json:"propertyAddress,omitempty"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
	GuestCount int    `json:"guestCount"`

	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`

	CheckInCompleted bool `json:"checkInCompleted"`
	AlloggiatiSent   bool `json:"alloggiatiSent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuestContact is the plaintext display subset of a guest record that is
// copied onto the booking row when check-in completes. Everything else the
// guest submits stays encrypted.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}
