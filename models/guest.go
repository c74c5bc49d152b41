// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentType enumerates the travel document kinds a guest can present
// during online check-in.
type DocumentType string

const (
	DocumentPassport       DocumentType = "passport"
	DocumentIDCard         DocumentType = "id_card"
	DocumentDrivingLicense DocumentType = "driving_license"
)

// GuestRecord is the full identity record collected from the lead guest
// before arrival. It exists in decrypted form only transiently, inside the
// single call that requested it; at rest it lives exclusively as the
// ciphertext blob of a [CheckInData] row.
//
// ArrivalDate and DepartureDate are stamped by the server from the booking
// at submission time. Client-supplied stay dates are never trusted.
type GuestRecord struct {
	// Personal identity.
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"` // YYYY-MM-DD
	Nationality  string `json:"nationality"` // ISO 3166-1 alpha-2
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`

	// Travel document.
	DocumentType       DocumentType `json:"documentType"`
	DocumentNumber     string       `json:"documentNumber"`
	DocumentIssueDate  string       `json:"documentIssueDate"`  // YYYY-MM-DD
	DocumentExpiryDate string       `json:"documentExpiryDate"` // YYYY-MM-DD
	DocumentIssuedBy   string       `json:"documentIssuedBy"`

	// Contact.
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Stay window, copied from the booking on submission.
	ArrivalDate   time.Time `json:"arrivalDate"`
	DepartureDate time.Time `json:"departureDate"`

	// Co-travelers share the stay window of the lead guest and carry a
	// reduced field set.
	AdditionalGuests []CoTraveler `json:"additionalGuests,omitempty"`

	// Consents. Privacy and terms are mandatory, marketing is optional.
	PrivacyAccepted   bool `json:"privacyAccepted"`
	MarketingAccepted bool `json:"marketingAccepted,omitempty"`
	TermsAccepted     bool `json:"termsAccepted"`

	// Submission metadata, stamped by the server.
	SubmittedAt time.Time `json:"submittedAt"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
}

// CoTraveler is the reduced identity record collected for each guest
// accompanying the lead guest.
type CoTraveler struct {
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	DateOfBirth    string       `json:"dateOfBirth"` // YYYY-MM-DD
	Nationality    string       `json:"nationality"`
	DocumentType   DocumentType `json:"documentType,omitempty"`
	DocumentNumber string       `json:"documentNumber,omitempty"`
}

// FullName returns the guest's display name as stored on the booking row
// after a completed check-in.
func (g *GuestRecord) FullName() string {
	return g.FirstName + " " + g.LastName
}
