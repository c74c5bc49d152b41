// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubmitCheckInRequest is the body of the public check-in submission
// endpoint. The guest supplies identity, document, contact and consent data;
// the stay window and submission metadata are stamped server-side.
type SubmitCheckInRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	Nationality  string `json:"nationality"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty"`

	DocumentType       DocumentType `json:"documentType"`
	DocumentNumber     string       `json:"documentNumber"`
	DocumentIssueDate  string       `json:"documentIssueDate"`
	DocumentExpiryDate string       `json:"documentExpiryDate"`
	DocumentIssuedBy   string       `json:"documentIssuedBy"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	AdditionalGuests []CoTraveler `json:"additionalGuests,omitempty"`

	PrivacyAccepted   bool `json:"privacyAccepted"`
	MarketingAccepted bool `json:"marketingAccepted,omitempty"`
	TermsAccepted     bool `json:"termsAccepted"`
}

// GuestRecord builds the server-side record from the submitted payload.
// Stay dates and submission metadata are intentionally left zero; the
// lifecycle service stamps them from the booking and the request.
func (r *SubmitCheckInRequest) GuestRecord() GuestRecord {
	return GuestRecord{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		DateOfBirth:        r.DateOfBirth,
		Nationality:        r.Nationality,
		PlaceOfBirth:       r.PlaceOfBirth,
		DocumentType:       r.DocumentType,
		DocumentNumber:     r.DocumentNumber,
		DocumentIssueDate:  r.DocumentIssueDate,
		DocumentExpiryDate: r.DocumentExpiryDate,
		DocumentIssuedBy:   r.DocumentIssuedBy,
		Email:              r.Email,
		Phone:              r.Phone,
		AdditionalGuests:   r.AdditionalGuests,
		PrivacyAccepted:    r.PrivacyAccepted,
		MarketingAccepted:  r.MarketingAccepted,
		TermsAccepted:      r.TermsAccepted,
	}
}

// BookingSummary is the public view of a booking shown on the check-in page.
// It never exposes decrypted guest data.
type BookingSummary struct {
	ID               string `json:"id"`
	PropertyName     string `json:"propertyName"`
	PropertyAddress  string `json:"propertyAddress,omitempty"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
	GuestCount       int    `json:"guestCount"`
	GuestName        string `json:"guestName,omitempty"`
	CheckInCompleted bool   `json:"checkInCompleted"`
}

// SubmitCheckInResponse confirms a successful submission back to the guest.
type SubmitCheckInResponse struct {
	Success      bool   `json:"success"`
	BookingID    string `json:"bookingId"`
	PropertyName string `json:"propertyName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// LoginRequest is the admin credential pair exchanged for a JWT.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
