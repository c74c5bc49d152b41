package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/fiumana/guestdesk/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldFirstName targets the guest's first name.
	FieldFirstName = "first_name"

	// FieldLastName targets the guest's last name.
	FieldLastName = "last_name"

	// FieldDateOfBirth targets the guest's date of birth (YYYY-MM-DD).
	FieldDateOfBirth = "date_of_birth"

	// FieldNationality targets the guest's nationality code.
	FieldNationality = "nationality"

	// FieldDocument targets the travel document block: type, number and the
	// optional issue/expiry dates.
	FieldDocument = "document"

	// FieldConsents targets the mandatory privacy and terms consents.
	FieldConsents = "consents"

	// FieldAdditionalGuests targets the list of co-travelers, each validated
	// with the reduced co-traveler field set.
	FieldAdditionalGuests = "additional_guests"
)

// dateLayout is the wire format for all guest-supplied dates.
const dateLayout = "2006-01-02"

// allowedDocumentTypes is the exhaustive set of DocumentType values accepted
// by the validator. Any DocumentType not present in this slice is invalid.
var allowedDocumentTypes = []models.DocumentType{
	models.DocumentPassport,
	models.DocumentIDCard,
	models.DocumentDrivingLicense,
}

// GuestValidator implements the Validator interface for all guest-facing
// check-in models: SubmitCheckInRequest, GuestRecord, and CoTraveler.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type GuestValidator struct {
}

// NewGuestValidator constructs a new GuestValidator
// and returns it as the Validator interface.
func NewGuestValidator() Validator {
	return &GuestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.SubmitCheckInRequest / *models.SubmitCheckInRequest
//   - models.GuestRecord / *models.GuestRecord
//   - models.CoTraveler / *models.CoTraveler
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *GuestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitCheckInRequest:
		return v.validateSubmitRequest(ctx, value, fields...)
	case *models.SubmitCheckInRequest:
		return v.validateSubmitRequest(ctx, *value, fields...)

	case models.GuestRecord:
		return v.validateSubmitRequest(ctx, recordAsRequest(value), fields...)
	case *models.GuestRecord:
		return v.validateSubmitRequest(ctx, recordAsRequest(*value), fields...)

	case models.CoTraveler:
		return v.validateCoTraveler(ctx, value)
	case *models.CoTraveler:
		return v.validateCoTraveler(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// isValidDocumentType reports whether dt is one of the recognized
// DocumentType values defined in allowedDocumentTypes.
func isValidDocumentType(dt models.DocumentType) bool {
	for _, t := range allowedDocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// isValidDate reports whether s parses as a YYYY-MM-DD calendar date.
func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// recordAsRequest projects the validated subset of a GuestRecord onto the
// request shape so both types share one validation path.
func recordAsRequest(record models.GuestRecord) models.SubmitCheckInRequest {
	return models.SubmitCheckInRequest{
		FirstName:          record.FirstName,
		LastName:           record.LastName,
		DateOfBirth:        record.DateOfBirth,
		Nationality:        record.Nationality,
		PlaceOfBirth:       record.PlaceOfBirth,
		DocumentType:       record.DocumentType,
		DocumentNumber:     record.DocumentNumber,
		DocumentIssueDate:  record.DocumentIssueDate,
		DocumentExpiryDate: record.DocumentExpiryDate,
		DocumentIssuedBy:   record.DocumentIssuedBy,
		Email:              record.Email,
		Phone:              record.Phone,
		AdditionalGuests:   record.AdditionalGuests,
		PrivacyAccepted:    record.PrivacyAccepted,
		MarketingAccepted:  record.MarketingAccepted,
		TermsAccepted:      record.TermsAccepted,
	}
}

// validateSubmitRequest validates a check-in submission.
//
// Default validated fields (when none specified):
// FirstName, LastName, DateOfBirth, Nationality, Document, Consents,
// AdditionalGuests.
//
// Returns the first encountered validation error or nil.
func (v *GuestValidator) validateSubmitRequest(ctx context.Context, request models.SubmitCheckInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldFirstName, FieldLastName, FieldDateOfBirth, FieldNationality,
			FieldDocument, FieldConsents, FieldAdditionalGuests,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if request.FirstName == "" {
				return ErrMissingFirstName
			}
		case FieldLastName:
			if request.LastName == "" {
				return ErrMissingLastName
			}
		case FieldDateOfBirth:
			if !isValidDate(request.DateOfBirth) {
				return ErrInvalidDateOfBirth
			}
		case FieldNationality:
			if request.Nationality == "" {
				return ErrMissingNationality
			}
		case FieldDocument:
			if !isValidDocumentType(request.DocumentType) {
				return ErrInvalidDocumentType
			}
			if request.DocumentNumber == "" {
				return ErrMissingDocumentNumber
			}
			// Issue and expiry dates are optional but must parse when present.
			if request.DocumentIssueDate != "" && !isValidDate(request.DocumentIssueDate) {
				return ErrInvalidDocumentDate
			}
			if request.DocumentExpiryDate != "" && !isValidDate(request.DocumentExpiryDate) {
				return ErrInvalidDocumentDate
			}
		case FieldConsents:
			if !request.PrivacyAccepted {
				return ErrPrivacyConsentRequired
			}
			if !request.TermsAccepted {
				return ErrTermsConsentRequired
			}
		case FieldAdditionalGuests:
			for i, guest := range request.AdditionalGuests {
				if err := v.validateCoTraveler(ctx, guest); err != nil {
					return fmt.Errorf("validation error for additional guest at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCoTraveler validates the reduced field set of a co-traveler:
// names, date of birth and nationality are required; the document block is
// optional, but a supplied document type must be recognized.
func (v *GuestValidator) validateCoTraveler(_ context.Context, guest models.CoTraveler) error {
	if guest.FirstName == "" {
		return ErrMissingFirstName
	}
	if guest.LastName == "" {
		return ErrMissingLastName
	}
	if !isValidDate(guest.DateOfBirth) {
		return ErrInvalidDateOfBirth
	}
	if guest.Nationality == "" {
		return ErrMissingNationality
	}
	if guest.DocumentType != "" && !isValidDocumentType(guest.DocumentType) {
		return ErrInvalidDocumentType
	}

	return nil
}
