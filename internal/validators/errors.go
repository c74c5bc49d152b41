package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFirstName       = errors.New("first name is required")
	ErrMissingLastName        = errors.New("last name is required")
	ErrInvalidDateOfBirth     = errors.New("invalid date of birth")
	ErrMissingNationality     = errors.New("nationality is required")
	ErrInvalidDocumentType    = errors.New("invalid document type")
	ErrMissingDocumentNumber  = errors.New("document number is required")
	ErrInvalidDocumentDate    = errors.New("invalid document date")
	ErrPrivacyConsentRequired = errors.New("privacy consent is required")
	ErrTermsConsentRequired   = errors.New("terms acceptance is required")
)
