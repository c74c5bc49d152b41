package store

import (
	"context"
	"time"

	"github.com/fiumana/guestdesk/models"
)

// CheckInRepository persists encrypted guest check-in records keyed by
// booking id. Payloads are stored as opaque encrypted blobs; the repository
// never sees plaintext guest data.
type CheckInRepository interface {
	// SaveSubmission upserts the encrypted check-in record and, within the
	// same transaction, marks the booking's check-in as completed and copies
	// the lead guest's display contact onto the booking row.
	SaveSubmission(ctx context.Context, data models.CheckInData, contact models.GuestContact) error
	// GetCheckInData returns the stored record for the booking, or
	// [ErrCheckInDataNotFound] if none exists.
	GetCheckInData(ctx context.Context, bookingID string) (models.CheckInData, error)
	// DeleteCheckInData removes the record for the booking. Deleting a
	// non-existent record is not an error.
	DeleteCheckInData(ctx context.Context, bookingID string) error
	// PurgeExpired deletes every record whose expiry is strictly before now
	// and reports how many rows were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// BookingRepository reads and updates booking rows, including the two
// workflow flags (check_in_completed, alloggiati_sent).
type BookingRepository interface {
	// GetBooking returns the booking joined with its property, or
	// [ErrBookingNotFound] if none exists.
	GetBooking(ctx context.Context, bookingID string) (models.Booking, error)
	// MarkAlloggiatiSent flips the alloggiati_sent flag after a successful
	// portal submission.
	MarkAlloggiatiSent(ctx context.Context, bookingID string) error
	// ListPendingReports returns bookings with a completed check-in that
	// have not yet been submitted to the portal.
	ListPendingReports(ctx context.Context) ([]models.Booking, error)
}

// PropertyRepository reads property rows.
type PropertyRepository interface {
	// GetProperty returns the property, or [ErrPropertyNotFound] if none exists.
	GetProperty(ctx context.Context, propertyID string) (models.Property, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
