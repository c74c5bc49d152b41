package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/models"
)

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository]. Bookings are always read joined with their property
// so callers get a display-ready row in one round trip.
type bookingRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided database connection and logger.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	return &bookingRepository{
		DB:     db,
		logger: logger,
	}
}

// GetBooking retrieves a single booking joined with its property.
//
// Returns [ErrBookingNotFound] when no booking with the given id exists.
func (b *bookingRepository) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	var booking models.Booking
	err := b.DB.QueryRowContext(ctx, getBookingByID, bookingID).Scan(
		&booking.ID,
		&booking.PropertyID,
		&booking.PropertyName,
		&booking.PropertyAddress,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.GuestCount,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.CheckInCompleted,
		&booking.AlloggiatiSent,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "bookingRepository.GetBooking").
				Str("booking_id", bookingID).
				Msg("booking not found")
			return models.Booking{}, ErrBookingNotFound
		}

		log.Err(err).
			Str("func", "bookingRepository.GetBooking").
			Str("booking_id", bookingID).
			Msg("failed to execute query for getting booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return booking, nil
}

// MarkAlloggiatiSent flips the alloggiati_sent flag on the booking after a
// successful portal submission.
//
// Returns [ErrBookingNotFound] if the booking does not exist.
func (b *bookingRepository) MarkAlloggiatiSent(ctx context.Context, bookingID string) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, markBookingReported, bookingID)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.MarkAlloggiatiSent").
			Str("booking_id", bookingID).
			Msg("failed to mark booking as reported")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Warn().
			Str("func", "bookingRepository.MarkAlloggiatiSent").
			Str("booking_id", bookingID).
			Msg("booking not found")
		return ErrBookingNotFound
	}

	log.Info().
		Str("func", "bookingRepository.MarkAlloggiatiSent").
		Str("booking_id", bookingID).
		Msg("marked booking as reported to the portal")

	return nil
}

// ListPendingReports returns every booking whose guest check-in is completed
// but which has not yet been submitted to the portal, ordered by check-in
// date so the oldest stays are reported first.
//
// Returns an empty slice when nothing is pending.
func (b *bookingRepository) ListPendingReports(ctx context.Context) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPendingReportsQuery(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListPendingReports").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListPendingReports").
			Msg("failed to execute query for listing pending reports")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pending := make([]models.Booking, 0, 20)

	for rows.Next() {
		var booking models.Booking

		scanErr := rows.Scan(
			&booking.ID,
			&booking.PropertyID,
			&booking.PropertyName,
			&booking.PropertyAddress,
			&booking.GuestName,
			&booking.GuestEmail,
			&booking.GuestPhone,
			&booking.GuestCount,
			&booking.CheckInDate,
			&booking.CheckOutDate,
			&booking.CheckInCompleted,
			&booking.AlloggiatiSent,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookingRepository.ListPendingReports").
				Msg("failed to scan booking row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		pending = append(pending, booking)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookingRepository.ListPendingReports").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return pending, nil
}
