package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/models"
	"github.com/jackc/pgerrcode"
)

// checkInRepository is the PostgreSQL-backed implementation of
// [CheckInRepository]. It executes all check-in record operations directly
// against the "check_in_data" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (booking_id, rows affected, etc.). Guest payloads reach
// this layer already encrypted; log entries never carry them.
type checkInRepository struct {
	*DB
	logger *logger.Logger
}

// NewCheckInRepository constructs a [CheckInRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCheckInRepository(db *DB, logger *logger.Logger) CheckInRepository {
	return &checkInRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSubmission upserts the encrypted check-in record and, inside the same
// database transaction, flips the booking's check_in_completed flag and
// copies the lead guest's display contact onto the booking row. A booking
// can never appear completed without a stored record (or the reverse).
//
// A repeat submission for the same booking replaces the stored blob and
// refreshes the expiry via the ON CONFLICT clause. If the booking row does
// not exist the foreign key on check_in_data fires and the method returns
// [ErrBookingNotFound].
//
// Failures the classifier marks as transient (deadlock, serialization
// rollback, dropped connection) are retried once before surfacing.
func (c *checkInRepository) SaveSubmission(ctx context.Context, data models.CheckInData, contact models.GuestContact) error {
	err := c.saveSubmissionTx(ctx, data, contact)
	if err == nil || c.DB.errorClassificator.Classify(err) != Retryable {
		return err
	}

	logger.FromContext(ctx).Warn().
		Str("func", "checkInRepository.SaveSubmission").
		Str("booking_id", data.BookingID).
		Msg("transient database failure, retrying transaction")

	return c.saveSubmissionTx(ctx, data, contact)
}

// saveSubmissionTx runs one attempt of the submission transaction.
func (c *checkInRepository) saveSubmissionTx(ctx context.Context, data models.CheckInData, contact models.GuestContact) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "checkInRepository.SaveSubmission").
			Str("booking_id", data.BookingID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, upsertCheckInData, data.BookingID, data.EncryptedData, data.ExpiresAt)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			log.Warn().
				Str("func", "checkInRepository.SaveSubmission").
				Str("booking_id", data.BookingID).
				Msg("booking does not exist")
			return ErrBookingNotFound
		}

		log.Err(err).
			Str("func", "checkInRepository.SaveSubmission").
			Str("booking_id", data.BookingID).
			Msg("failed to upsert check-in data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Error().
			Str("func", "checkInRepository.SaveSubmission").
			Str("booking_id", data.BookingID).
			Msg("upsert affected no rows")
		return ErrCheckInDataNotSaved
	}

	if _, err := tx.ExecContext(ctx, completeBookingCheckIn, data.BookingID, contact.Name, contact.Email, contact.Phone); err != nil {
		log.Err(err).
			Str("func", "checkInRepository.SaveSubmission").
			Str("booking_id", data.BookingID).
			Msg("failed to mark booking check-in as completed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "checkInRepository.SaveSubmission").
			Str("booking_id", data.BookingID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "checkInRepository.SaveSubmission").
		Str("booking_id", data.BookingID).
		Time("expires_at", data.ExpiresAt).
		Msg("successfully saved check-in submission")

	return nil
}

// GetCheckInData retrieves the stored check-in record for the booking.
//
// Returns [ErrCheckInDataNotFound] when no record exists. Expiry is not
// evaluated here; the service layer decides what an expired record means.
func (c *checkInRepository) GetCheckInData(ctx context.Context, bookingID string) (models.CheckInData, error) {
	log := logger.FromContext(ctx)

	var data models.CheckInData
	err := c.DB.QueryRowContext(ctx, getCheckInData, bookingID).Scan(
		&data.BookingID,
		&data.EncryptedData,
		&data.ExpiresAt,
		&data.CreatedAt,
		&data.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "checkInRepository.GetCheckInData").
				Str("booking_id", bookingID).
				Msg("check-in data not found")
			return models.CheckInData{}, ErrCheckInDataNotFound
		}

		log.Err(err).
			Str("func", "checkInRepository.GetCheckInData").
			Str("booking_id", bookingID).
			Msg("failed to execute query for getting check-in data")
		return models.CheckInData{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, nil
}

// DeleteCheckInData removes the check-in record for the booking.
//
// Deleting a record that does not exist is a no-op, not an error, so the
// operation can be retried safely.
func (c *checkInRepository) DeleteCheckInData(ctx context.Context, bookingID string) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteCheckInData, bookingID)
	if err != nil {
		log.Err(err).
			Str("func", "checkInRepository.DeleteCheckInData").
			Str("booking_id", bookingID).
			Msg("failed to delete check-in data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	log.Info().
		Str("func", "checkInRepository.DeleteCheckInData").
		Str("booking_id", bookingID).
		Int64("rows_affected", affected).
		Msg("deleted check-in data")

	return nil
}

// PurgeExpired deletes every check-in record whose expires_at is strictly
// before now and returns the number of rows removed.
//
// The bulk delete can collide with concurrent lazy deletions on read, so a
// failure the classifier marks as transient is retried once.
func (c *checkInRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	affected, err := c.purgeExpiredOnce(ctx, now)
	if err == nil || c.DB.errorClassificator.Classify(err) != Retryable {
		return affected, err
	}

	logger.FromContext(ctx).Warn().
		Str("func", "checkInRepository.PurgeExpired").
		Msg("transient database failure, retrying purge")

	return c.purgeExpiredOnce(ctx, now)
}

// purgeExpiredOnce runs one attempt of the retention delete.
func (c *checkInRepository) purgeExpiredOnce(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, purgeExpiredCheckInData, now)
	if err != nil {
		log.Err(err).
			Str("func", "checkInRepository.PurgeExpired").
			Msg("failed to purge expired check-in data")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "checkInRepository.PurgeExpired").
			Msg("failed to read affected rows count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "checkInRepository.PurgeExpired").
		Int64("purged", affected).
		Msg("purged expired check-in data")

	return affected, nil
}
