package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fiumana/guestdesk/internal/logger"
)

const (
	upsertCheckInData = `INSERT INTO check_in_data (booking_id, encrypted_data, expires_at, created_at, updated_at)
	VALUES ($1, $2, $3, NOW(), NOW())
	ON CONFLICT (booking_id) DO UPDATE
	SET encrypted_data = EXCLUDED.encrypted_data,
	    expires_at = EXCLUDED.expires_at,
	    updated_at = NOW();`

	getCheckInData = `SELECT booking_id, encrypted_data, expires_at, created_at, updated_at
	FROM check_in_data
	WHERE booking_id = $1;`

	deleteCheckInData = `DELETE FROM check_in_data
	WHERE booking_id = $1;`

	purgeExpiredCheckInData = `DELETE FROM check_in_data
	WHERE expires_at < $1;`

	completeBookingCheckIn = `UPDATE bookings
	SET check_in_completed = TRUE, guest_name = $2, guest_email = $3, guest_phone = $4, updated_at = NOW()
	WHERE id = $1;`

	markBookingReported = `UPDATE bookings
	SET alloggiati_sent = TRUE, updated_at = NOW()
	WHERE id = $1;`

	getBookingByID = `SELECT b.id, b.property_id, p.name, p.address, b.guest_name, b.guest_email, b.guest_phone,
	    b.guest_count, b.check_in_date, b.check_out_date, b.check_in_completed, b.alloggiati_sent,
	    b.created_at, b.updated_at
	FROM bookings b
	JOIN properties p ON p.id = b.property_id
	WHERE b.id = $1;`

	getPropertyByID = `SELECT id, name, address, city
	FROM properties
	WHERE id = $1;`
)

// buildPendingReportsQuery builds the SELECT for bookings with a completed
// check-in that were not yet submitted to the portal. Built with squirrel so
// the filter set can grow (per-property, date ranges) without hand-numbering
// placeholders.
func buildPendingReportsQuery(ctx context.Context) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(
		"b.id", "b.property_id", "p.name", "p.address",
		"b.guest_name", "b.guest_email", "b.guest_phone", "b.guest_count",
		"b.check_in_date", "b.check_out_date",
		"b.check_in_completed", "b.alloggiati_sent",
		"b.created_at", "b.updated_at",
	).
		From("bookings b").
		Join("properties p ON p.id = b.property_id").
		Where(sq.Eq{"b.check_in_completed": true}).
		Where(sq.Eq{"b.alloggiati_sent": false}).
		OrderBy("b.check_in_date ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildPendingReportsQuery").
			Msg("failed to build pending reports query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
