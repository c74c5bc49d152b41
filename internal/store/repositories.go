package store

import "github.com/fiumana/guestdesk/internal/logger"

// Repositories aggregates every repository implementation so the service
// layer can receive them as a single dependency.
type Repositories struct {
	CheckInRepository  CheckInRepository
	BookingRepository  BookingRepository
	PropertyRepository PropertyRepository
}

// NewRepositories wires all PostgreSQL repositories over a shared connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		CheckInRepository:  NewCheckInRepository(db, log),
		BookingRepository:  NewBookingRepository(db, log),
		PropertyRepository: NewPropertyRepository(db, log),
	}
}
