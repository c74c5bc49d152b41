package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/models"
)

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository].
type propertyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	return &propertyRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProperty retrieves a single property by id.
//
// Returns [ErrPropertyNotFound] when no property with the given id exists.
func (p *propertyRepository) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	log := logger.FromContext(ctx)

	var property models.Property
	err := p.DB.QueryRowContext(ctx, getPropertyByID, propertyID).Scan(
		&property.ID,
		&property.Name,
		&property.Address,
		&property.City,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "propertyRepository.GetProperty").
				Str("property_id", propertyID).
				Msg("property not found")
			return models.Property{}, ErrPropertyNotFound
		}

		log.Err(err).
			Str("func", "propertyRepository.GetProperty").
			Str("property_id", propertyID).
			Msg("failed to execute query for getting property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return property, nil
}
