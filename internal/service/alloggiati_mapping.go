// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"strings"
	"time"

	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/models"
)

// documentTypeCodes maps our document kinds to the portal's tracciato codes.
// Unknown kinds fall back to ALTRO.
var documentTypeCodes = map[models.DocumentType]string{
	models.DocumentPassport:       "PASOR",
	models.DocumentIDCard:         "IDENT",
	models.DocumentDrivingLicense: "PATEN",
}

// nationalityCodes maps ISO 3166-1 alpha-2 country codes to the portal's
// own country table. Only the countries our guests actually come from are
// listed; anything else is passed through unchanged and logged, so a portal
// rejection points straight at the missing entry.
var nationalityCodes = map[string]string{
	"IT": "100000100",
	"DE": "100000094",
	"FR": "100000084",
	"GB": "100000219",
	"US": "100000536",
	"ES": "100000209",
}

func mapDocumentType(documentType models.DocumentType) string {
	if code, ok := documentTypeCodes[documentType]; ok {
		return code
	}
	return "ALTRO"
}

func mapNationality(log *logger.Logger, nationality string) string {
	if code, ok := nationalityCodes[nationality]; ok {
		return code
	}

	log.Warn().
		Str("func", "mapNationality").
		Str("nationality", nationality).
		Msg("nationality has no portal code, passing through")
	return nationality
}

// stayNights counts the nights between arrival and departure, rounding up
// partial days.
func stayNights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// buildAlloggiatiGuests converts a decrypted guest record into the portal's
// guest list: the lead guest as tipo 16, followed by one tipo 19 entry per
// co-traveler sharing the stay window.
//
// The portal's tracciato requires uppercase names and rejects unknown sex
// codes; sex is not collected during check-in, so 1 is sent for every guest.
func buildAlloggiatiGuests(log *logger.Logger, record models.GuestRecord, booking models.Booking) []models.AlloggiatiGuest {
	arrival := booking.CheckInDate.Format(dateLayout)
	nights := stayNights(booking.CheckInDate, booking.CheckOutDate)

	guests := make([]models.AlloggiatiGuest, 0, 1+len(record.AdditionalGuests))

	guests = append(guests, models.AlloggiatiGuest{
		Tipo:                   models.AlloggiatiTipoOspiteSingolo,
		DataArrivo:             arrival,
		NumeroGiorniPermanenza: nights,
		Cognome:                strings.ToUpper(record.LastName),
		Nome:                   strings.ToUpper(record.FirstName),
		Sesso:                  1,
		DataNascita:            record.DateOfBirth,
		ComuneNascita:          record.PlaceOfBirth,
		StatoNascita:           mapNationality(log, record.Nationality),
		Cittadinanza:           mapNationality(log, record.Nationality),
		TipoDocumento:          mapDocumentType(record.DocumentType),
		NumeroDocumento:        record.DocumentNumber,
		LuogoRilascioDocumento: record.DocumentIssuedBy,
	})

	for _, traveler := range record.AdditionalGuests {
		guest := models.AlloggiatiGuest{
			Tipo:                   models.AlloggiatiTipoFamiliare,
			DataArrivo:             arrival,
			NumeroGiorniPermanenza: nights,
			Cognome:                strings.ToUpper(traveler.LastName),
			Nome:                   strings.ToUpper(traveler.FirstName),
			Sesso:                  1,
			DataNascita:            traveler.DateOfBirth,
			StatoNascita:           mapNationality(log, traveler.Nationality),
			Cittadinanza:           mapNationality(log, traveler.Nationality),
			NumeroDocumento:        traveler.DocumentNumber,
		}
		// co-travelers without a declared document omit the type entirely
		if traveler.DocumentType != "" {
			guest.TipoDocumento = mapDocumentType(traveler.DocumentType)
		}
		guests = append(guests, guest)
	}

	return guests
}
