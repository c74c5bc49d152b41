// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Guest type codes defined by the Portale Alloggiati schedine tracciato.
const (
	AlloggiatiTipoOspiteSingolo = 16 // single guest
	AlloggiatiTipoCapofamiglia  = 17 // head of family
	AlloggiatiTipoCapogruppo    = 18 // head of group
	AlloggiatiTipoFamiliare     = 19 // family member
	AlloggiatiTipoMembroGruppo  = 20 // group member
)

// AlloggiatiGuest is one guest entry in the wire format expected by the
// Portale Alloggiati submission service. Field names follow the portal's
// own (Italian) schema.
type AlloggiatiGuest struct {
	Tipo                   int    `xml:"Tipo" json:"Tipo"`
	DataArrivo             string `xml:"DataArrivo" json:"DataArrivo"` // YYYY-MM-DD
	NumeroGiorniPermanenza int    `xml:"NumeroDiGiorniDiPermanenza" json:"NumeroDiGiorniDiPermanenza"`
	Cognome                string `xml:"Cognome" json:"Cognome"`
	Nome                   string `xml:"Nome" json:"Nome"`
	Sesso                  int    `xml:"Sesso" json:"Sesso"`               // 1=M, 2=F
	DataNascita            string `xml:"DataDiNascita" json:"DataDiNascita"` // YYYY-MM-DD
	ComuneNascita          string `xml:"ComuneDiNascita,omitempty" json:"ComuneDiNascita,omitempty"`
	StatoNascita           string `xml:"StatoDiNascita" json:"StatoDiNascita"`
	Cittadinanza           string `xml:"Cittadinanza" json:"Cittadinanza"`
	TipoDocumento          string `xml:"TipoDocumento,omitempty" json:"TipoDocumento,omitempty"`
	NumeroDocumento        string `xml:"NumeroDocumento,omitempty" json:"NumeroDocumento,omitempty"`
	LuogoRilascioDocumento string `xml:"LuogoRilascioDocumento,omitempty" json:"LuogoRilascioDocumento,omitempty"`
}

// AlloggiatiRequest bundles operator credentials, the portal apartment
// identifier and the mapped guest list for one submission.
type AlloggiatiRequest struct {
	Utente         string            `xml:"Utente" json:"Utente"`
	Token          string            `xml:"Token" json:"Token"`
	EssePi         string            `xml:"EssePi" json:"EssePi"`
	IDAppartamento string            `xml:"IdAppartamento" json:"IdAppartamento"`
	Alloggiati     []AlloggiatiGuest `xml:"Alloggiati>Alloggiato" json:"Alloggiati"`
}

// AlloggiatiResponse is the portal's reply to a submission or a connection
// test. Esito "OK" signals success.
type AlloggiatiResponse struct {
	Esito          string   `xml:"Esito" json:"Esito"`
	NumeroRicevuta string   `xml:"NumeroRicevuta,omitempty" json:"NumeroRicevuta,omitempty"`
	Messaggio      string   `xml:"Messaggio,omitempty" json:"Messaggio,omitempty"`
	Errori         []string `xml:"Errori>Errore,omitempty" json:"Errori,omitempty"`
}

// SubmissionResult is the outcome of one reporting attempt for one booking.
// It is returned synchronously and never persisted.
type SubmissionResult struct {
	Success        bool     `json:"success"`
	ProtocolNumber string   `json:"protocolNumber,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// PendingSubmission describes a booking whose check-in is complete but whose
// guest data has not yet been reported to the portal.
type PendingSubmission struct {
	BookingID    string    `json:"bookingId"`
	GuestName    string    `json:"guestName"`
	PropertyName string    `json:"propertyName"`
	CheckInDate  time.Time `json:"checkInDate"`
}

// BatchResult is one booking's line in a batch submission report.
type BatchResult struct {
	BookingID      string `json:"bookingId"`
	Success        bool   `json:"success"`
	ProtocolNumber string `json:"protocolNumber,omitempty"`
	Error          string `json:"error,omitempty"`
}

// BatchReport aggregates a full submit-all run. Individual failures are
// isolated: they appear in Results but never abort the batch.
type BatchReport struct {
	Total        int           `json:"total"`
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Results      []BatchResult `json:"results"`
}
