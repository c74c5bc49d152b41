// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Portale Alloggiati web service of the Italian state police.
//
// The primary abstraction is [AlloggiatiClient], which decouples the service
// layer from the SOAP protocol the portal speaks. The package ships one
// implementation ([NewSOAPClient]) that posts SOAP 1.1 envelopes to the
// configured endpoint over HTTPS.
//
// Error values defined in errors.go are returned for transport-level
// failures so that callers can use [errors.Is]; portal-level failures
// (Esito != "OK") are not errors here and travel in the response body.
package adapter

import (
	"context"

	"github.com/fiumana/guestdesk/models"
)

// AlloggiatiClient defines the calls the reporting workflow makes against the
// lodging portal. Implementations are responsible for envelope construction,
// response parsing, and mapping transport failures to the sentinel values
// defined in this package.
type AlloggiatiClient interface {
	// Send submits a guest list for one booking. The returned response
	// carries the portal's verdict: Esito "OK" plus a receipt number on
	// success, or a list of per-field errors.
	Send(ctx context.Context, request models.AlloggiatiRequest) (models.AlloggiatiResponse, error)

	// Test performs a credentials-only connectivity check against the
	// portal without submitting any guest data.
	Test(ctx context.Context, utente, token, essePi string) (models.AlloggiatiResponse, error)
}
