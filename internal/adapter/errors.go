// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEndpointNotConfigured = errors.New("alloggiati endpoint is not configured")
	ErrPortalUnavailable     = errors.New("alloggiati portal is unavailable")
	ErrMalformedResponse     = errors.New("malformed alloggiati portal response")
)
