// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/utils"
	"github.com/fiumana/guestdesk/models"
)

const (
	soapContentType = "text/xml; charset=utf-8"
	soapActionTest  = "AlloggiatiService/Test"

	// portalRequestTimeout bounds every portal round trip. The portal is
	// slow under load but anything beyond this is treated as unreachable.
	portalRequestTimeout = 30 * time.Second
)

// soapEnvelope is the outgoing SOAP 1.1 request envelope. The portal
// multiplexes both real submissions and connectivity checks through its
// Test operation.
type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	SoapNS  string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	Test soapTestCall `xml:"Test"`
}

type soapTestCall struct {
	XMLNS string `xml:"xmlns,attr"`
	models.AlloggiatiRequest
}

// soapResponseEnvelope matches the portal's reply. Element matching is by
// local name, so the portal's namespace prefixes are irrelevant here.
type soapResponseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		TestResponse struct {
			TestResult models.AlloggiatiResponse `xml:"TestResult"`
		} `xml:"TestResponse"`
	} `xml:"Body"`
}

// soapClient is the HTTPS implementation of [AlloggiatiClient].
//
// The underlying HTTP client is created lazily on first use and memoized;
// a failed creation is not cached, so a later call retries from scratch.
type soapClient struct {
	endpoint string

	mu     sync.Mutex
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewSOAPClient constructs an [AlloggiatiClient] that posts SOAP envelopes to
// the endpoint in cfg. The endpoint is validated on first call, not here, so
// construction never fails.
func NewSOAPClient(cfg config.Alloggiati, logger *logger.Logger) AlloggiatiClient {
	return &soapClient{
		endpoint: cfg.Endpoint,
		logger:   logger,
	}
}

// Send submits the guest list for one booking via the portal's Test operation.
func (c *soapClient) Send(ctx context.Context, request models.AlloggiatiRequest) (models.AlloggiatiResponse, error) {
	return c.call(ctx, request)
}

// Test checks connectivity and credentials without submitting guest data.
func (c *soapClient) Test(ctx context.Context, utente, token, essePi string) (models.AlloggiatiResponse, error) {
	return c.call(ctx, models.AlloggiatiRequest{
		Utente: utente,
		Token:  token,
		EssePi: essePi,
	})
}

func (c *soapClient) call(ctx context.Context, request models.AlloggiatiRequest) (models.AlloggiatiResponse, error) {
	log := logger.FromContext(ctx)

	client, err := c.httpClient()
	if err != nil {
		log.Err(err).
			Str("func", "soapClient.call").
			Msg("failed to initialize portal http client")
		return models.AlloggiatiResponse{}, err
	}

	envelope := soapEnvelope{
		SoapNS: "http://schemas.xmlsoap.org/soap/envelope/",
		Body: soapBody{
			Test: soapTestCall{
				XMLNS:             "AlloggiatiService",
				AlloggiatiRequest: request,
			},
		},
	}

	body, err := xml.Marshal(envelope)
	if err != nil {
		return models.AlloggiatiResponse{}, fmt.Errorf("failed to marshal soap envelope: %w", err)
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", soapContentType).
		SetHeader("SOAPAction", soapActionTest).
		SetBody(append([]byte(xml.Header), body...)).
		Post(c.endpoint)
	if err != nil {
		log.Err(err).
			Str("func", "soapClient.call").
			Str("endpoint", c.endpoint).
			Msg("portal request failed")
		return models.AlloggiatiResponse{}, fmt.Errorf("%w: %w", ErrPortalUnavailable, err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "soapClient.call").
			Int("status", resp.StatusCode()).
			Msg("portal returned error status")
		return models.AlloggiatiResponse{}, fmt.Errorf("%w: http %d", ErrPortalUnavailable, resp.StatusCode())
	}

	var parsed soapResponseEnvelope
	if err := xml.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Err(err).
			Str("func", "soapClient.call").
			Msg("failed to parse portal response")
		return models.AlloggiatiResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return parsed.Body.TestResponse.TestResult, nil
}

// httpClient returns the memoized HTTP client, creating it on first use.
func (c *soapClient) httpClient() (*utils.HTTPClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	if c.endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}
	if _, err := url.ParseRequestURI(c.endpoint); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEndpointNotConfigured, err)
	}

	c.client = utils.NewHTTPClient()
	c.client.SetTimeout(portalRequestTimeout)
	return c.client, nil
}
