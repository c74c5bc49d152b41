// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API: the public guest check-in endpoints, the JWT-protected back office for
// record access and Portale Alloggiati submission, and the admin login. Cross
// cutting concerns such as authentication, request tracing, and access
// logging are handled in this package before requests are delegated to the
// service layer.
package http
