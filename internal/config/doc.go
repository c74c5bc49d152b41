// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Startup-critical settings
// (database DSN, server address, admin token signing key) are validated
// eagerly; rotating secrets (encryption key, Portale Alloggiati credentials)
// are validated at call time by the components that consume them.
package config
