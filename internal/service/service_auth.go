package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/utils"
	"github.com/fiumana/guestdesk/models"
)

// authService is the concrete implementation of AuthService.
//
// There is exactly one operator account, configured as a login plus the
// SHA-256 hash of its password. No user table exists; this is a single-tenant
// back office, not an identity provider.
type authService struct {
	// adminLogin and adminPasswordHash are the configured credential pair.
	// The hash is hex-encoded SHA-256.
	adminLogin        string
	adminPasswordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the admin
// credential pair and JWT parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login verifies the admin credential pair and issues a signed JWT.
//
// Both the login and the password hash are compared in constant time.
// Returns:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongCredentials if either half of the pair does not match.
//   - ErrTokenCreationFailed (wrapped) if JWT signing fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Password == "" {
		log.Error().
			Str("func", "authService.Login").
			Msg("empty login or password")
		return models.Token{}, ErrInvalidDataProvided
	}

	loginMatches := utils.SecureCompare(request.Login, a.adminLogin)
	passwordMatches := utils.SecureCompare(utils.HashPassword(request.Password), a.adminPasswordHash)
	if !loginMatches || !passwordMatches {
		log.Warn().
			Str("func", "authService.Login").
			Str("login", request.Login).
			Msg("failed login attempt")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, request.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
