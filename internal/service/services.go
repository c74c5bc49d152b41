package service

import (
	"github.com/fiumana/guestdesk/internal/adapter"
	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/crypto"
	"github.com/fiumana/guestdesk/internal/logger"
	"github.com/fiumana/guestdesk/internal/store"
	"github.com/fiumana/guestdesk/internal/validators"
)

type Services struct {
	CheckInService    CheckInService
	AlloggiatiService AlloggiatiService
	AuthService       AuthService
}

func NewServices(repos *store.Repositories, vault crypto.Vault, client adapter.AlloggiatiClient, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	checkInService := NewCheckInService(
		repos.CheckInRepository,
		repos.BookingRepository,
		vault,
		validators.NewGuestValidator(),
		cfg.App,
		logger,
	)

	return &Services{
		CheckInService:    checkInService,
		AlloggiatiService: NewAlloggiatiService(repos.BookingRepository, repos.PropertyRepository, checkInService, client, cfg.Alloggiati, logger),
		AuthService:       NewAuthService(cfg.Auth, logger),
	}
}
