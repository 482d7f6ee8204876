package app

import (
	"go.uber.org/zap"

	"bistro/internal/catalog"
	"bistro/internal/config"
	"bistro/internal/secret"
	"bistro/internal/service"
	"bistro/internal/storage"
)

// Services is every state holder the frontend and the MCP server talk to.
// Built once per process and shared by reference.
type Services struct {
	Catalog   *catalog.Store
	Cart      *service.CartService
	Favorites *service.FavoritesService
	Session   *service.SessionService
	Tracking  *service.TrackingService
	Window    *service.WindowSettingsService
}

// NewServices wires the services over an open database.
func NewServices(
	cfg *config.Config,
	log *zap.Logger,
	db *storage.DB,
	secrets secret.SecretStore,
	emitter service.EventEmitter,
) *Services {
	settings := storage.NewSettingsStore(db)
	cart := service.NewCartService(emitter)

	return &Services{
		Catalog:   catalog.Default(),
		Cart:      cart,
		Favorites: service.NewFavoritesService(emitter),
		Session:   service.NewSessionService(settings, newVerifier(cfg.Auth, secrets), emitter, log),
		Tracking:  service.NewTrackingService(cart, emitter, log, cfg.Tracking.Interval, cfg.Tracking.Duration),
		Window:    service.NewWindowSettingsService(settings, log),
	}
}

func newVerifier(cfg config.AuthConfig, secrets secret.SecretStore) service.CredentialVerifier {
	if cfg.Verifier == config.VerifierBcrypt {
		return service.NewBcryptVerifier(secrets, 0)
	}
	return service.MockVerifier{}
}
