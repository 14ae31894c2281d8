package orders

import (
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the order-sync feature.
func NewFeature(
	store airtable.Client,
	feed trendyol.Client,
	st state.Store,
	db *gorm.DB,
	tables airtable.Config,
	syncCfg config.SyncConfig,
	logger *zap.Logger,
) *Feature {
	svc := NewService(store, feed, st, NewRunRecorder(db, logger), tables, syncCfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "orders"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Runs().Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// RegisterDiagnostics registers the public connectivity check ahead of the
// trigger auth middleware.
func (f *Feature) RegisterDiagnostics(app fiber.Router) {
	f.handler.RegisterDiagnostics(app)
}

// Service exposes the sync service for the scheduler and CLI.
func (f *Feature) Service() *Service {
	return f.service
}
