package bootstrap

import (
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the parts of Config that domain constructors take
// directly. Apps that supply their own Config still need it.
var ConfigSections = fx.Provide(
	NewPricingConfiguration,
	NewLoyaltyConfig,
)

func NewPricingConfiguration(cfg config.Config) pricing.Configuration {
	return cfg.Pricing.Domain()
}

func NewLoyaltyConfig(cfg config.Config) loyalty.Config {
	return cfg.Loyalty.Domain()
}
