package bureau

import (
	"fmt"

	"credimaq/internal/config"
	"credimaq/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Provider names accepted by BUREAU_PROVIDER.
const (
	ProviderSimulated = "simulated"
	ProviderKiban     = "kiban"
)

// NewProvider builds the single active bureau provider for this deployment.
// Selection happens once at process start; it is not changeable per request.
func NewProvider(cfg config.Config, logger *zap.Logger) (interfaces.IBureauProvider, error) {
	switch cfg.Provider {
	case ProviderSimulated:
		return NewSimulatedProvider(logger), nil
	case ProviderKiban:
		return NewKibanProvider(cfg.KibanBaseURL, cfg.KibanAPIKey, cfg.ProviderTimeout, logger)
	default:
		return nil, fmt.Errorf("unknown bureau provider %q", cfg.Provider)
	}
}
