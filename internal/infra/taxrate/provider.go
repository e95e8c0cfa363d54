package taxrate

import (
	"context"

	"casual-leasing/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// ConfigProvider serves the GST rate from process configuration.
type ConfigProvider struct {
	rate decimal.Decimal
}

func NewConfigProvider(cfg config.Config) *ConfigProvider {
	return &ConfigProvider{rate: cfg.Pricing.GSTRate}
}

func (p *ConfigProvider) GSTRate(_ context.Context) (decimal.Decimal, error) {
	return p.rate, nil
}
