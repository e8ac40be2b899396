package pricing

import (
	"errors"
	"fmt"
	"os"

	"logitrans-backend/models/cargo"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for negative mass or unrecognized enum values.
var ErrInvalidInput = errors.New("invalid pricing input")

// Config is the injectable rate table. Price is computed as
// base(type) * multiplier(delivery) + perKg * mass + surcharges.
type Config struct {
	Base               map[cargo.Type]decimal.Decimal
	DeliveryMultiplier map[cargo.Delivery]decimal.Decimal
	PerKg              decimal.Decimal
	PackagingFee       decimal.Decimal
	InsuranceFee       decimal.Decimal
}

// DefaultConfig returns the built-in rate table. Values are overridable via
// environment (see LoadConfig) or by constructing a Config directly.
func DefaultConfig() Config {
	return Config{
		Base: map[cargo.Type]decimal.Decimal{
			cargo.TypeSmall:    decimal.NewFromInt(100),
			cargo.TypeMedium:   decimal.NewFromInt(200),
			cargo.TypeLarge:    decimal.NewFromInt(350),
			cargo.TypeDocument: decimal.NewFromInt(60),
		},
		DeliveryMultiplier: map[cargo.Delivery]decimal.Decimal{
			cargo.DeliveryStandard: decimal.NewFromInt(1),
			cargo.DeliveryExpress:  decimal.NewFromFloat(1.5),
			cargo.DeliveryCourier:  decimal.NewFromInt(2),
		},
		PerKg:        decimal.NewFromInt(25),
		PackagingFee: decimal.NewFromInt(50),
		InsuranceFee: decimal.NewFromInt(120),
	}
}

// LoadConfig builds the rate table from defaults plus optional environment
// overrides (PRICING_PER_KG, PRICING_PACKAGING_FEE, PRICING_INSURANCE_FEE).
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	for env, target := range map[string]*decimal.Decimal{
		"PRICING_PER_KG":        &cfg.PerKg,
		"PRICING_PACKAGING_FEE": &cfg.PackagingFee,
		"PRICING_INSURANCE_FEE": &cfg.InsuranceFee,
	} {
		raw := os.Getenv(env)
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", env, raw, err)
		}
		*target = v
	}
	return cfg, cfg.Validate()
}

// Validate rejects rate tables with gaps or negative rates.
func (c Config) Validate() error {
	for _, t := range cargo.GetAllTypes() {
		base, ok := c.Base[t]
		if !ok {
			return fmt.Errorf("no base rate for cargo type %q", t)
		}
		if base.IsNegative() {
			return fmt.Errorf("negative base rate for cargo type %q", t)
		}
	}
	for _, d := range cargo.GetAllDeliveries() {
		mult, ok := c.DeliveryMultiplier[d]
		if !ok {
			return fmt.Errorf("no delivery multiplier for tier %q", d)
		}
		if mult.IsNegative() {
			return fmt.Errorf("negative delivery multiplier for tier %q", d)
		}
	}
	if c.PerKg.IsNegative() || c.PackagingFee.IsNegative() || c.InsuranceFee.IsNegative() {
		return errors.New("rates must be non-negative")
	}
	return nil
}

// Service computes cargo prices. It is a pure function of its inputs and the
// configured rate table; no storage or network access.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Quote returns the price for the given cargo parameters, rounded to
// 2 decimal places. A nil mass is treated as zero, matching the legacy
// calculate_total_price behavior.
func (s *Service) Quote(mass *float64, cargoType cargo.Type, delivery cargo.Delivery, packaging, insurance bool) (decimal.Decimal, error) {
	if !cargoType.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: unknown cargo type %q", ErrInvalidInput, cargoType)
	}
	if !delivery.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: unknown delivery tier %q", ErrInvalidInput, delivery)
	}

	m := decimal.Zero
	if mass != nil {
		if *mass < 0 {
			return decimal.Zero, fmt.Errorf("%w: mass must be non-negative", ErrInvalidInput)
		}
		m = decimal.NewFromFloat(*mass)
	}

	price := s.cfg.Base[cargoType].Mul(s.cfg.DeliveryMultiplier[delivery])
	price = price.Add(s.cfg.PerKg.Mul(m))
	if packaging {
		price = price.Add(s.cfg.PackagingFee)
	}
	if insurance {
		price = price.Add(s.cfg.InsuranceFee)
	}
	return price.Round(2), nil
}
