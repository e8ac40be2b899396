package pricing

import (
	"testing"

	"logitrans-backend/models/cargo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestQuoteBaseRates(t *testing.T) {
	svc := NewService(DefaultConfig())

	tests := []struct {
		name      string
		mass      *float64
		cargoType cargo.Type
		delivery  cargo.Delivery
		packaging bool
		insurance bool
		want      string
	}{
		{"small standard no mass", nil, cargo.TypeSmall, cargo.DeliveryStandard, false, false, "100"},
		{"document standard", nil, cargo.TypeDocument, cargo.DeliveryStandard, false, false, "60"},
		{"medium express", nil, cargo.TypeMedium, cargo.DeliveryExpress, false, false, "300"},
		{"large courier", nil, cargo.TypeLarge, cargo.DeliveryCourier, false, false, "700"},
		{"small standard 2kg", floatPtr(2), cargo.TypeSmall, cargo.DeliveryStandard, false, false, "150"},
		{"small standard packaging", nil, cargo.TypeSmall, cargo.DeliveryStandard, true, false, "150"},
		{"small standard insurance", nil, cargo.TypeSmall, cargo.DeliveryStandard, false, true, "220"},
		{"everything", floatPtr(4), cargo.TypeLarge, cargo.DeliveryExpress, true, true, "795"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Quote(tt.mass, tt.cargoType, tt.delivery, tt.packaging, tt.insurance)
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tt.want)
			assert.True(t, got.Equal(want), "want %s got %s", want, got)
		})
	}
}

func TestQuoteDeterministic(t *testing.T) {
	svc := NewService(DefaultConfig())

	first, err := svc.Quote(floatPtr(3.7), cargo.TypeMedium, cargo.DeliveryCourier, true, true)
	require.NoError(t, err)
	second, err := svc.Quote(floatPtr(3.7), cargo.TypeMedium, cargo.DeliveryCourier, true, true)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.False(t, first.IsNegative())
}

func TestQuoteSurchargesAdditive(t *testing.T) {
	svc := NewService(DefaultConfig())

	plain, err := svc.Quote(nil, cargo.TypeSmall, cargo.DeliveryStandard, false, false)
	require.NoError(t, err)
	loaded, err := svc.Quote(nil, cargo.TypeSmall, cargo.DeliveryStandard, true, true)
	require.NoError(t, err)

	diff := loaded.Sub(plain)
	want := DefaultConfig().PackagingFee.Add(DefaultConfig().InsuranceFee)
	assert.True(t, diff.Equal(want), "want surcharge %s got %s", want, diff)
}

func TestQuoteInvalidInput(t *testing.T) {
	svc := NewService(DefaultConfig())

	_, err := svc.Quote(nil, cargo.Type("pallet"), cargo.DeliveryStandard, false, false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Quote(nil, cargo.TypeSmall, cargo.Delivery("overnight"), false, false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Quote(floatPtr(-1), cargo.TypeSmall, cargo.DeliveryStandard, false, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfigValidateRejectsGaps(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Base, cargo.TypeDocument)
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PerKg = decimal.NewFromInt(-1)
	assert.Error(t, cfg.Validate())

	assert.NoError(t, DefaultConfig().Validate())
}
