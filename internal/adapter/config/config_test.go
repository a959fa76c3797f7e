package config

import (
	"testing"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVNPay_Validate(t *testing.T) {
	full := VNPay{
		TmnCode:    "TMN01",
		HashSecret: "secret",
		URL:        "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8080/api/checkout/vnpay-return",
	}
	assert.NoError(t, full.Validate())

	empty := VNPay{}
	err := empty.Validate()
	assert.ErrorIs(t, err, domain.ErrMissingConfig)
	assert.Contains(t, err.Error(), "VNPAY_HASH_SECRET")
}

func TestNewVNPayConfig(t *testing.T) {
	t.Setenv("VNPAY_TMN_CODE", "TMN01")
	t.Setenv("VNPAY_HASH_SECRET", "secret")
	t.Setenv("VNPAY_RETURN_URL", "http://localhost:8080/api/checkout/vnpay-return")

	conf, err := NewVNPayConfig()
	require.NoError(t, err)
	assert.Equal(t, "TMN01", conf.TmnCode)
	assert.Equal(t, "Asia/Ho_Chi_Minh", conf.Timezone)
	assert.NotEmpty(t, conf.URL)
}

func TestNewVNPayConfig_Missing(t *testing.T) {
	t.Setenv("VNPAY_TMN_CODE", "")
	t.Setenv("VNPAY_HASH_SECRET", "")
	t.Setenv("VNPAY_RETURN_URL", "")

	_, err := NewVNPayConfig()
	assert.ErrorIs(t, err, domain.ErrMissingConfig)
}
