package vnpay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_KnownVector(t *testing.T) {
	assert.Equal(t,
		"785d7084675f5b7fa7222b1aed28705aa6868ca4b654418f05cbfdf24f6b815d"+
			"92e5ac964ae579e72eedbe48ac144dd3b5e852787a00d5c0479ce7767a192d38",
		Sign("secret", "a=1&b=2"))
}

func TestSignVerify_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		params map[string]string
	}{
		{name: "empty", secret: "s", params: map[string]string{}},
		{name: "single", secret: "secret", params: map[string]string{"vnp_Amount": "15000000"}},
		{
			name:   "spaces and symbols",
			secret: "ÿ-unicode-secret",
			params: map[string]string{"vnp_OrderInfo": "Thanh toan: #1 & more", "vnp_TxnRef": "abc"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := CanonicalString(test.params)
			digest := Sign(test.secret, data)

			assert.True(t, Verify(test.secret, data, digest))
			assert.True(t, Verify(test.secret, data, strings.ToUpper(digest)))
			assert.False(t, Verify(test.secret+"x", data, digest))
		})
	}
}

func TestVerify_TamperedValue(t *testing.T) {
	params := map[string]string{"vnp_Amount": "15000000", "vnp_TxnRef": "ref-1"}
	digest := Sign("secret", CanonicalString(params))

	tampered := map[string]string{"vnp_Amount": "15000001", "vnp_TxnRef": "ref-1"}
	assert.False(t, Verify("secret", CanonicalString(tampered), digest))
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, Verify("secret", "a=1", "not-hex"))
	assert.False(t, Verify("secret", "a=1", ""))
}
