package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA512 of data.
func Sign(secret, data string) string {
	return hex.EncodeToString(mac(secret, data))
}

// Verify compares a hex digest against the expected HMAC in constant time.
// Hex case is ignored; malformed digests never match.
func Verify(secret, data, provided string) bool {
	got, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	return hmac.Equal(got, mac(secret, data))
}

func mac(secret, data string) []byte {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(data))
	return h.Sum(nil)
}
