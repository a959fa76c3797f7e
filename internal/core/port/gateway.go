package port

import "github.com/MikeRez0/ypbookstore/internal/core/domain"

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	PaymentURL(req domain.PaymentRequest) (string, error)
	// VerifyCallback checks the secure hash of callback query parameters.
	// The bool is false when the signature does not match.
	VerifyCallback(params map[string]string) (*domain.PaymentCallback, bool)
}
