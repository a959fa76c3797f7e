package port

import "github.com/MikeRez0/ypbookstore/internal/core/domain"

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock
type PaymentMetrics interface {
	OrderCreated(method domain.PaymentMethod)
	IPNHandled(code string)
	ReturnVerified(valid bool)
}
