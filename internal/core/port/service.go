package port

import (
	"context"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
)

type CheckoutOptions struct {
	BankCode domain.BankCode
	Locale   domain.Locale
	ClientIP string
}

type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order, opts CheckoutOptions) (*domain.CheckoutResult, error)
	GetOrder(ctx context.Context, userID uint64, ref domain.OrderReference) (*domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
}

type PaymentService interface {
	// HandleReturn verifies a browser return callback. It never mutates state.
	HandleReturn(ctx context.Context, params map[string]string) bool
	// HandleIPN reconciles a server-to-server notification. Only storage
	// faults are returned as errors.
	HandleIPN(ctx context.Context, params map[string]string) (domain.IPNResult, error)
}
