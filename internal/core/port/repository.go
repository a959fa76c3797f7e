package port

import (
	"context"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrderByReference(ctx context.Context, ref domain.OrderReference) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)

	// TransitionPaymentStatus moves a PENDING order to a terminal status in one
	// compare-and-set. It returns domain.ErrPaymentAlreadyUpdated when the order
	// is no longer PENDING and domain.ErrDataNotFound when it does not exist.
	TransitionPaymentStatus(ctx context.Context, ref domain.OrderReference, to domain.PaymentStatus) error
}
