package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo    port.Repository
	gateway port.PaymentGateway
	events  port.PaymentEventPublisher
	metrics port.PaymentMetrics
	logger  *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	events port.PaymentEventPublisher, metrics port.PaymentMetrics, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:    repo,
		gateway: gateway,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order,
	opts port.CheckoutOptions) (*domain.CheckoutResult, error) {
	err := order.Validate()
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod == domain.PaymentMethodVNPay {
		if !opts.BankCode.Valid() {
			return nil, domain.ErrBadBankCode
		}
		if opts.Locale != "" && opts.Locale != domain.LocaleVN && opts.Locale != domain.LocaleEN {
			return nil, domain.ErrBadLocale
		}
	}

	order.Reference = domain.OrderReference(uuid.NewString())
	order.PaymentStatus = domain.PaymentStatusPending

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrInternal
		}
		return nil, err
	}
	s.metrics.OrderCreated(newOrder.PaymentMethod)

	result := &domain.CheckoutResult{Order: newOrder}
	if newOrder.PaymentMethod != domain.PaymentMethodVNPay {
		return result, nil
	}

	paymentURL, err := s.gateway.PaymentURL(domain.PaymentRequest{
		Reference: newOrder.Reference,
		Amount:    newOrder.Total,
		BankCode:  opts.BankCode,
		Locale:    opts.Locale,
		IPAddr:    opts.ClientIP,
	})
	if err != nil {
		s.logger.Error("Build payment url",
			zap.String("reference", string(newOrder.Reference)), zap.Error(err))
		return nil, err
	}
	result.PaymentURL = paymentURL

	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, userID uint64, ref domain.OrderReference) (*domain.Order, error) {
	order, err := s.repo.ReadOrderByReference(ctx, ref)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Get order", zap.Error(err))
		}
		return nil, err
	}
	// other users' orders are reported as missing
	if order.UserID != userID {
		return nil, domain.ErrDataNotFound
	}
	return order, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}
