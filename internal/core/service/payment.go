package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"go.uber.org/zap"
)

// HandleReturn verifies the browser return callback. The result only drives
// the redirect shown to the user; the IPN is the authority on payment state.
func (s *Service) HandleReturn(ctx context.Context, params map[string]string) bool {
	_, ok := s.gateway.VerifyCallback(params)
	s.metrics.ReturnVerified(ok)
	return ok
}

// HandleIPN applies the gates in order: signature, existence, amount,
// terminal status. Only the last one may change the order.
func (s *Service) HandleIPN(ctx context.Context, params map[string]string) (domain.IPNResult, error) {
	result, err := s.reconcile(ctx, params)
	if err != nil {
		s.metrics.IPNHandled(domain.IPNUnknownError.Code)
		return domain.IPNUnknownError, err
	}
	s.metrics.IPNHandled(result.Code)
	return result, nil
}

func (s *Service) reconcile(ctx context.Context, params map[string]string) (domain.IPNResult, error) {
	cb, ok := s.gateway.VerifyCallback(params)
	if !ok {
		s.logger.Warn("IPN checksum failed")
		return domain.IPNChecksumFailed, nil
	}
	log := s.logger.With(zap.String("reference", string(cb.Reference)))

	order, err := s.repo.ReadOrderByReference(ctx, cb.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			log.Info("IPN for unknown order")
			return domain.IPNOrderNotFound, nil
		}
		return domain.IPNResult{}, fmt.Errorf("read order %s: %w", cb.Reference, err)
	}

	total, err := domain.ToMinorUnits(order.Total)
	if err != nil {
		return domain.IPNResult{}, fmt.Errorf("order %s total: %w", cb.Reference, err)
	}
	if !cb.AmountValid || cb.Amount != total {
		log.Warn("IPN amount mismatch", zap.Int64("expected", total), zap.Int64("received", cb.Amount))
		return domain.IPNInvalidAmount, nil
	}

	if order.PaymentStatus.IsTerminal() {
		log.Info("IPN for already updated order", zap.String("status", string(order.PaymentStatus)))
		return domain.IPNAlreadyUpdated, nil
	}

	to := domain.PaymentStatusFailed
	if cb.ResponseCode == domain.GatewaySuccessCode {
		to = domain.PaymentStatusCompleted
	}

	err = s.repo.TransitionPaymentStatus(ctx, cb.Reference, to)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPaymentAlreadyUpdated):
		// a concurrent delivery won the compare-and-set
		log.Info("IPN lost status race")
		return domain.IPNAlreadyUpdated, nil
	case errors.Is(err, domain.ErrDataNotFound):
		return domain.IPNOrderNotFound, nil
	default:
		return domain.IPNResult{}, fmt.Errorf("transition order %s: %w", cb.Reference, err)
	}

	log.Info("payment status updated",
		zap.String("status", string(to)), zap.String("response_code", cb.ResponseCode))

	s.events.SchedulePaymentEvent(domain.PaymentEvent{
		Reference:    order.Reference,
		UserID:       order.UserID,
		Status:       to,
		ResponseCode: cb.ResponseCode,
		Total:        order.Total,
	})

	return domain.IPNSuccess, nil
}
