package port

import "github.com/MikeRez0/ypbookstore/internal/core/domain"

//go:generate mockgen -source=event.go -destination=mock/event.go -package=mock
type PaymentEventPublisher interface {
	SchedulePaymentEvent(event domain.PaymentEvent)
}
