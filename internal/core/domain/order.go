package domain

import (
	"regexp"
	"time"

	"github.com/govalues/decimal"
)

type OrderReference string

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodVNPay PaymentMethod = "VN_PAY"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsTerminal reports whether no further transition may be applied.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type OrderItem struct {
	BookID   string
	Quantity int
}

type Order struct {
	Reference     OrderReference
	UserID        uint64
	Items         []OrderItem
	SubTotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	Address       string
	PhoneNumber   string
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var phoneNumberRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// Validate checks the checkout payload before the order is stored.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrOrderNoItems
	}
	for _, item := range o.Items {
		if item.BookID == "" || item.Quantity <= 0 {
			return ErrOrderBadItem
		}
	}

	if o.SubTotal.IsNeg() || o.ShippingCost.IsNeg() || !o.Total.IsPos() {
		return ErrOrderBadAmount
	}
	sum, err := o.SubTotal.Add(o.ShippingCost)
	if err != nil || sum.Cmp(o.Total) != 0 {
		return ErrOrderBadAmount
	}
	for _, amount := range []decimal.Decimal{o.SubTotal, o.ShippingCost, o.Total} {
		if _, err := ToMinorUnits(amount); err != nil {
			return ErrOrderBadAmount
		}
	}

	if o.Address == "" {
		return ErrOrderBadAddress
	}
	if !phoneNumberRe.MatchString(o.PhoneNumber) {
		return ErrOrderBadPhone
	}

	switch o.PaymentMethod {
	case PaymentMethodCash, PaymentMethodVNPay:
	default:
		return ErrOrderBadPaymentMethod
	}

	return nil
}
