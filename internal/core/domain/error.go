package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Configuration errors.
	ErrMissingConfig = errors.New("required configuration is missing")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrOrderNoItems          = errors.New("order has no items")
	ErrOrderBadItem          = errors.New("order item is not valid")
	ErrOrderBadAmount        = errors.New("order amounts are not valid")
	ErrOrderBadAddress       = errors.New("order address is required")
	ErrOrderBadPhone         = errors.New("order phone number is not valid")
	ErrOrderBadPaymentMethod = errors.New("payment method is not supported")
	ErrBadBankCode           = errors.New("bank code is not supported")
	ErrBadLocale             = errors.New("locale is not supported")
	ErrAmountPrecision       = errors.New("amount cannot be expressed in gateway units")
	ErrPaymentAlreadyUpdated = errors.New("order payment status already updated")
)
