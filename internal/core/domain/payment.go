package domain

import "github.com/govalues/decimal"

type BankCode string

const (
	BankCodeVNPayQR BankCode = "VNPAYQR"
	BankCodeVNBank  BankCode = "VNBANK"
	BankCodeIntCard BankCode = "INTCARD"
)

func (b BankCode) Valid() bool {
	switch b {
	case "", BankCodeVNPayQR, BankCodeVNBank, BankCodeIntCard:
		return true
	}
	return false
}

type Locale string

const (
	LocaleVN Locale = "vn"
	LocaleEN Locale = "en"
)

// PaymentRequest is the input of the gateway URL builder.
type PaymentRequest struct {
	Reference OrderReference
	Amount    decimal.Decimal
	BankCode  BankCode
	Locale    Locale
	IPAddr    string
}

// GatewaySuccessCode is the vnp_ResponseCode of a successful payment.
const GatewaySuccessCode = "00"

// PaymentCallback holds the fields of a verified gateway callback.
type PaymentCallback struct {
	Reference    OrderReference
	ResponseCode string
	// Amount is the transmitted amount in minor units.
	Amount      int64
	AmountValid bool
	BankCode    string
	TxnNo       string
}

// IPNResult is the acknowledgement returned to the gateway.
type IPNResult struct {
	Code    string `json:"RspCode"`
	Message string `json:"Message"`
}

var (
	IPNSuccess        = IPNResult{Code: "00", Message: "Success"}
	IPNOrderNotFound  = IPNResult{Code: "01", Message: "Order not found"}
	IPNAlreadyUpdated = IPNResult{Code: "02", Message: "This order has been updated to the payment status"}
	IPNInvalidAmount  = IPNResult{Code: "04", Message: "Amount invalid"}
	IPNChecksumFailed = IPNResult{Code: "97", Message: "Checksum failed"}
	IPNUnknownError   = IPNResult{Code: "99", Message: "Unknown error"}
)

// PaymentEvent is emitted once per applied payment status transition.
type PaymentEvent struct {
	Reference    OrderReference  `json:"reference"`
	UserID       uint64          `json:"user_id"`
	Status       PaymentStatus   `json:"status"`
	ResponseCode string          `json:"response_code"`
	Total        decimal.Decimal `json:"total"`
}

// CheckoutResult is returned from order creation.
type CheckoutResult struct {
	Order      *Order
	PaymentURL string
}
