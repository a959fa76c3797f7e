package vnpay

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"go.uber.org/zap"
)

const (
	version      = "2.1.0"
	commandPay   = "pay"
	currencyCode = "VND"
	orderType    = "other"
	dateLayout   = "20060102150405"
	defaultIP    = "127.0.0.1"

	ParamAmount         = "vnp_Amount"
	ParamBankCode       = "vnp_BankCode"
	ParamCommand        = "vnp_Command"
	ParamCreateDate     = "vnp_CreateDate"
	ParamCurrCode       = "vnp_CurrCode"
	ParamIPAddr         = "vnp_IpAddr"
	ParamLocale         = "vnp_Locale"
	ParamOrderInfo      = "vnp_OrderInfo"
	ParamOrderType      = "vnp_OrderType"
	ParamResponseCode   = "vnp_ResponseCode"
	ParamReturnURL      = "vnp_ReturnUrl"
	ParamSecureHash     = "vnp_SecureHash"
	ParamSecureHashType = "vnp_SecureHashType"
	ParamTmnCode        = "vnp_TmnCode"
	ParamTransactionNo  = "vnp_TransactionNo"
	ParamTxnRef         = "vnp_TxnRef"
	ParamVersion        = "vnp_Version"
)

// Client builds signed payment URLs and verifies gateway callbacks.
type Client struct {
	tmnCode   string
	secret    string
	baseURL   string
	returnURL string
	location  *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func NewClient(cfg *config.VNPay, logger *zap.Logger) (*Client, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("error loading vnpay timezone %q: %w", cfg.Timezone, err)
	}

	return &Client{
		tmnCode:   cfg.TmnCode,
		secret:    cfg.HashSecret,
		baseURL:   cfg.URL,
		returnURL: cfg.ReturnURL,
		location:  loc,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// PaymentURL returns the gateway redirect URL for an order.
func (c *Client) PaymentURL(req domain.PaymentRequest) (string, error) {
	if !req.BankCode.Valid() {
		return "", domain.ErrBadBankCode
	}
	locale := req.Locale
	switch locale {
	case "":
		locale = domain.LocaleVN
	case domain.LocaleVN, domain.LocaleEN:
	default:
		return "", domain.ErrBadLocale
	}
	ip := req.IPAddr
	if ip == "" {
		ip = defaultIP
	}

	amount, err := domain.ToMinorUnits(req.Amount)
	if err != nil {
		return "", err
	}

	ref := string(req.Reference)
	params := map[string]string{
		ParamVersion:    version,
		ParamCommand:    commandPay,
		ParamTmnCode:    c.tmnCode,
		ParamLocale:     string(locale),
		ParamCurrCode:   currencyCode,
		ParamTxnRef:     ref,
		ParamOrderInfo:  "Thanh toan cho ma GD:" + ref,
		ParamOrderType:  orderType,
		ParamAmount:     strconv.FormatInt(amount, 10),
		ParamReturnURL:  c.returnURL,
		ParamIPAddr:     ip,
		ParamCreateDate: c.now().In(c.location).Format(dateLayout),
	}
	if req.BankCode != "" {
		params[ParamBankCode] = string(req.BankCode)
	}

	signData := CanonicalString(params)
	hash := Sign(c.secret, signData)

	c.logger.Debug("payment url built",
		zap.String("reference", ref),
		zap.Int64("amount", amount))

	return c.baseURL + "?" + signData + "&" + ParamSecureHash + "=" + hash, nil
}

// VerifyCallback checks the secure hash of return and IPN parameters.
func (c *Client) VerifyCallback(params map[string]string) (*domain.PaymentCallback, bool) {
	provided := params[ParamSecureHash]
	if provided == "" {
		return nil, false
	}

	signed := make(map[string]string, len(params))
	for k, v := range params {
		if k == ParamSecureHash || k == ParamSecureHashType {
			continue
		}
		signed[k] = v
	}

	if !Verify(c.secret, CanonicalString(signed), provided) {
		c.logger.Debug("callback checksum mismatch", zap.String("reference", params[ParamTxnRef]))
		return nil, false
	}

	cb := &domain.PaymentCallback{
		Reference:    domain.OrderReference(signed[ParamTxnRef]),
		ResponseCode: signed[ParamResponseCode],
		BankCode:     signed[ParamBankCode],
		TxnNo:        signed[ParamTransactionNo],
	}
	amount, err := strconv.ParseInt(signed[ParamAmount], 10, 64)
	if err == nil {
		cb.Amount = amount
		cb.AmountValid = true
	}

	return cb, true
}
