package http

import (
	"net/http"
	"strings"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the payment gateway callbacks.
type CheckoutHandler struct {
	Handler
	service    port.PaymentService
	successURL string
	failedURL  string
}

func NewCheckoutHandler(service port.PaymentService, clientHost string, logger *zap.Logger) (*CheckoutHandler, error) {
	if clientHost == "" {
		return nil, domain.ErrMissingConfig
	}
	host := strings.TrimRight(clientHost, "/")
	return &CheckoutHandler{
		Handler:    *NewHandler(logger),
		service:    service,
		successURL: host + "/checkout/success",
		failedURL:  host + "/checkout/failed",
	}, nil
}

// queryParams keeps the first value of every query parameter.
func queryParams(ctx *gin.Context) map[string]string {
	query := ctx.Request.URL.Query()
	params := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

func (ch *CheckoutHandler) VNPayReturn(ctx *gin.Context) {
	if ch.service.HandleReturn(ctx, queryParams(ctx)) {
		ctx.Redirect(http.StatusFound, ch.successURL)
		return
	}
	ctx.Redirect(http.StatusFound, ch.failedURL)
}

func (ch *CheckoutHandler) VNPayIPN(ctx *gin.Context) {
	result, err := ch.service.HandleIPN(ctx, queryParams(ctx))
	if err != nil {
		ch.logger.Error("IPN processing failed", zap.Error(err))
		result = domain.IPNUnknownError
	}
	ctx.JSON(http.StatusOK, result)
}
