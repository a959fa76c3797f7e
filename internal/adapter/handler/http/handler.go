package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrOrderNoItems:          http.StatusUnprocessableEntity,
	domain.ErrOrderBadItem:          http.StatusUnprocessableEntity,
	domain.ErrOrderBadAmount:        http.StatusUnprocessableEntity,
	domain.ErrOrderBadAddress:       http.StatusUnprocessableEntity,
	domain.ErrOrderBadPhone:         http.StatusUnprocessableEntity,
	domain.ErrOrderBadPaymentMethod: http.StatusUnprocessableEntity,
	domain.ErrBadBankCode:           http.StatusUnprocessableEntity,
	domain.ErrBadLocale:             http.StatusUnprocessableEntity,
	domain.ErrAmountPrecision:       http.StatusUnprocessableEntity,
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	s := fmt.Sprintf("%f", decimal.Decimal(j))
	return []byte(s), nil
}

type errorResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusFor(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("request validation failed", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Message: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	_ = ctx.AbortWithError(statusCode, err)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Message: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Message: err.Error()})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
