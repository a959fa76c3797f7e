package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	BookID   string `json:"bookId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	Items         []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	SubTotal      float64            `json:"subTotal" binding:"gte=0"`
	ShippingCost  float64            `json:"shippingCost" binding:"gte=0"`
	Total         float64            `json:"total" binding:"required,gt=0"`
	Address       string             `json:"address" binding:"required"`
	PhoneNumber   string             `json:"phoneNumber" binding:"required"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	BankCode      string             `json:"bankCode"`
	Locale        string             `json:"locale"`
}

type orderItemResponse struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	Reference     string              `json:"orderId"`
	Items         []orderItemResponse `json:"items"`
	SubTotal      jsonDecimal         `json:"subTotal"`
	ShippingCost  jsonDecimal         `json:"shippingCost"`
	Total         jsonDecimal         `json:"total"`
	Address       string              `json:"address"`
	PhoneNumber   string              `json:"phoneNumber"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type createOrderResponse struct {
	Order      orderResponse `json:"order"`
	PaymentURL string        `json:"paymentUrl,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, orderItemResponse{BookID: i.BookID, Quantity: i.Quantity})
	}
	return orderResponse{
		Reference:     string(o.Reference),
		Items:         items,
		SubTotal:      jsonDecimal(o.SubTotal),
		ShippingCost:  jsonDecimal(o.ShippingCost),
		Total:         jsonDecimal(o.Total),
		Address:       o.Address,
		PhoneNumber:   o.PhoneNumber,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{
		UserID:        getAuthPayload(ctx).UserID,
		Items:         make([]domain.OrderItem, 0, len(req.Items)),
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}
	for _, i := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{BookID: i.BookID, Quantity: i.Quantity})
	}

	amounts := []struct {
		src float64
		dst *decimal.Decimal
	}{
		{req.SubTotal, &order.SubTotal},
		{req.ShippingCost, &order.ShippingCost},
		{req.Total, &order.Total},
	}
	for _, a := range amounts {
		*a.dst, err = decimal.NewFromFloat64(a.src)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
	}

	result, err := oh.service.CreateOrder(ctx, order, port.CheckoutOptions{
		BankCode: domain.BankCode(req.BankCode),
		Locale:   domain.Locale(req.Locale),
		ClientIP: ctx.ClientIP(),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, createOrderResponse{
		Order:      newOrderResponse(result.Order),
		PaymentURL: result.PaymentURL,
	}, http.StatusCreated)
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	order, err := oh.service.GetOrder(ctx, userID, domain.OrderReference(ctx.Param("reference")))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
