package http

import (
	"net/http"

	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	checkoutHandler *CheckoutHandler,
	metricsHandler http.Handler,
	logger *zap.Logger) (*Router, error) {

	h := NewHandler(logger)

	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsHandler))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.Use(h.authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrdersByUser)
			orders.GET("/:reference", orderHandler.GetOrder)
		}

		checkout := api.Group("/checkout")
		{
			checkout.GET("/vnpay-return", checkoutHandler.VNPayReturn)
			checkout.GET("/vnpay-ipn", checkoutHandler.VNPayIPN)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
