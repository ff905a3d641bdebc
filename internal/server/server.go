package server

import (
	"log/slog"
	"net/http"

	"joyeria-backend/internal/handler"
	authmw "joyeria-backend/internal/middleware"
	"joyeria-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authService     service.AuthService
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	catalogHandler  *handler.CatalogHandler
	adminHandler    *handler.AdminHandler
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewServer(
	checkoutService service.CheckoutService,
	webhookService service.WebhookService,
	catalogService service.CatalogService,
	orderService service.OrderService,
	authService service.AuthService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"error", v.Error,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authService:     authService,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		webhookHandler:  handler.NewWebhookHandler(webhookService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		adminHandler:    handler.NewAdminHandler(authService, orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- storefront --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.POST("/checkout/preference", s.checkoutHandler.CreatePreference)

	// -------- provider callbacks --------
	api.POST("/payments/webhook", s.webhookHandler.HandleNotification)

	// -------- admin back-office --------
	api.POST("/admin/login", s.adminHandler.Login)

	admin := api.Group("/admin", authmw.RequireAuth(s.authService))
	admin.GET("/orders", s.adminHandler.ListOrders)
	admin.GET("/orders/:id", s.adminHandler.GetOrder)
	admin.PATCH("/orders/:id/status", s.adminHandler.UpdateOrderStatus)
	admin.POST("/products", s.catalogHandler.CreateProduct)
	admin.PUT("/products/:id", s.catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.catalogHandler.DeleteProduct)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
