package handler

import (
	"errors"
	"net/http"

	"joyeria-backend/internal/dto"
	"joyeria-backend/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AdminHandler struct {
	authService  service.AuthService
	orderService service.OrderService
}

func NewAdminHandler(authService service.AuthService, orderService service.OrderService) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		orderService: orderService,
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "contraseña incorrecta")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.LoginResponse{Token: token})
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "orden no encontrada")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.orderService.UpdateStatus(ctx, c.Param("id"), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "orden no encontrada")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "updated",
	})
}
