package handler

import (
	"errors"
	"io"
	"net/http"

	"joyeria-backend/internal/dto"
	"joyeria-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreatePreference accepts both the wrapped body and the legacy bare-array
// body; dto.ParseCheckoutRequest normalizes them before the service runs.
func (h *CheckoutHandler) CreatePreference(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "cuerpo de solicitud inválido",
		})
	}

	req, err := dto.ParseCheckoutRequest(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "cuerpo de solicitud inválido",
		})
	}

	result, err := h.checkoutService.CreatePreference(ctx, req, c.Request().Header.Get("Origin"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}
