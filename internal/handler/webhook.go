package handler

import (
	"errors"
	"net/http"

	"joyeria-backend/internal/client"
	"joyeria-backend/internal/model"
	"joyeria-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandleNotification acknowledges every processed notification with 200 so
// the provider stops redelivering. Only two cases answer with an error
// status: the payment missing at the provider and a transport failure of the
// atomic procedure, both of which redelivery can fix.
func (h *WebhookHandler) HandleNotification(c echo.Context) error {
	ctx := c.Request().Context()

	var notif model.WebhookNotification
	if err := c.Bind(&notif); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid notification body",
		})
	}

	if err := h.webhookService.HandleNotification(ctx, &notif); err != nil {
		if errors.Is(err, client.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Payment not found",
			})
		}

		var atomicErr *service.AtomicTransactionError
		if errors.As(err, &atomicErr) {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "Atomic Transaction Failed",
				"details": atomicErr.Err.Error(),
			})
		}

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal Server Error",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"received": true,
	})
}
