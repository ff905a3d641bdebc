package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"joyeria-backend/internal/client"
	"joyeria-backend/internal/model"
	"joyeria-backend/internal/repository"
)

// AtomicTransactionError wraps a transport failure of the stored procedure
// call. The handler maps it to 500 so the provider's redelivery mechanism
// retries; no local state was mutated.
type AtomicTransactionError struct {
	Err error
}

func (e *AtomicTransactionError) Error() string {
	return fmt.Sprintf("atomic transaction failed: %v", e.Err)
}

func (e *AtomicTransactionError) Unwrap() error {
	return e.Err
}

type WebhookService interface {
	HandleNotification(ctx context.Context, notif *model.WebhookNotification) error
}

type webhookServiceImpl struct {
	mpClient         client.MercadoPagoClient
	orderRepo        repository.OrderRepository
	procedureRepo    repository.ProcedureRepository
	webhookEventRepo repository.WebhookEventRepository
}

func NewWebhookService(
	mpClient client.MercadoPagoClient,
	orderRepo repository.OrderRepository,
	procedureRepo repository.ProcedureRepository,
	webhookEventRepo repository.WebhookEventRepository,
) WebhookService {
	return &webhookServiceImpl{
		mpClient:         mpClient,
		orderRepo:        orderRepo,
		procedureRepo:    procedureRepo,
		webhookEventRepo: webhookEventRepo,
	}
}

func (s *webhookServiceImpl) HandleNotification(ctx context.Context, notif *model.WebhookNotification) error {
	// anything that is not a payment notification is acknowledged untouched
	if notif.Type != "payment" {
		return nil
	}

	// The webhook body's status claims are never trusted: the payment object
	// is re-fetched from the provider and only that copy drives state.
	payment, err := s.mpClient.GetPayment(ctx, notif.Data.ID.String())
	if err != nil {
		return err
	}

	paymentID := strconv.FormatInt(payment.ID, 10)

	if err := s.webhookEventRepo.Record(ctx, paymentID, notif.Type, payment.Status); err != nil {
		slog.Error("record webhook event", "payment_id", paymentID, "error", err)
	}

	orderID := payment.PreferenceID
	if orderID == "" {
		return fmt.Errorf("payment %s has no preference reference", paymentID)
	}

	if payment.Status == model.PaymentStatusApproved {
		return s.settleApprovedPayment(ctx, orderID, paymentID, payment)
	}

	// Non-approved statuses (pending, rejected, in_process, ...) are mirrored
	// onto the order as-is. No inventory action on this branch.
	if err := s.orderRepo.UpdatePaymentState(ctx, orderID, payment.Status, payment.Status, paymentID, payment.StatusDetail); err != nil {
		return fmt.Errorf("update order payment state: %w", err)
	}

	return nil
}

func (s *webhookServiceImpl) settleApprovedPayment(ctx context.Context, orderID, paymentID string, payment *model.Payment) error {
	result, err := s.procedureRepo.ProcessOrderPayment(ctx, orderID, payment.Status, payment.StatusDetail)
	if err != nil {
		return &AtomicTransactionError{Err: err}
	}

	if result.Success {
		return nil
	}

	// The shopper was charged but the store could not reserve stock. The
	// order must never look paid: flag it for human review instead. Retrying
	// would not conjure inventory, so the webhook is still acknowledged.
	detail := fmt.Sprintf("Pago aprobado pero sin stock disponible: %s. El cliente fue cobrado; requiere revisión manual.", result.Message)
	if err := s.orderRepo.MarkStockError(ctx, orderID, paymentID, detail); err != nil {
		slog.Error("mark order stock_error", "order_id", orderID, "payment_id", paymentID, "error", err)
	}

	return nil
}
