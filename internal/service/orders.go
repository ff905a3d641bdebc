package service

import (
	"context"
	"fmt"

	"joyeria-backend/internal/model"
	"joyeria-backend/internal/repository"
)

// OrderService backs the admin order screens: listing, inspection and manual
// fulfillment transitions. Payment-facing fields are off-limits here, only
// the webhook flow writes those.
type OrderService interface {
	ListOrders(ctx context.Context) ([]*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID, status string) error {
	switch status {
	case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return fmt.Errorf("invalid order status %q", status)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}
