package repository

import (
	"context"
	"time"

	"joyeria-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	// UpdatePaymentState mirrors the provider's reported status onto the
	// order row: fulfillment status, payment status and payment detail.
	UpdatePaymentState(ctx context.Context, orderID, status, paymentStatus, paymentID, paymentDetail string) error
	// MarkStockError flags an approved payment with no reservable stock.
	// The fulfillment status is deliberately left untouched.
	MarkStockError(ctx context.Context, orderID, paymentID, paymentDetail string) error
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) UpdatePaymentState(ctx context.Context, orderID, status, paymentStatus, paymentID, paymentDetail string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         status,
			"payment_status": paymentStatus,
			"payment_id":     paymentID,
			"payment_detail": paymentDetail,
			"updated_at":     time.Now(),
		}).Error
}

func (r *orderRepoImpl) MarkStockError(ctx context.Context, orderID, paymentID, paymentDetail string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentStatusStockError,
			"payment_id":     paymentID,
			"payment_detail": paymentDetail,
			"updated_at":     time.Now(),
		}).Error
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
