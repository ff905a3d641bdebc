package repository

import (
	"context"

	"joyeria-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookEventRepository keeps an audit trail of processed provider
// notifications. Writes are best-effort: the webhook flow never gates on
// them, deduplication belongs to the downstream atomic procedure.
type WebhookEventRepository interface {
	Record(ctx context.Context, paymentID, eventType, paymentStatus string) error
}

type webhookEventRepoImpl struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepoImpl{db: db}
}

func (r *webhookEventRepoImpl) Record(ctx context.Context, paymentID, eventType, paymentStatus string) error {
	return r.db.WithContext(ctx).Create(&model.WebhookEvent{
		EventID:       uuid.NewString(),
		PaymentID:     paymentID,
		EventType:     eventType,
		PaymentStatus: paymentStatus,
	}).Error
}
