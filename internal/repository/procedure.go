package repository

import (
	"context"

	"gorm.io/gorm"
)

// ProcedureResult is the business outcome reported by the stored procedure.
// Success=false is not a transport error: the call went through and the
// backing store decided the payment cannot be settled (e.g. stock ran out
// between checkout and settlement).
type ProcedureResult struct {
	Success bool   `gorm:"column:success"`
	Message string `gorm:"column:message"`
}

// ProcedureRepository invokes the backing store's atomic stock-decrement and
// order-settlement procedure. The transaction inside it is opaque to this
// service; idempotency across webhook redeliveries is its responsibility.
type ProcedureRepository interface {
	ProcessOrderPayment(ctx context.Context, orderID, paymentStatus, paymentDetail string) (*ProcedureResult, error)
}

type procedureRepoImpl struct {
	db *gorm.DB
}

func NewProcedureRepository(db *gorm.DB) ProcedureRepository {
	return &procedureRepoImpl{db: db}
}

func (r *procedureRepoImpl) ProcessOrderPayment(ctx context.Context, orderID, paymentStatus, paymentDetail string) (*ProcedureResult, error) {
	var result ProcedureResult
	err := r.db.WithContext(ctx).
		Raw("CALL process_order_payment(?, ?, ?)", orderID, paymentStatus, paymentDetail).
		Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}
