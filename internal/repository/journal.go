package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"storefront-gateway/internal/model"
)

// JournalRepository records payment attempts so "processed but no order"
// outcomes can be reconciled against the processor later.
type JournalRepository interface {
	CreateAttempt(ctx context.Context, attempt *model.PaymentAttempt) error
	FindByCheckoutID(ctx context.Context, checkoutID string) (*model.PaymentAttempt, error)
	MarkProcessed(ctx context.Context, checkoutID, transactionID string) error
	MarkCompleted(ctx context.Context, checkoutID, orderID string) error
	MarkPendingReconcile(ctx context.Context, checkoutID string) error
}

type journalRepoImpl struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepoImpl{db: db}
}

func (r *journalRepoImpl) CreateAttempt(ctx context.Context, attempt *model.PaymentAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *journalRepoImpl) FindByCheckoutID(ctx context.Context, checkoutID string) (*model.PaymentAttempt, error) {
	var attempt model.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("checkout_id = ?", checkoutID).
		Order("created_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *journalRepoImpl) MarkProcessed(ctx context.Context, checkoutID, transactionID string) error {
	return r.db.WithContext(ctx).Model(&model.PaymentAttempt{}).
		Where("checkout_id = ? AND status = ?", checkoutID, model.AttemptInitiated).
		Updates(map[string]interface{}{
			"status":         model.AttemptProcessed,
			"transaction_id": transactionID,
			"updated_at":     time.Now(),
		}).Error
}

func (r *journalRepoImpl) MarkCompleted(ctx context.Context, checkoutID, orderID string) error {
	return r.db.WithContext(ctx).Model(&model.PaymentAttempt{}).
		Where("checkout_id = ? AND status IN ?", checkoutID,
			[]string{model.AttemptInitiated, model.AttemptProcessed, model.AttemptPendingReconcile}).
		Updates(map[string]interface{}{
			"status":     model.AttemptCompleted,
			"order_id":   orderID,
			"updated_at": time.Now(),
		}).Error
}

func (r *journalRepoImpl) MarkPendingReconcile(ctx context.Context, checkoutID string) error {
	return r.db.WithContext(ctx).Model(&model.PaymentAttempt{}).
		Where("checkout_id = ? AND status = ?", checkoutID, model.AttemptProcessed).
		Updates(map[string]interface{}{
			"status":     model.AttemptPendingReconcile,
			"updated_at": time.Now(),
		}).Error
}
