package model

import "time"

// Payment attempt statuses in the journal.
const (
	AttemptInitiated        = "INITIATED"
	AttemptProcessed        = "PROCESSED"
	AttemptCompleted        = "COMPLETED"
	AttemptPendingReconcile = "PENDING_RECONCILE"
)

// PaymentAttempt is the local journal row for one payment attempt.
// It exists so a support flow can reconcile "processed but no order"
// outcomes against the processor; it is not checkout-session persistence.
type PaymentAttempt struct {
	ID             uint   `gorm:"primaryKey"`
	CheckoutID     string `gorm:"size:64;index;not null"`
	IdempotencyKey string `gorm:"size:64;uniqueIndex;not null"`
	TransactionID  string `gorm:"size:64;index"`
	OrderID        string `gorm:"size:64;index"`
	AmountGross    string `gorm:"size:32;not null"` // decimal string, 2dp
	Currency       string `gorm:"size:8;not null"`
	Status         string `gorm:"size:32;index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
