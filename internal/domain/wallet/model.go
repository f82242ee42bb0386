package wallet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit     = "CREDIT"
	TransactionTypeAdjustment = "ADJUSTMENT"
)

// Wallet accumulates an actor's earnings from approved installments.
type Wallet struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ActorID string    `json:"actor_id" gorm:"not null;uniqueIndex"`
	Balance int64     `json:"balance" gorm:"not null;default:0"`
}

func (Wallet) TableName() string {
	return "wallets"
}

func (w *Wallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Transaction records a single balance operation. Reference ties a
// credit back to the installment that produced it.
type Transaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	WalletID  uuid.UUID `json:"wallet_id" gorm:"type:uuid;not null;index"`
	Amount    int64     `json:"amount" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index"`
	Reference string    `json:"reference" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "wallet_transactions"
}

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
