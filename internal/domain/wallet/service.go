package wallet

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Service maintains earnings balances. Credits come from the
// installment approval flow; the ledger itself never initiates money
// movement.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetOrCreateWallet(ctx context.Context, actorID string) (*Wallet, error) {
	wallet, err := s.getWalletByActorID(ctx, actorID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = &Wallet{ActorID: actorID, Balance: 0}
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		if isUniqueConstraintError(err) {
			return s.getWalletByActorID(ctx, actorID)
		}
		return nil, err
	}
	return wallet, nil
}

// Credit adds an approved installment amount to the actor's balance.
// Implements the installment engine's EarningsCrediter.
func (s *Service) Credit(ctx context.Context, actorID string, amount int64, reference string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallet Wallet
		if err := getOrCreateWalletForUpdate(tx, actorID, &wallet); err != nil {
			return err
		}

		wallet.Balance += amount
		if err := tx.Model(&Wallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
			return err
		}

		txn := Transaction{WalletID: wallet.ID, Amount: amount, Type: TransactionTypeCredit, Reference: reference}
		return tx.Create(&txn).Error
	})
}

func (s *Service) ListTransactions(ctx context.Context, actorID string) ([]Transaction, error) {
	wallet, err := s.GetOrCreateWallet(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", wallet.ID).Order("created_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}

	return txns, nil
}

func (s *Service) getWalletByActorID(ctx context.Context, actorID string) (*Wallet, error) {
	var wallet Wallet
	if err := s.db.WithContext(ctx).Where("actor_id = ?", actorID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func getOrCreateWalletForUpdate(tx *gorm.DB, actorID string, wallet *Wallet) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("actor_id = ?", actorID).First(wallet).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		*wallet = Wallet{ActorID: actorID, Balance: 0}
		if err := tx.Create(wallet).Error; err != nil {
			if isUniqueConstraintError(err) {
				return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("actor_id = ?", actorID).First(wallet).Error
			}
			return err
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key value")
}
