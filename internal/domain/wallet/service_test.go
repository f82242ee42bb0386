package wallet

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Wallet{}, &Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func TestGetOrCreateWallet_Idempotent(t *testing.T) {
	svc := setupService(t)

	w1, err := svc.GetOrCreateWallet(context.Background(), "pm-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), w1.Balance)

	w2, err := svc.GetOrCreateWallet(context.Background(), "pm-1")
	assert.NoError(t, err)
	assert.Equal(t, w1.ID, w2.ID)
}

func TestCredit_AccumulatesBalance(t *testing.T) {
	svc := setupService(t)

	err := svc.Credit(context.Background(), "pm-1", 10000, "inst-1")
	assert.NoError(t, err)
	err = svc.Credit(context.Background(), "pm-1", 5000, "inst-2")
	assert.NoError(t, err)

	w, err := svc.GetOrCreateWallet(context.Background(), "pm-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), w.Balance)

	txns, err := svc.ListTransactions(context.Background(), "pm-1")
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	for _, txn := range txns {
		assert.Equal(t, TransactionTypeCredit, txn.Type)
	}
}

func TestCredit_RejectsNonPositive(t *testing.T) {
	svc := setupService(t)

	assert.ErrorIs(t, svc.Credit(context.Background(), "pm-1", 0, "x"), ErrInvalidAmount)
	assert.ErrorIs(t, svc.Credit(context.Background(), "pm-1", -100, "x"), ErrInvalidAmount)
}

func TestListTransactions_EmptyWallet(t *testing.T) {
	svc := setupService(t)

	txns, err := svc.ListTransactions(context.Background(), "pm-9")
	assert.NoError(t, err)
	assert.Empty(t, txns)
}
