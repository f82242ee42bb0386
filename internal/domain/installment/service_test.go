package installment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/status"
)

type stubProjects struct {
	assigned map[string]string
}

func (s *stubProjects) AssignedActor(_ context.Context, projectID string) (string, error) {
	return s.assigned[projectID], nil
}

type creditCall struct {
	ActorID   string
	Amount    int64
	Reference string
}

type stubEarnings struct {
	mu    sync.Mutex
	calls []creditCall
}

func (s *stubEarnings) Credit(_ context.Context, actorID string, amount int64, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, creditCall{ActorID: actorID, Amount: amount, Reference: reference})
	return nil
}

func setupService(t *testing.T) (*Service, *gorm.DB, *stubEarnings) {
	t.Helper()
	dsn := fmt.Sprintf("file:installment_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Installment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	projects := &stubProjects{assigned: map[string]string{"proj-1": "pm-1"}}
	earnings := &stubEarnings{}
	return NewService(db, projects, earnings, event.NewBus()), db, earnings
}

func seedInstallment(t *testing.T, db *gorm.DB, amount int64) *Installment {
	t.Helper()
	inst := &Installment{
		ProjectID: "proj-1",
		Seq:       1,
		Amount:    amount,
		DueDate:   time.Now().UTC().AddDate(0, 1, 0),
		Status:    status.InstallmentPending,
	}
	if err := db.Create(inst).Error; err != nil {
		t.Fatalf("seed installment: %v", err)
	}
	return inst
}

func TestRequestPayment_RecordsClaim(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	paidDate := time.Now().UTC().Truncate(24 * time.Hour)
	got, err := svc.RequestPayment(context.Background(), inst.ID, "pm-1", paidDate, "wire transfer")
	assert.NoError(t, err)
	assert.True(t, got.PendingApproval)
	assert.Equal(t, "pm-1", got.ProposedBy)
	assert.Equal(t, "wire transfer", got.ProposedNotes)

	// claim alone never flips status
	assert.Equal(t, status.InstallmentPending, got.Status)
	assert.Nil(t, got.PaidDate)
}

func TestRequestPayment_OnlyAssignedActor(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.RequestPayment(context.Background(), inst.ID, "pm-2", time.Now(), "")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestRequestPayment_DoubleClaim(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "")
	assert.NoError(t, err)

	_, err = svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "")
	assert.ErrorIs(t, err, ErrAlreadyPending)
}

func TestRequestPayment_AlreadyPaid(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "")
	assert.NoError(t, err)
	_, err = svc.Approve(context.Background(), inst.ID, "admin-1")
	assert.NoError(t, err)

	_, err = svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRequestPayment_NotFound(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.RequestPayment(context.Background(), "missing", "pm-1", time.Now(), "")
	assert.ErrorIs(t, err, ErrInstallmentNotFound)
}

func TestApprove_PromotesClaim(t *testing.T) {
	svc, db, earnings := setupService(t)
	inst := seedInstallment(t, db, 10000)

	paidDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.RequestPayment(context.Background(), inst.ID, "pm-1", paidDate, "cash")
	assert.NoError(t, err)

	got, err := svc.Approve(context.Background(), inst.ID, "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, status.InstallmentPaid, got.Status)
	assert.False(t, got.PendingApproval)
	assert.NotNil(t, got.PaidDate)
	assert.True(t, got.PaidDate.Equal(paidDate), "paid date %v != %v", got.PaidDate, paidDate)
	assert.Equal(t, "cash", got.Notes)

	// earnings credited to the assigned actor
	assert.Len(t, earnings.calls, 1)
	assert.Equal(t, "pm-1", earnings.calls[0].ActorID)
	assert.Equal(t, int64(10000), earnings.calls[0].Amount)
	assert.Equal(t, inst.ID, earnings.calls[0].Reference)
}

func TestApprove_WithoutClaim(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.Approve(context.Background(), inst.ID, "admin-1")
	assert.ErrorIs(t, err, ErrNoPendingClaim)
}

func TestReject_ClearsClaimKeepsStatus(t *testing.T) {
	svc, db, earnings := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "check")
	assert.NoError(t, err)

	got, err := svc.Reject(context.Background(), inst.ID, "admin-1", "no proof of payment")
	assert.NoError(t, err)
	assert.Equal(t, status.InstallmentPending, got.Status)
	assert.False(t, got.PendingApproval)
	assert.Nil(t, got.ProposedPaidDate)
	assert.Empty(t, got.ProposedBy)
	assert.Equal(t, "no proof of payment", got.LastRejectReason)
	assert.Empty(t, earnings.calls)

	// claim can be resubmitted after a reject
	_, err = svc.RequestPayment(context.Background(), inst.ID, "pm-1", time.Now(), "check #2")
	assert.NoError(t, err)
}

func TestReject_WithoutClaim(t *testing.T) {
	svc, db, _ := setupService(t)
	inst := seedInstallment(t, db, 10000)

	_, err := svc.Reject(context.Background(), inst.ID, "admin-1", "nope")
	assert.ErrorIs(t, err, ErrNoPendingClaim)
}

func TestListPendingApproval(t *testing.T) {
	svc, db, _ := setupService(t)
	a := seedInstallment(t, db, 10000)
	b := &Installment{
		ProjectID: "proj-1",
		Seq:       2,
		Amount:    5000,
		DueDate:   time.Now().UTC().AddDate(0, 2, 0),
		Status:    status.InstallmentPending,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.RequestPayment(context.Background(), a.ID, "pm-1", time.Now(), "")
	assert.NoError(t, err)

	queue, err := svc.ListPendingApproval(context.Background())
	assert.NoError(t, err)
	assert.Len(t, queue, 1)
	assert.Equal(t, a.ID, queue[0].ID)
}

func TestStatusAt_DerivesOverdue(t *testing.T) {
	now := time.Now().UTC()

	pendingFuture := Installment{Status: status.InstallmentPending, DueDate: now.AddDate(0, 1, 0)}
	assert.Equal(t, status.InstallmentPending, pendingFuture.StatusAt(now))

	pendingPast := Installment{Status: status.InstallmentPending, DueDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, status.InstallmentOverdue, pendingPast.StatusAt(now))

	// paid never reads as overdue, no matter the due date
	paid := Installment{Status: status.InstallmentPaid, DueDate: now.AddDate(0, -1, 0)}
	assert.Equal(t, status.InstallmentPaid, paid.StatusAt(now))
}

func TestBuildSchedule_ExactSum(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := BuildSchedule("proj-1", 100000, start, PlanShape{Installments: 3, Interval: IntervalMonth})
	assert.NoError(t, err)
	assert.Len(t, schedule, 3)

	var sum int64
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Seq)
		assert.Equal(t, status.InstallmentPending, inst.Status)
		sum += inst.Amount
	}
	assert.Equal(t, int64(100000), sum)

	// remainder lands on the last installment
	assert.Equal(t, int64(33333), schedule[0].Amount)
	assert.Equal(t, int64(33333), schedule[1].Amount)
	assert.Equal(t, int64(33334), schedule[2].Amount)

	// monthly spacing from the start date
	assert.Equal(t, start.AddDate(0, 1, 0), schedule[0].DueDate)
	assert.Equal(t, start.AddDate(0, 3, 0), schedule[2].DueDate)
}

func TestBuildSchedule_Defaults(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := BuildSchedule("proj-1", 9000, start, PlanShape{})
	assert.NoError(t, err)
	assert.Len(t, schedule, DefaultPlan.Installments)
}

func TestBuildSchedule_Validation(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := BuildSchedule("proj-1", 0, start, PlanShape{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = BuildSchedule("proj-1", 2, start, PlanShape{Installments: 5})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildSchedule_Intervals(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	daily, err := BuildSchedule("proj-1", 300, start, PlanShape{Installments: 3, Interval: IntervalDay})
	assert.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 1), daily[0].DueDate)
	assert.Equal(t, start.AddDate(0, 0, 3), daily[2].DueDate)

	weekly, err := BuildSchedule("proj-1", 300, start, PlanShape{Installments: 2, Interval: IntervalWeek})
	assert.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 7), weekly[0].DueDate)
	assert.Equal(t, start.AddDate(0, 0, 14), weekly[1].DueDate)
}
