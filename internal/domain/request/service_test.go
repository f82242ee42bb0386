package request

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/status"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:request_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&actor.Actor{}, &Request{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, actor.NewRepository(db), event.NewBus()), db
}

func seedActor(t *testing.T, db *gorm.DB, id, name string, role actor.Role) {
	t.Helper()
	a := actor.Actor{
		ID:           id,
		Email:        id + "@agencydesk.io",
		PasswordHash: "x",
		Name:         name,
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed actor %s: %v", id, err)
	}
}

func seedPMAndClient(t *testing.T, db *gorm.DB) {
	seedActor(t, db, "pm-1", "Project Manager", actor.RolePM)
	seedActor(t, db, "client-9", "Client Nine", actor.RoleClient)
}

func TestCreate_Pending(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Budget sign-off",
		Description: "Need approval for the Q3 budget",
		Type:        TypeApproval,
		Priority:    PriorityHigh,
		Recipient:   "client-9",
	}, "pm-1")

	assert.NoError(t, err)
	assert.Equal(t, status.RequestPending, r.Status)
	assert.Equal(t, "pm-1", r.RequestedBy)
	assert.Equal(t, "Project Manager", r.RequestedByName)
	assert.Equal(t, "client-9", r.Recipient)
	assert.Equal(t, "Client Nine", r.RecipientName)
	assert.False(t, r.IsResponded())
}

func TestCreate_DefaultPriority(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Check",
		Description: "Please confirm",
		Type:        TypeConfirmation,
		Recipient:   "client-9",
	}, "pm-1")

	assert.NoError(t, err)
	assert.Equal(t, PriorityNormal, r.Priority)
}

func TestCreate_SelfRequest(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	_, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Note to self",
		Description: "x",
		Type:        TypeFeedback,
		Recipient:   "pm-1",
	}, "pm-1")
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestCreate_UnknownRecipient(t *testing.T) {
	svc, db := setupService(t)
	seedActor(t, db, "pm-1", "Project Manager", actor.RolePM)

	_, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Lost",
		Description: "x",
		Type:        TypeFeedback,
		Recipient:   "ghost",
	}, "pm-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_BlankTitle(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	_, err := svc.Create(context.Background(), CreateRequest{
		Title:       "   ",
		Description: "x",
		Type:        TypeFeedback,
		Recipient:   "client-9",
	}, "pm-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDraft_SendPromotes(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Draft idea",
		Description: "Still thinking",
		Type:        TypeFeedback,
		Recipient:   "client-9",
		SaveAsDraft: true,
	}, "pm-1")
	assert.NoError(t, err)
	assert.Equal(t, status.RequestDraft, r.Status)

	// drafts never show up in the recipient's inbox
	incoming, err := svc.ListIncoming(context.Background(), "client-9", ListFilter{})
	assert.NoError(t, err)
	assert.Empty(t, incoming)

	sent, err := svc.Send(context.Background(), r.ID, "pm-1")
	assert.NoError(t, err)
	assert.Equal(t, status.RequestPending, sent.Status)

	incoming, err = svc.ListIncoming(context.Background(), "client-9", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, incoming, 1)
}

func TestSend_OnlySender(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Draft", Description: "x", Type: TypeFeedback,
		Recipient: "client-9", SaveAsDraft: true,
	}, "pm-1")

	_, err := svc.Send(context.Background(), r.ID, "client-9")
	assert.ErrorIs(t, err, ErrNotSender)
}

func TestSend_AlreadyPending(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Sent", Description: "x", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")

	_, err := svc.Send(context.Background(), r.ID, "pm-1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestRespond_Reject(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Scope change", Description: "Add a page", Type: TypeApproval, Recipient: "client-9",
	}, "pm-1")

	got, err := svc.Respond(context.Background(), r.ID, "client-9", ResponseReject, "Out of budget")
	assert.NoError(t, err)
	assert.Equal(t, status.RequestResponded, got.Status)
	assert.NotNil(t, got.ResponseType)
	assert.Equal(t, ResponseReject, *got.ResponseType)
	assert.Equal(t, "Out of budget", got.ResponseMessage)
	assert.Equal(t, "client-9", got.RespondedBy)
	assert.NotNil(t, got.RespondedAt)
}

func TestRespond_AtMostOnce(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Scope change", Description: "Add a page", Type: TypeApproval, Recipient: "client-9",
	}, "pm-1")

	_, err := svc.Respond(context.Background(), r.ID, "client-9", ResponseReject, "Out of budget")
	assert.NoError(t, err)

	// second verdict is rejected and never overwrites the first
	_, err = svc.Respond(context.Background(), r.ID, "client-9", ResponseApprove, "")
	assert.ErrorIs(t, err, ErrAlreadyResponded)

	got, err := svc.GetByID(context.Background(), r.ID)
	assert.NoError(t, err)
	assert.Equal(t, ResponseReject, *got.ResponseType)
	assert.Equal(t, "Out of budget", got.ResponseMessage)
}

func TestRespond_OnlyRecipient(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)
	seedActor(t, db, "employee-3", "Employee Three", actor.RoleEmployee)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Review", Description: "x", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")

	_, err := svc.Respond(context.Background(), r.ID, "employee-3", ResponseApprove, "")
	assert.ErrorIs(t, err, ErrNotRecipient)
}

func TestRespond_NonApproveNeedsMessage(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Review", Description: "x", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")

	_, err := svc.Respond(context.Background(), r.ID, "client-9", ResponseRequestChanges, "  ")
	assert.ErrorIs(t, err, ErrValidation)

	// approve without a message is fine
	_, err = svc.Respond(context.Background(), r.ID, "client-9", ResponseApprove, "")
	assert.NoError(t, err)
}

func TestRespond_Draft(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	r, _ := svc.Create(context.Background(), CreateRequest{
		Title: "Draft", Description: "x", Type: TypeFeedback,
		Recipient: "client-9", SaveAsDraft: true,
	}, "pm-1")

	_, err := svc.Respond(context.Background(), r.ID, "client-9", ResponseApprove, "")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestListOutgoing_IncludesDrafts(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	svc.Create(context.Background(), CreateRequest{
		Title: "Draft", Description: "x", Type: TypeFeedback,
		Recipient: "client-9", SaveAsDraft: true,
	}, "pm-1")
	svc.Create(context.Background(), CreateRequest{
		Title: "Live", Description: "x", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")

	outgoing, err := svc.ListOutgoing(context.Background(), "pm-1", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, outgoing, 2)

	pending, err := svc.ListOutgoing(context.Background(), "pm-1", ListFilter{Status: string(status.RequestPending)})
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Live", pending[0].Title)
}

func TestList_Search(t *testing.T) {
	svc, db := setupService(t)
	seedPMAndClient(t, db)

	svc.Create(context.Background(), CreateRequest{
		Title: "Invoice question", Description: "About March", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")
	svc.Create(context.Background(), CreateRequest{
		Title: "Design review", Description: "Homepage", Type: TypeFeedback, Recipient: "client-9",
	}, "pm-1")

	found, err := svc.ListIncoming(context.Background(), "client-9", ListFilter{Search: "invoice"})
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Invoice question", found[0].Title)
}
