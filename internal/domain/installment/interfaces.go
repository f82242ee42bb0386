package installment

import "context"

// ProjectReader resolves the actor assigned to an installment's owning
// project. Satisfied by project.Repository.
type ProjectReader interface {
	AssignedActor(ctx context.Context, projectID string) (string, error)
}

// EarningsCrediter records earnings for the assigned actor once an
// installment is approved as paid. Satisfied by wallet.Service.
type EarningsCrediter interface {
	Credit(ctx context.Context, actorID string, amount int64, reference string) error
}
