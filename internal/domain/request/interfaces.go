package request

import (
	"context"

	"agencydesk/internal/domain/actor"
)

// ActorReader resolves actor profiles for recipient validation and
// denormalized names. Satisfied by actor.Repository.
type ActorReader interface {
	GetByID(ctx context.Context, id string) (*actor.Actor, error)
}
