package lead

import "context"

// CategoryChecker verifies category references on lead creation.
// Satisfied by category.Repository.
type CategoryChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
