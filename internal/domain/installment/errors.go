package installment

import "errors"

var (
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrValidation          = errors.New("invalid installment input")
	ErrAlreadyPaid         = errors.New("installment already paid")
	ErrAlreadyPending      = errors.New("payment claim already pending approval")
	ErrNoPendingClaim      = errors.New("no payment claim pending approval")
	ErrNotAssigned         = errors.New("actor is not assigned to the owning project")
	ErrConflict            = errors.New("installment was modified concurrently")
)
