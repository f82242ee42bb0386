package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrValidation        = errors.New("invalid lead input")
	ErrPhoneExists       = errors.New("lead with this phone already exists")
	ErrNotOwner          = errors.New("actor does not own this lead")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrTerminalState     = errors.New("lead is in a terminal status")
	ErrConflict          = errors.New("lead was modified concurrently")
	ErrIntegrity         = errors.New("lead/project state is inconsistent")
)
