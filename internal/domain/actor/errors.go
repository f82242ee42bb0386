package actor

import "errors"

var (
	ErrActorNotFound      = errors.New("actor not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactive           = errors.New("actor is deactivated")
)
