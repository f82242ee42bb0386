package request

import "errors"

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrValidation        = errors.New("invalid request input")
	ErrSelfRequest       = errors.New("sender and recipient must be distinct actors")
	ErrNotSender         = errors.New("actor did not create this request")
	ErrNotRecipient      = errors.New("actor is not the recipient of this request")
	ErrAlreadyResponded  = errors.New("request already responded")
	ErrIllegalTransition = errors.New("illegal request status transition")
	ErrConflict          = errors.New("request was modified concurrently")
)
