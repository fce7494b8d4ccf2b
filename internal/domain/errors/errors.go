package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnknownServiceType  = errors.New("unknown service type")
	ErrEditInProgress      = errors.New("another order is already being edited")
	ErrNoActiveEdit        = errors.New("no active edit session")
	ErrActionInFlight      = errors.New("a save or delete request is already in flight")
	ErrConfirmationPending = errors.New("a confirmation is pending")
	ErrNoPendingAction     = errors.New("no action awaiting confirmation")
	ErrFieldNotEditable    = errors.New("field is not editable")
	ErrUnknownField        = errors.New("unknown order field")
	ErrInvalidFieldValue   = errors.New("invalid field value")
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
