package shell

import "errors"

var (
	// ErrAccountNotFound is returned by command handlers when the targeted account stream is empty.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when opening an account whose stream already has events.
	ErrAccountAlreadyExists = errors.New("account already exists")
)
