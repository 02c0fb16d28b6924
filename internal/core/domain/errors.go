package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP error
// handler. Repositories translate driver-level failures (no documents,
// duplicate key) into these before they leave the infrastructure layer.
var (
	ErrValidation = errors.New("invalid input")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user is already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee with same email address already exists")
)
