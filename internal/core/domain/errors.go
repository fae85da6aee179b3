package domain

import "errors"

var (
	// ErrNotAuthenticated indicates a request with no usable session token.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials indicates a rejected login or a bad auth payload.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCustomerNotFound indicates the account has no customer record yet.
	// This is a legitimate, recoverable state, not a transport failure.
	ErrCustomerNotFound = errors.New("customer record not found")

	// ErrRecordNotFound indicates a requested upstream record does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrSelfDelete indicates an administrator tried to delete their own
	// account; rejected locally before any upstream call.
	ErrSelfDelete = errors.New("cannot delete your own account")

	// ErrUpstream indicates the billing API rejected a call or was
	// unreachable. The operation is abandoned; there is no automatic retry.
	ErrUpstream = errors.New("billing api unavailable")
)
