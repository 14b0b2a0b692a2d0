package services

import "errors"

// Domain errors. Handlers map these to HTTP statuses; the message strings are
// part of the API surface.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrBadCreds      = errors.New("incorrect email or password")
	ErrUserNotFound  = errors.New("user not found")
	ErrAdminExists   = errors.New("admin already exists")
	ErrTokenInvalid  = errors.New("invalid or expired token")

	ErrClassificationNotFound = errors.New("classification not found")
	ErrNotWorking             = errors.New("only working items can be donated")

	ErrItemNotFound     = errors.New("item not found")
	ErrItemUnavailable  = errors.New("item not found or not available")
	ErrSelfPurchase     = errors.New("cannot purchase your own item")
	ErrPurchaseNotFound = errors.New("purchase not found")
)
