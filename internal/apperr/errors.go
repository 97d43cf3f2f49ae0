// Package apperr defines the sentinel errors shared between services and
// controllers. Services wrap these with %w; controllers match with errors.Is
// and map them to HTTP statuses.
package apperr

import "errors"

var (
	// ErrValidation marks client-correctable input problems found past the
	// binding layer (for example an unparseable purchase date).
	ErrValidation = errors.New("invalid input")

	// ErrEmailTaken means a user with the requested email already exists.
	// The authoritative source is the unique index on users.email; the
	// pre-insert lookup is only a fast path.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every token failure: malformed, bad signature,
	// expired, wrong signing method.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrUserNotFound  = errors.New("user not found")
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNotOwner means the asset exists but belongs to another user.
	ErrNotOwner = errors.New("user not authorized")
)
