package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when a record exists but is owned by a different
// account, so callers cannot distinguish the two cases.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is not in a state that allows the
// requested operation (e.g. re-reviewing a decided application).
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates the caller is authenticated but not allowed to
// perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
