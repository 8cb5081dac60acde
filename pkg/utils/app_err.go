package utils

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotAuthenticated
	KindNotAuthorized
	KindNotFound
	KindConflict
	KindValidation
)

// AppError is a user-facing error carrying its kind. Errors are built per
// failure with contextual text instead of being shared singletons.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotAuthenticatedError(format string, a ...any) *AppError {
	return &AppError{Kind: KindNotAuthenticated, Message: fmt.Sprintf(format, a...)}
}

func NotAuthorizedError(format string, a ...any) *AppError {
	return &AppError{Kind: KindNotAuthorized, Message: fmt.Sprintf(format, a...)}
}

func NotFoundError(format string, a ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, a...)}
}

func ConflictError(format string, a ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, a...)}
}

func ValidationError(format string, a ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, a...)}
}

func InternalError(format string, a ...any) *AppError {
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf(format, a...)}
}

// KindOf returns the error's kind, or KindInternal for anything that is not
// an AppError (database failures and the like are never surfaced verbatim).
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
