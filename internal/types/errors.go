// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

// ErrorKind classifies service errors so transport layers can map them to
// response codes without inspecting message text.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindValidation       ErrorKind = "validation"
	KindConflict         ErrorKind = "conflict"
	KindUpstream         ErrorKind = "upstream"
	KindInternal         ErrorKind = "internal"
)

// Error is a service error carrying a machine-readable kind and a message
// safe to return to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewPermissionDeniedError(msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: msg}
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewConflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NewUpstreamError wraps a failure from an external dependency. The cause is
// preserved for logging but never serialized to clients.
func NewUpstreamError(msg string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, cause: cause}
}

// KindOf extracts the kind from err, defaulting to KindInternal for errors
// that did not originate in a service.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
