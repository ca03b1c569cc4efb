// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSONResponse writes a success envelope with the given HTTP status.
func JSONResponse(w http.ResponseWriter, httpStatus int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

// JSONError writes an error envelope, deriving the HTTP status and error code
// from the error's kind rather than its message.
func JSONError(w http.ResponseWriter, err error) {
	kind := kindOf(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(kind))

	message := err.Error()
	if kind == types.KindInternal {
		// Internal error details stay in the logs.
		message = "internal server error"
	}

	_ = json.NewEncoder(w).Encode(Response{
		Status:  StatusError,
		Code:    string(kind),
		Message: message,
	})
}

// JSONErrorMessage writes an error envelope with an explicit kind and message.
func JSONErrorMessage(w http.ResponseWriter, kind types.ErrorKind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(kind))
	_ = json.NewEncoder(w).Encode(Response{
		Status:  StatusError,
		Code:    string(kind),
		Message: message,
	})
}

func kindOf(err error) types.ErrorKind {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return types.KindNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return types.KindConflict
	}
	return types.KindOf(err)
}

func httpStatus(kind types.ErrorKind) int {
	switch kind {
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindPermissionDenied:
		return http.StatusForbidden
	case types.KindValidation:
		return http.StatusBadRequest
	case types.KindConflict:
		return http.StatusConflict
	case types.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
