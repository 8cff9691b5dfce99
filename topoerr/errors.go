// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package topoerr defines the errors returned by the topology packages.
//
// Every error carries one of the sentinel kinds below; test for a kind with
// errors.Is. No operation recovers from or retries on these errors.
package topoerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.
var (
	// ErrUnsupportedGeometry is returned when the geometry kind does not
	// fit the requested operation, e.g. editing the shell of a line.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrBadRequest is returned for structurally invalid requests.
	ErrBadRequest = errors.New("bad request")

	// ErrReferenceNotFound is returned when a referenced id has no
	// matching candidate feature.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrNotImplemented marks operations that are intentionally not
	// supported. Callers are expected to fall back to a full recompute.
	ErrNotImplemented = errors.New("operation not supported")

	// ErrInvalidRequest is returned when a required Operation tag is missing.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingAttribute is returned when a feature's backing state is
	// malformed, e.g. an identification block without a local id.
	ErrMissingAttribute = errors.New("missing attribute")
)

// Error is an error of a given kind with a detail message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Msg
}

// Unwrap returns the error kind so errors.Is matches the sentinels.
func (e *Error) Unwrap() error { return e.Kind }

// Newf returns an error of the given kind.
func Newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedGeometry returns an ErrUnsupportedGeometry error.
func UnsupportedGeometry(format string, args ...any) error {
	return Newf(ErrUnsupportedGeometry, format, args...)
}

// BadRequest returns an ErrBadRequest error.
func BadRequest(format string, args ...any) error {
	return Newf(ErrBadRequest, format, args...)
}

// ReferenceNotFound returns an ErrReferenceNotFound error for the given id.
func ReferenceNotFound(id string) error {
	return Newf(ErrReferenceNotFound, "no feature with local id %q", id)
}

// NotImplemented returns an ErrNotImplemented error.
func NotImplemented(format string, args ...any) error {
	return Newf(ErrNotImplemented, format, args...)
}

// InvalidRequest returns an ErrInvalidRequest error.
func InvalidRequest(format string, args ...any) error {
	return Newf(ErrInvalidRequest, format, args...)
}

// MissingAttribute returns an ErrMissingAttribute error.
func MissingAttribute(format string, args ...any) error {
	return Newf(ErrMissingAttribute, format, args...)
}

// IsUnsupported reports whether err means "operation not supported".
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// KindOf returns the sentinel kind carried by err, or nil when err is not
// one of ours.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrUnsupportedGeometry,
		ErrBadRequest,
		ErrReferenceNotFound,
		ErrNotImplemented,
		ErrInvalidRequest,
		ErrMissingAttribute,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
