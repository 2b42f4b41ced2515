// Copyright 2026 The Bridge-DB Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dbbridgeerr gives every error kind the migration core can raise
// (see spec §7) a concrete Go type, so callers can branch on Kind() instead
// of matching error strings.
package dbbridgeerr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	UnsupportedEngine  Kind = "UNSUPPORTED_ENGINE"
	NoSuchConnection   Kind = "NO_SUCH_CONNECTION"
	ConnectProbeFailed Kind = "CONNECT_PROBE_FAILED"
	QueryFailed        Kind = "QUERY_FAILED"
	JobExists          Kind = "JOB_EXISTS"
	CancelRequested    Kind = "CANCEL_REQUESTED"
	UnmappedType       Kind = "UNMAPPED_TYPE"
)

// Error is the interface every typed error in this package satisfies.
type Error interface {
	error
	ErrKind() Kind
	Unwrap() error
}

type bridgeError struct {
	kind  Kind
	msg   string
	cause error
}

var _ Error = (*bridgeError)(nil)

func (e *bridgeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *bridgeError) ErrKind() Kind { return e.kind }

func (e *bridgeError) Unwrap() error { return e.cause }

func new(kind Kind, cause error, format string, args ...any) *bridgeError {
	return &bridgeError{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

// NewUnsupportedEngine reports an engine_kind outside the fixed set.
func NewUnsupportedEngine(kind string) error {
	return new(UnsupportedEngine, nil, "unsupported engine kind %q", kind)
}

// NewNoSuchConnection reports an operation against an unregistered connection id.
func NewNoSuchConnection(connID string) error {
	return new(NoSuchConnection, nil, "no such connection %q", connID)
}

// NewConnectProbeFailed reports a failed connectivity probe from Connector.connect.
func NewConnectProbeFailed(cause error) error {
	return new(ConnectProbeFailed, cause, "connect probe failed")
}

// NewQueryFailed wraps an engine driver error from list/inspect/row-count/DDL/read/write.
func NewQueryFailed(cause error) error {
	return new(QueryFailed, cause, "query failed")
}

// NewJobExists reports a start_migration call naming an already-live job id.
func NewJobExists(jobID string) error {
	return new(JobExists, nil, "job %q already exists", jobID)
}

// NewCancelRequested is the pseudo-error carried in a terminal cancelled JobReport.
func NewCancelRequested() error {
	return new(CancelRequested, nil, "migration cancelled")
}

// NewUnmappedType reports a non-fatal map_type fallback for an unrecognized native type.
func NewUnmappedType(nativeType string, source, target string) error {
	return new(UnmappedType, nil, "no type mapping for %q from %s to %s", nativeType, source, target)
}

// KindOf extracts the Kind of err if it (or something it wraps) is a
// dbbridgeerr.Error, and reports whether one was found.
func KindOf(err error) (Kind, bool) {
	var be Error
	if errors.As(err, &be) {
		return be.ErrKind(), true
	}
	return "", false
}
