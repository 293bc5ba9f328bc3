// Copyright 2024 Nokia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"
	"strings"
)

// ErrorType is the layer an rpc-error originated from (RFC 6241, error-type).
type ErrorType int

const (
	ErrorTypeApplication ErrorType = iota
	ErrorTypeProtocol
	ErrorTypeRPC
	ErrorTypeTransport
)

func (e ErrorType) String() string {
	switch e {
	case ErrorTypeApplication:
		return "application"
	case ErrorTypeProtocol:
		return "protocol"
	case ErrorTypeRPC:
		return "rpc"
	case ErrorTypeTransport:
		return "transport"
	}
	return fmt.Sprintf("ErrorType(%d)", int(e))
}

// ParseErrorType maps the error-type element content to an ErrorType.
// Unknown values map to ErrorTypeApplication.
func ParseErrorType(s string) ErrorType {
	switch strings.TrimSpace(s) {
	case "transport":
		return ErrorTypeTransport
	case "rpc":
		return ErrorTypeRPC
	case "protocol":
		return ErrorTypeProtocol
	}
	return ErrorTypeApplication
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// RPCError is a structured error reported by the remote side.
type RPCError struct {
	Type     ErrorType
	Tag      string
	Severity string
	Message  string
	AppTag   string
	Path     string
	// Info is the raw content of the error-info element.
	Info  string
	Cause error
}

// IsWarning reports whether the error has warning severity.
func (e *RPCError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

func (e *RPCError) Error() string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s error", e.Type)
	if e.Tag != "" {
		fmt.Fprintf(sb, " %q", e.Tag)
	}
	if e.Message != "" {
		fmt.Fprintf(sb, ": %s", e.Message)
	}
	if e.Path != "" {
		fmt.Fprintf(sb, " (path %s)", e.Path)
	}
	if e.Cause != nil {
		fmt.Fprintf(sb, ": %v", e.Cause)
	}
	return sb.String()
}

func (e *RPCError) Unwrap() error {
	return e.Cause
}

// RPCResult is the outcome of a remote call. A result can be successful and
// still carry errors of warning severity.
type RPCResult[T any] struct {
	Successful bool
	Value      T
	Errors     []*RPCError
}

// SuccessResult returns a successful result holding v.
func SuccessResult[T any](v T) *RPCResult[T] {
	return &RPCResult[T]{Successful: true, Value: v}
}

// FailedResult returns an unsuccessful result holding errs in the given order.
func FailedResult[T any](errs ...*RPCError) *RPCResult[T] {
	return &RPCResult[T]{Errors: errs}
}

// ErrorsString joins the error messages for logging.
func ErrorsString(errs []*RPCError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
