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

package netconf

import (
	"errors"
	"fmt"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

var (
	// ErrInvalidArgument is returned before any remote call for requests that can never succeed,
	// e.g. writes to a non configuration datastore or empty paths.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransactionClosed is returned for edits or commits on a transaction that is no longer open.
	ErrTransactionClosed = errors.New("transaction closed")
)

// RPCFailedError is returned when the remote side answered an rpc unsuccessfully.
// Errors holds the remote rpc-errors exactly as received.
type RPCFailedError struct {
	Device    string
	Operation tree.QName
	// Path is the edited path, empty for commit.
	Path   tree.Path
	Errors []*types.RPCError
}

func (e *RPCFailedError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s: %s rpc failed for path %s, errors: %s", e.Device, e.Operation.Name, e.Path, types.ErrorsString(e.Errors))
	}
	return fmt.Sprintf("%s: %s rpc failed, errors: %s", e.Device, e.Operation.Name, types.ErrorsString(e.Errors))
}

// TransportError wraps failures to get any answer for an rpc, including
// the caller's context ending while waiting for it.
type TransportError struct {
	Device    string
	Operation tree.QName
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s rpc transport failure: %v", e.Device, e.Operation.Name, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CommitFailedError is the single error type returned by WriteTx.Submit.
type CommitFailedError struct {
	TransactionID string
	Err           error
}

func (e *CommitFailedError) Error() string {
	return fmt.Sprintf("submit of transaction %s failed: %v", e.TransactionID, e.Err)
}

func (e *CommitFailedError) Unwrap() error {
	return e.Err
}
