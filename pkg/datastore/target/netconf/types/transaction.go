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

import "fmt"

// TransactionState is the lifecycle state of a write transaction.
type TransactionState int32

const (
	TransactionStateOpen TransactionState = iota
	TransactionStateCommitRequested
	TransactionStateCommitted
	TransactionStateFailed
	TransactionStateCancelled
)

func (s TransactionState) String() string {
	switch s {
	case TransactionStateOpen:
		return "open"
	case TransactionStateCommitRequested:
		return "commit-requested"
	case TransactionStateCommitted:
		return "committed"
	case TransactionStateFailed:
		return "failed"
	case TransactionStateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("TransactionState(%d)", int32(s))
}

// CommitIssued reports whether a commit has been requested, whatever its outcome.
func (s TransactionState) CommitIssued() bool {
	switch s {
	case TransactionStateCommitRequested, TransactionStateCommitted, TransactionStateFailed:
		return true
	}
	return false
}

// TransactionStatus is the value a commit result resolves to.
type TransactionStatus int

const (
	TransactionStatusCommitted TransactionStatus = iota + 1
	TransactionStatusFailed
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusCommitted:
		return "committed"
	case TransactionStatusFailed:
		return "failed"
	}
	return fmt.Sprintf("TransactionStatus(%d)", int(s))
}
