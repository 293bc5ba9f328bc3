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

// ModifyAction is the netconf edit-config operation applied to an element.
type ModifyAction int

const (
	ModifyActionMerge ModifyAction = iota
	ModifyActionReplace
	ModifyActionDelete
	ModifyActionNone
	ModifyActionCreate
	ModifyActionRemove
)

var modifyActionNames = map[ModifyAction]string{
	ModifyActionMerge:   "merge",
	ModifyActionReplace: "replace",
	ModifyActionDelete:  "delete",
	ModifyActionNone:    "none",
	ModifyActionCreate:  "create",
	ModifyActionRemove:  "remove",
}

// String returns the wire encoding of the action.
func (m ModifyAction) String() string {
	if s, ok := modifyActionNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ModifyAction(%d)", int(m))
}

// TargetDatastore is the configuration datastore edit-config operates on.
type TargetDatastore int

const (
	TargetDatastoreRunning TargetDatastore = iota
	TargetDatastoreCandidate
)

func (t TargetDatastore) String() string {
	switch t {
	case TargetDatastoreRunning:
		return "running"
	case TargetDatastoreCandidate:
		return "candidate"
	}
	return fmt.Sprintf("TargetDatastore(%d)", int(t))
}

// TargetDatastoreFor returns the candidate datastore if candidateSupported, running otherwise.
func TargetDatastoreFor(candidateSupported bool) TargetDatastore {
	if candidateSupported {
		return TargetDatastoreCandidate
	}
	return TargetDatastoreRunning
}

// LogicalDatastoreType distinguishes configuration from operational data.
type LogicalDatastoreType int

const (
	LogicalDatastoreConfiguration LogicalDatastoreType = iota
	LogicalDatastoreOperational
)

func (l LogicalDatastoreType) String() string {
	switch l {
	case LogicalDatastoreConfiguration:
		return "configuration"
	case LogicalDatastoreOperational:
		return "operational"
	}
	return fmt.Sprintf("LogicalDatastoreType(%d)", int(l))
}
