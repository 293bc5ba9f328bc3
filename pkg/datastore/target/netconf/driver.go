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

import "github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"

type Driver interface {
	// RPC sends content, a single netconf operation element, wrapped in an <rpc> and
	// returns the <rpc-reply>. A reply carrying rpc-errors is not an error.
	RPC(content string) (*types.NetconfResponse, error)
	// Close the connection to the device
	Close() error
	// IsAlive returns true if the underlying transport driver is still open
	IsAlive() bool
}
