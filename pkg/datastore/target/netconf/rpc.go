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
	"context"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
	"github.com/iptecharch/netconf-writer/pkg/utils"
)

// RPCFuture resolves to the remote result of an rpc. It fails only if no
// result could be obtained at all.
type RPCFuture = utils.Future[*types.RPCResult[*tree.Node]]

// RPC invokes remote netconf operations. input is the operation element
// itself, e.g. <edit-config>...</edit-config>, and carries the name of the operation.
type RPC interface {
	InvokeRPC(ctx context.Context, name tree.QName, input *tree.Node) *RPCFuture
}

// translateResult maps a remote result into a result of type T. onSuccess
// extracts the value of a successful result, the errors are carried over
// unmodified in either case.
func translateResult[T any](res *types.RPCResult[*tree.Node], onSuccess func(*tree.Node) T) *types.RPCResult[T] {
	if res.Successful {
		return &types.RPCResult[T]{
			Successful: true,
			Value:      onSuccess(res.Value),
			Errors:     res.Errors,
		}
	}
	return &types.RPCResult[T]{Errors: copyRPCErrors(res.Errors)}
}

// copyRPCErrors repackages each error with all fields and the original order retained.
func copyRPCErrors(errs []*types.RPCError) []*types.RPCError {
	if errs == nil {
		return nil
	}
	result := make([]*types.RPCError, 0, len(errs))
	for _, e := range errs {
		result = append(result, &types.RPCError{
			Type:     e.Type,
			Tag:      e.Tag,
			Severity: e.Severity,
			Message:  e.Message,
			AppTag:   e.AppTag,
			Path:     e.Path,
			Info:     e.Info,
			Cause:    e.Cause,
		})
	}
	return result
}
