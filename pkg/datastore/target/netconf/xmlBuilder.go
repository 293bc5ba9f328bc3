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
	"fmt"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

const (
	rollbackOnErrorOption = "rollback-on-error"
)

var (
	qnEditConfig       = tree.NewQName(tree.NcBase1_0, "edit-config")
	qnCommit           = tree.NewQName(tree.NcBase1_0, "commit")
	qnDiscardChanges   = tree.NewQName(tree.NcBase1_0, "discard-changes")
	qnTarget           = tree.NewQName(tree.NcBase1_0, "target")
	qnDefaultOperation = tree.NewQName(tree.NcBase1_0, "default-operation")
	qnErrorOption      = tree.NewQName(tree.NcBase1_0, "error-option")
	qnConfig           = tree.NewQName(tree.NcBase1_0, "config")
	qnOperation        = tree.NewQName(tree.NcBase1_0, "operation")
	qnCandidate        = tree.NewQName(tree.NcBase1_0, "candidate")
	qnRunning          = tree.NewQName(tree.NcBase1_0, "running")
)

// BuildEditStructure turns path into the nested <config> content of an edit-config request.
//
// The element addressed by the last path argument carries the operation attribute,
// if operation is set, and the top level children of overlay, if overlay is set.
// Overlay children named like one of the list keys of that element are skipped,
// the key leaves always come from the path predicates.
// All the ancestors are built from the remaining path arguments, deepest first,
// each holding its own key leaves and exactly one child element.
func BuildEditStructure(path tree.Path, operation *types.ModifyAction, overlay *tree.Node) (*tree.Node, error) {
	last, ok := path.Last()
	if !ok {
		return nil, fmt.Errorf("%w: instance identifier with empty path %s", ErrInvalidArgument, path)
	}

	previous := deepestEditElement(last, operation, overlay)

	// fold the remaining path arguments from the deepest up to the root
	for i := len(path) - 2; i >= 0; i-- {
		elem := newPathArgumentNode(path[i])
		elem.AddChild(previous)
		previous = elem
	}
	return tree.NewContainer(qnConfig, previous), nil
}

func deepestEditElement(pa tree.PathArgument, operation *types.ModifyAction, overlay *tree.Node) *tree.Node {
	elem := newPathArgumentNode(pa)
	if operation != nil {
		elem.SetAttr(qnOperation, operation.String())
	}
	if overlay != nil {
		for _, c := range overlay.Children {
			if pa.HasPredicate(c.Name) {
				continue
			}
			elem.AddChild(c.Copy())
		}
	}
	return elem
}

// newPathArgumentNode creates the element for pa with one key leaf per predicate.
func newPathArgumentNode(pa tree.PathArgument) *tree.Node {
	elem := tree.NewContainer(pa.Name)
	for _, p := range pa.Predicates {
		elem.AddChild(tree.NewLeaf(p.Key, p.Value))
	}
	return elem
}

// BuildEditConfigRequest wraps the edit structure into an <edit-config> request.
// The children are, in this order: target, default-operation (if set),
// error-option (if rollbackOnError) and the edit structure.
func BuildEditConfigRequest(editStructure *tree.Node, defaultOperation *types.ModifyAction, target types.TargetDatastore, rollbackOnError bool) *tree.Node {
	req := tree.NewContainer(qnEditConfig)

	req.AddChild(tree.NewContainer(qnTarget, targetDatastoreNode(target)))

	if defaultOperation != nil {
		req.AddChild(tree.NewLeaf(qnDefaultOperation, defaultOperation.String()))
	}

	if rollbackOnError {
		req.AddChild(tree.NewLeaf(qnErrorOption, rollbackOnErrorOption))
	}

	req.AddChild(editStructure)
	return req
}

// TargetNode returns the empty <candidate/> element if candidateSupported, <running/> otherwise.
func TargetNode(candidateSupported bool) *tree.Node {
	return targetDatastoreNode(types.TargetDatastoreFor(candidateSupported))
}

func targetDatastoreNode(target types.TargetDatastore) *tree.Node {
	if target == types.TargetDatastoreCandidate {
		return tree.NewContainer(qnCandidate)
	}
	return tree.NewContainer(qnRunning)
}

// CommitRequest returns the input of the commit rpc, an empty <commit/> element.
func CommitRequest() *tree.Node {
	return tree.NewContainer(qnCommit)
}

// DiscardChangesRequest returns the input of the discard-changes rpc.
func DiscardChangesRequest() *tree.Node {
	return tree.NewContainer(qnDiscardChanges)
}
