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
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

func qn(name string) tree.QName {
	return tree.LocalName(name)
}

func pred(key, value string) tree.Predicate {
	return tree.Predicate{Key: qn(key), Value: value}
}

func xmlString(t *testing.T, n *tree.Node) string {
	t.Helper()
	s, err := tree.ToXMLString(n, nil)
	require.NoError(t, err)
	return s
}

func TestBuildEditStructure(t *testing.T) {
	tests := []struct {
		name      string
		path      tree.Path
		operation *types.ModifyAction
		overlay   *tree.Node
		want      string
		wantErr   error
	}{
		{
			name:      "replace list entry, predicate wins over overlay",
			path:      tree.NewPath(tree.NodeArg(qn("a")), tree.ListEntryArg(qn("b"), pred("k", "v"))),
			operation: pointer.To(types.ModifyActionReplace),
			overlay: tree.NewContainer(qn("b"),
				tree.NewLeaf(qn("x"), "1"),
				tree.NewLeaf(qn("k"), "w"),
			),
			want: `<config><a><b operation="replace"><k>v</k><x>1</x></b></a></config>`,
		},
		{
			name:      "delete single argument",
			path:      tree.NewPath(tree.NodeArg(qn("a"))),
			operation: pointer.To(types.ModifyActionDelete),
			want:      `<config><a operation="delete"/></config>`,
		},
		{
			name: "merge carries no operation attribute",
			path: tree.NewPath(tree.NodeArg(qn("system")), tree.NodeArg(qn("name"))),
			overlay: tree.NewContainer(qn("name"),
				tree.NewLeaf(qn("host-name"), "leaf1"),
			),
			want: `<config><system><name><host-name>leaf1</host-name></name></system></config>`,
		},
		{
			name: "ancestors keep their own key leaves",
			path: tree.NewPath(
				tree.ListEntryArg(qn("interface"), pred("name", "ethernet-1/1")),
				tree.ListEntryArg(qn("subinterface"), pred("index", "0")),
				tree.NodeArg(qn("admin-state")),
			),
			operation: pointer.To(types.ModifyActionRemove),
			want: `<config><interface><name>ethernet-1/1</name><subinterface><index>0</index>` +
				`<admin-state operation="remove"/></subinterface></interface></config>`,
		},
		{
			name:      "multiple keys keep their order",
			path:      tree.NewPath(tree.ListEntryArg(qn("route"), pred("prefix", "10.0.0.0/8"), pred("vrf", "red"))),
			operation: pointer.To(types.ModifyActionCreate),
			overlay: tree.NewContainer(qn("route"),
				tree.NewLeaf(qn("vrf"), "blue"),
				tree.NewContainer(qn("next-hop"), tree.NewLeaf(qn("address"), "1.1.1.1")),
			),
			want: `<config><route operation="create"><prefix>10.0.0.0/8</prefix><vrf>red</vrf>` +
				`<next-hop><address>1.1.1.1</address></next-hop></route></config>`,
		},
		{
			name:    "empty path",
			path:    tree.Path{},
			wantErr: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildEditStructure(tt.path, tt.operation, tt.overlay)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, xmlString(t, got)); diff != "" {
				t.Errorf("BuildEditStructure() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildEditStructure_operationNamespace(t *testing.T) {
	got, err := BuildEditStructure(tree.NewPath(tree.NodeArg(qn("a"))), pointer.To(types.ModifyActionDelete), nil)
	require.NoError(t, err)

	v, ok := got.Children[0].GetAttr(tree.NewQName(tree.NcBase1_0, "operation"))
	require.True(t, ok)
	require.Equal(t, "delete", v)

	s, err := tree.ToXMLString(got, &tree.XMLOptions{OperationWithNamespace: true})
	require.NoError(t, err)
	require.Equal(t, `<config><a xmlns:nc="`+tree.NcBase1_0+`" nc:operation="delete"/></config>`, s)
}

func TestBuildEditStructure_overlayNotShared(t *testing.T) {
	overlay := tree.NewContainer(qn("a"), tree.NewContainer(qn("c"), tree.NewLeaf(qn("d"), "1")))
	got, err := BuildEditStructure(tree.NewPath(tree.NodeArg(qn("a"))), nil, overlay)
	require.NoError(t, err)

	got.Children[0].Children[0].Children[0].Value = "2"
	require.Equal(t, "1", overlay.Children[0].Children[0].Value)
}

func TestBuildEditStructure_depth(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64, 10000} {
		t.Run(fmt.Sprintf("%d arguments", n), func(t *testing.T) {
			path := make(tree.Path, 0, n)
			for i := 0; i < n; i++ {
				if i%2 == 0 {
					path = append(path, tree.NodeArg(qn(fmt.Sprintf("c%d", i))))
					continue
				}
				path = append(path, tree.ListEntryArg(qn(fmt.Sprintf("l%d", i)), pred("key", fmt.Sprint(i))))
			}
			got, err := BuildEditStructure(path, pointer.To(types.ModifyActionReplace), nil)
			require.NoError(t, err)
			require.Equal(t, n+1, got.Depth())
		})
	}
}

func TestBuildEditConfigRequest(t *testing.T) {
	edit := tree.NewContainer(qnConfig, tree.NewContainer(qn("a")))
	tests := []struct {
		name             string
		defaultOperation *types.ModifyAction
		target           types.TargetDatastore
		rollbackOnError  bool
		want             string
	}{
		{
			name:             "candidate, none, rollback",
			defaultOperation: pointer.To(types.ModifyActionNone),
			target:           types.TargetDatastoreCandidate,
			rollbackOnError:  true,
			want: `<edit-config><target><candidate/></target><default-operation>none</default-operation>` +
				`<error-option>rollback-on-error</error-option><config><a/></config></edit-config>`,
		},
		{
			name:   "running, no default operation, no rollback",
			target: types.TargetDatastoreRunning,
			want:   `<edit-config><target><running/></target><config><a/></config></edit-config>`,
		},
		{
			name:            "candidate, rollback only",
			target:          types.TargetDatastoreCandidate,
			rollbackOnError: true,
			want: `<edit-config><target><candidate/></target>` +
				`<error-option>rollback-on-error</error-option><config><a/></config></edit-config>`,
		},
		{
			name:             "running, merge default operation",
			defaultOperation: pointer.To(types.ModifyActionMerge),
			target:           types.TargetDatastoreRunning,
			want: `<edit-config><target><running/></target><default-operation>merge</default-operation>` +
				`<config><a/></config></edit-config>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEditConfigRequest(edit, tt.defaultOperation, tt.target, tt.rollbackOnError)
			require.Equal(t, qnEditConfig, got.Name)
			if diff := cmp.Diff(tt.want, xmlString(t, got)); diff != "" {
				t.Errorf("BuildEditConfigRequest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTargetNode(t *testing.T) {
	require.Equal(t, "<candidate/>", xmlString(t, TargetNode(true)))
	require.Equal(t, "<running/>", xmlString(t, TargetNode(false)))
	require.Equal(t, "<commit/>", xmlString(t, CommitRequest()))
	require.Equal(t, "<discard-changes/>", xmlString(t, DiscardChangesRequest()))
}
