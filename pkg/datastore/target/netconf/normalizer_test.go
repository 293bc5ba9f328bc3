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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"

	"github.com/iptecharch/netconf-writer/pkg/tree"
)

func TestNamespaceNormalizer(t *testing.T) {
	const ns = "urn:example:if"
	const other = "urn:example:other"
	n := NamespaceNormalizer{Namespace: ns}

	in := tree.NewPath(
		tree.ListEntryArg(qn("interface"), pred("name", "e1")),
		tree.NodeArg(tree.NewQName(other, "config")),
	)
	gotPath, err := n.ToWirePath(in)
	require.NoError(t, err)
	wantPath := tree.NewPath(
		tree.ListEntryArg(tree.NewQName(ns, "interface"), tree.Predicate{Key: tree.NewQName(ns, "name"), Value: "e1"}),
		tree.NodeArg(tree.NewQName(other, "config")),
	)
	if diff := cmp.Diff(wantPath, gotPath); diff != "" {
		t.Errorf("ToWirePath() mismatch (-want +got):\n%s", diff)
	}
	// the input is left untouched
	require.Equal(t, "", in[0].Name.Namespace)
	require.Equal(t, "", in[0].Predicates[0].Key.Namespace)

	data := tree.NewContainer(qn("config"),
		tree.NewLeaf(qn("mtu"), "9000"),
		tree.NewContainer(tree.NewQName(other, "ext"), tree.NewLeaf(qn("flag"), "true")),
	)
	gotData, err := n.ToWireData(in, data)
	require.NoError(t, err)
	wantData := tree.NewContainer(tree.NewQName(ns, "config"),
		tree.NewLeaf(tree.NewQName(ns, "mtu"), "9000"),
		tree.NewContainer(tree.NewQName(other, "ext"), tree.NewLeaf(tree.NewQName(ns, "flag"), "true")),
	)
	if diff := pretty.Compare(wantData, gotData); diff != "" {
		t.Errorf("ToWireData() mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "", data.Name.Namespace)

	nilData, err := n.ToWireData(in, nil)
	require.NoError(t, err)
	require.Nil(t, nilData)
}

func TestIdentityNormalizer(t *testing.T) {
	p := testPath()
	got, err := IdentityNormalizer{}.ToWirePath(p)
	require.NoError(t, err)
	require.Equal(t, p, got)

	d := testData()
	gotData, err := IdentityNormalizer{}.ToWireData(p, d)
	require.NoError(t, err)
	require.Same(t, d, gotData)
}
