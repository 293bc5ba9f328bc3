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

import "github.com/iptecharch/netconf-writer/pkg/tree"

// Normalizer converts caller paths and data into their wire representation.
type Normalizer interface {
	ToWirePath(p tree.Path) (tree.Path, error)
	// ToWireData converts data stored at p. A nil data yields a nil result.
	ToWireData(p tree.Path, data *tree.Node) (*tree.Node, error)
}

// IdentityNormalizer passes paths and data through unchanged.
type IdentityNormalizer struct{}

func (IdentityNormalizer) ToWirePath(p tree.Path) (tree.Path, error) {
	return p, nil
}

func (IdentityNormalizer) ToWireData(_ tree.Path, data *tree.Node) (*tree.Node, error) {
	return data, nil
}

// NamespaceNormalizer places every unqualified element, key and data
// name into Namespace. Names that already carry a namespace are kept.
type NamespaceNormalizer struct {
	Namespace string
}

func (n NamespaceNormalizer) ToWirePath(p tree.Path) (tree.Path, error) {
	result := p.Copy()
	for i := range result {
		result[i].Name = result[i].Name.WithDefaultNamespace(n.Namespace)
		for j := range result[i].Predicates {
			result[i].Predicates[j].Key = result[i].Predicates[j].Key.WithDefaultNamespace(n.Namespace)
		}
	}
	return result, nil
}

func (n NamespaceNormalizer) ToWireData(_ tree.Path, data *tree.Node) (*tree.Node, error) {
	if data == nil {
		return nil, nil
	}
	result := data.Copy()
	_ = result.Walk(func(x *tree.Node) error {
		x.Name = x.Name.WithDefaultNamespace(n.Namespace)
		return nil
	})
	return result, nil
}
