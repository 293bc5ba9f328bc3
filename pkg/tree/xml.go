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

package tree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const (
	NcBase1_0 = "urn:ietf:params:xml:ns:netconf:base:1.0"

	ncPrefix = "nc"
)

// XMLOptions control the XML rendering of a Node tree.
type XMLOptions struct {
	// HonorNamespace if true, elements carry an xmlns attribute whenever their
	// namespace differs from the parent's.
	HonorNamespace bool
	// OperationWithNamespace if true, attributes in the netconf base namespace
	// (e.g. operation) are rendered as nc:<name> with the nc prefix declared.
	OperationWithNamespace bool
	// Indent if > 0 indents the document by the given number of spaces.
	Indent int
}

// ToXML renders n into a new etree.Document.
func ToXML(n *Node, opts *XMLOptions) *etree.Document {
	if opts == nil {
		opts = &XMLOptions{}
	}
	doc := etree.NewDocument()
	if n == nil {
		return doc
	}
	type frame struct {
		node   *Node
		parent *etree.Element
		ns     string
	}
	stack := []frame{{node: n, parent: &doc.Element}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		elem := f.parent.CreateElement(f.node.Name.Name)
		ns := f.ns
		if opts.HonorNamespace && f.node.Name.Namespace != "" && f.node.Name.Namespace != f.ns {
			elem.CreateAttr("xmlns", f.node.Name.Namespace)
			ns = f.node.Name.Namespace
		}
		for _, a := range f.node.Attrs {
			key := a.Name.Name
			if opts.OperationWithNamespace && a.Name.Namespace == NcBase1_0 && ns != NcBase1_0 {
				if elem.SelectAttr("xmlns:"+ncPrefix) == nil {
					elem.CreateAttr("xmlns:"+ncPrefix, NcBase1_0)
				}
				key = ncPrefix + ":" + key
			}
			elem.CreateAttr(key, a.Value)
		}
		if f.node.Leaf {
			if f.node.Value != "" {
				elem.SetText(f.node.Value)
			}
			continue
		}
		// children are pushed in reverse so they are created in order
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], parent: elem, ns: ns})
		}
	}
	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}
	return doc
}

// ToXMLString renders n as an XML string.
func ToXMLString(n *Node, opts *XMLOptions) (string, error) {
	return ToXML(n, opts).WriteToString()
}

// FromXML converts the element e and all its descendants into a Node tree.
// Elements without child elements become leaves holding their trimmed text.
// Namespace declarations are resolved into the QNames, they do not show up as attributes.
func FromXML(e *etree.Element) (*Node, error) {
	if e == nil {
		return nil, fmt.Errorf("nil xml element")
	}
	type frame struct {
		elem   *etree.Element
		parent *Node
		scope  map[string]string
	}
	var root *Node
	stack := []frame{{elem: e, scope: inheritedScope(e)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		scope := f.scope
		for _, a := range f.elem.Attr {
			switch {
			case a.Space == "" && a.Key == "xmlns":
				scope = withPrefix(scope, "", a.Value)
			case a.Space == "xmlns":
				scope = withPrefix(scope, a.Key, a.Value)
			}
		}
		ns, ok := scope[f.elem.Space]
		if !ok && f.elem.Space != "" {
			return nil, fmt.Errorf("undeclared namespace prefix %q on element %q", f.elem.Space, f.elem.Tag)
		}
		n := &Node{Name: NewQName(ns, f.elem.Tag)}
		for _, a := range f.elem.Attr {
			if a.Key == "xmlns" || a.Space == "xmlns" {
				continue
			}
			n.Attrs = append(n.Attrs, Attr{Name: NewQName(scope[a.Space], a.Key), Value: a.Value})
		}

		children := f.elem.ChildElements()
		if len(children) == 0 {
			n.Leaf = true
			n.Value = strings.TrimSpace(f.elem.Text())
		}
		if f.parent == nil {
			root = n
		} else {
			f.parent.Children = append(f.parent.Children, n)
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{elem: children[i], parent: n, scope: scope})
		}
	}
	return root, nil
}

// ParseXML parses the XML document s and returns its root element as Node tree.
func ParseXML(s string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("xml document has no root element")
	}
	return FromXML(doc.Root())
}

// inheritedScope collects the namespace declarations of the ancestors of e.
func inheritedScope(e *etree.Element) map[string]string {
	chain := []*etree.Element{}
	for p := e.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	scope := map[string]string{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, a := range chain[i].Attr {
			switch {
			case a.Space == "" && a.Key == "xmlns":
				scope[""] = a.Value
			case a.Space == "xmlns":
				scope[a.Key] = a.Value
			}
		}
	}
	return scope
}

// withPrefix returns a copy of scope with prefix bound to uri. The parent scope stays untouched.
func withPrefix(scope map[string]string, prefix, uri string) map[string]string {
	result := make(map[string]string, len(scope)+1)
	for k, v := range scope {
		result[k] = v
	}
	result[prefix] = uri
	return result
}
