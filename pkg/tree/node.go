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

// Attr is a qualified attribute of a Node.
type Attr struct {
	Name  QName
	Value string
}

// Node is an element of a configuration or request tree. A Node is either
// a leaf carrying a scalar Value, or a container holding ordered Children.
// A container without children is an empty element, e.g. <candidate/>.
type Node struct {
	Name     QName
	Attrs    []Attr
	Leaf     bool
	Value    string
	Children []*Node
}

// NewLeaf returns a leaf node holding value.
func NewLeaf(name QName, value string) *Node {
	return &Node{Name: name, Leaf: true, Value: value}
}

// NewContainer returns a container node holding children in the given order.
func NewContainer(name QName, children ...*Node) *Node {
	n := &Node{Name: name}
	if len(children) > 0 {
		n.Children = children
	}
	return n
}

// AddChild appends c to the children of n.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// SetAttr sets the attribute name to value, overwriting an existing one.
func (n *Node) SetAttr(name QName, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// GetAttr returns the value of the attribute name.
func (n *Node) GetAttr(name QName) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child with the given name.
func (n *Node) Child(name QName) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Depth returns the container nesting depth of the tree rooted at n.
// Leaves do not count as a level.
func (n *Node) Depth() int {
	if n == nil || n.Leaf {
		return 0
	}
	type level struct {
		node  *Node
		depth int
	}
	maxDepth := 0
	stack := []level{{node: n, depth: 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.depth > maxDepth {
			maxDepth = l.depth
		}
		for _, c := range l.node.Children {
			if !c.Leaf {
				stack = append(stack, level{node: c, depth: l.depth + 1})
			}
		}
	}
	return maxDepth
}

// Copy returns a deep copy of n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	root := n.shallowCopy()
	type pair struct {
		src, dst *Node
	}
	stack := []pair{{src: n, dst: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.Children) == 0 {
			continue
		}
		p.dst.Children = make([]*Node, 0, len(p.src.Children))
		for _, c := range p.src.Children {
			cc := c.shallowCopy()
			p.dst.Children = append(p.dst.Children, cc)
			stack = append(stack, pair{src: c, dst: cc})
		}
	}
	return root
}

func (n *Node) shallowCopy() *Node {
	c := &Node{Name: n.Name, Leaf: n.Leaf, Value: n.Value}
	if len(n.Attrs) > 0 {
		c.Attrs = make([]Attr, len(n.Attrs))
		copy(c.Attrs, n.Attrs)
	}
	return c
}

// Walk calls fn for n and all its descendants in document order.
// Walking stops at the first error returned by fn.
func (n *Node) Walk(fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(cur); err != nil {
			return err
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return nil
}
