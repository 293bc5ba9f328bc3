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
)

// Predicate is a single key leaf identifying a list entry.
type Predicate struct {
	Key   QName
	Value string
}

// PathArgument is one step of a Path. A PathArgument that carries
// predicates addresses a single list entry.
type PathArgument struct {
	Name       QName
	Predicates []Predicate
}

// NodeArg returns a PathArgument addressing a container or leaf.
func NodeArg(name QName) PathArgument {
	return PathArgument{Name: name}
}

// ListEntryArg returns a PathArgument addressing the list entry identified by preds.
func ListEntryArg(name QName, preds ...Predicate) PathArgument {
	return PathArgument{Name: name, Predicates: preds}
}

// IsListEntry reports whether the argument addresses a list entry.
func (pa PathArgument) IsListEntry() bool {
	return len(pa.Predicates) > 0
}

// HasPredicate reports whether key is one of the predicate keys of pa.
func (pa PathArgument) HasPredicate(key QName) bool {
	for _, p := range pa.Predicates {
		if p.Key == key {
			return true
		}
	}
	return false
}

func (pa PathArgument) String() string {
	sb := &strings.Builder{}
	sb.WriteString(pa.Name.Name)
	for _, p := range pa.Predicates {
		fmt.Fprintf(sb, "[%s=%s]", p.Key.Name, p.Value)
	}
	return sb.String()
}

// Path is a root to leaf sequence of PathArguments.
type Path []PathArgument

// NewPath returns a Path made of args.
func NewPath(args ...PathArgument) Path {
	return Path(args)
}

// Last returns the deepest argument of the path.
func (p Path) Last() (PathArgument, bool) {
	if len(p) == 0 {
		return PathArgument{}, false
	}
	return p[len(p)-1], true
}

// String renders the path as an xpath like string, e.g. /interfaces/interface[name=eth0].
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	sb := &strings.Builder{}
	for _, pa := range p {
		sb.WriteString("/")
		sb.WriteString(pa.String())
	}
	return sb.String()
}

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	result := make(Path, 0, len(p))
	for _, pa := range p {
		preds := make([]Predicate, len(pa.Predicates))
		copy(preds, pa.Predicates)
		if len(preds) == 0 {
			preds = nil
		}
		result = append(result, PathArgument{Name: pa.Name, Predicates: preds})
	}
	return result
}
