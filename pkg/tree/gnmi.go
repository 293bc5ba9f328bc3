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
	"sort"
	"strings"

	"github.com/openconfig/gnmi/proto/gnmi"
	"github.com/openconfig/ygot/ygot"
)

// ParsePath parses an xpath like string such as
// /interfaces/interface[name=ethernet-1/1]/subinterface[index=0]
// into a Path. Module prefixes (mod:elem) are stripped.
func ParsePath(p string) (Path, error) {
	if err := checkBrackets(p); err != nil {
		return nil, fmt.Errorf("failed parsing path %q: %w", p, err)
	}
	gp, err := ygot.StringToStructuredPath(p)
	if err != nil {
		return nil, fmt.Errorf("failed parsing path %q: %w", p, err)
	}
	result := FromGNMIPath(gp, "")
	if len(result) == 0 {
		return nil, fmt.Errorf("path %q has no elements", p)
	}
	return result, nil
}

// checkBrackets verifies that every key predicate of p is closed. ygot silently
// turns an unterminated predicate into different path elements.
// Backslash escaped brackets are skipped, a '[' inside a predicate is part of the value.
func checkBrackets(p string) error {
	open := -1
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
		case '[':
			if open < 0 {
				open = i
			}
		case ']':
			if open < 0 {
				return fmt.Errorf("unexpected ']' at offset %d", i)
			}
			open = -1
		}
	}
	if open >= 0 {
		return fmt.Errorf("unterminated key predicate at offset %d", open)
	}
	return nil
}

// FromGNMIPath converts a gNMI path into a Path. All names are placed into
// the namespace ns. gNMI keys are unordered, the resulting predicates
// are sorted by key name.
func FromGNMIPath(p *gnmi.Path, ns string) Path {
	if p == nil {
		return nil
	}
	result := make(Path, 0, len(p.GetElem()))
	for _, pe := range p.GetElem() {
		pa := PathArgument{Name: NewQName(ns, stripPrefix(pe.GetName()))}
		if len(pe.GetKey()) > 0 {
			keys := make([]string, 0, len(pe.GetKey()))
			for k := range pe.GetKey() {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				pa.Predicates = append(pa.Predicates, Predicate{
					Key:   NewQName(ns, stripPrefix(k)),
					Value: pe.GetKey()[k],
				})
			}
		}
		result = append(result, pa)
	}
	return result
}

// ToGNMIPath converts p into a gNMI path. Namespaces are dropped.
func ToGNMIPath(p Path) *gnmi.Path {
	result := &gnmi.Path{Elem: make([]*gnmi.PathElem, 0, len(p))}
	for _, pa := range p {
		pe := &gnmi.PathElem{Name: pa.Name.Name}
		if pa.IsListEntry() {
			pe.Key = make(map[string]string, len(pa.Predicates))
			for _, pred := range pa.Predicates {
				pe.Key[pred.Key.Name] = pred.Value
			}
		}
		result.Elem = append(result.Elem, pe)
	}
	return result
}

func stripPrefix(s string) string {
	if idx := strings.Index(s, ":"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
