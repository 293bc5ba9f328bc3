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

import "fmt"

// QName is a namespace qualified element or attribute name.
type QName struct {
	Namespace string
	Name      string
}

// NewQName returns a QName in the given namespace.
func NewQName(namespace, name string) QName {
	return QName{Namespace: namespace, Name: name}
}

// LocalName returns a QName without namespace.
func LocalName(name string) QName {
	return QName{Name: name}
}

func (q QName) String() string {
	if q.Namespace == "" {
		return q.Name
	}
	return fmt.Sprintf("(%s)%s", q.Namespace, q.Name)
}

// WithDefaultNamespace returns q with ns filled in, if q carries no namespace.
func (q QName) WithDefaultNamespace(ns string) QName {
	if q.Namespace != "" {
		return q
	}
	return QName{Namespace: ns, Name: q.Name}
}
