// Copyright 2020 Google LLC
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

package sax

// Attribute is one attribute of a start element. URI is empty for attributes
// without a namespace.
type Attribute struct {
	URI   string
	Local string
	QName string
	Type  string
	Value string
}

// Attributes lists the attributes of a start element in document order.
//
// Producers may reuse the backing array after StartElement returns.
type Attributes []Attribute

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// Index returns the position of the attribute with the given namespace and
// local name, or -1.
func (a Attributes) Index(uri, local string) int {
	for i := range a {
		if a[i].URI == uri && a[i].Local == local {
			return i
		}
	}
	return -1
}

// IndexQName returns the position of the attribute with the given qualified
// name, or -1.
func (a Attributes) IndexQName(qname string) int {
	for i := range a {
		if a[i].QName == qname {
			return i
		}
	}
	return -1
}

// Value returns the value of the attribute with the given namespace and local
// name.
func (a Attributes) Value(uri, local string) (string, bool) {
	if i := a.Index(uri, local); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

// Copy returns a copy that is safe to keep after the event.
func (a Attributes) Copy() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	copy(c, a)
	return c
}
