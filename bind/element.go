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

package bind

import (
	stdxml "encoding/xml"
	"fmt"
	"io"
)

// Element is a generic element tree for documents whose shape is only known at runtime. It
// marshals with XMLContext like any other value.
//
// Text holds all the character data of the element, mixed content loses its interleaving.
type Element struct {
	XMLName  stdxml.Name
	Attrs    []stdxml.Attr `xml:",any,attr"`
	Text     string        `xml:",chardata"`
	Children []*Element    `xml:",any"`
}

// ReadElement decodes the first element found in r.
//
// Namespace declarations are dropped, names keep their resolved namespace and encoding/xml
// declares them again when the tree is marshalled.
func ReadElement(r io.Reader) (*Element, error) {
	var root Element
	if err := stdxml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("reading element: %w", err)
	}
	root.dropNamespaceDecls()
	return &root, nil
}

func (e *Element) dropNamespaceDecls() {
	attrs := e.Attrs[:0]
	for _, a := range e.Attrs {
		if a.Name.Space == xmlnsPrefix || (a.Name.Space == "" && a.Name.Local == xmlnsPrefix) {
			continue
		}
		attrs = append(attrs, a)
	}
	e.Attrs = attrs
	for _, c := range e.Children {
		c.dropNamespaceDecls()
	}
}
