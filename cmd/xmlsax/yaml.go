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

package main

import (
	stdxml "encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Goodwine/xmlsource/bind"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
	xmlnsKey   = "@xmlns"
)

// readYAML builds an element tree out of a YAML document holding a single-key mapping:
//
//	order:
//	  "@xmlns": urn:shop
//	  "@id": 42
//	  item: [tea, milk]
//
// Keys starting with @ are attributes, #text is the character data and sequences repeat the
// element they are keyed with.
func readYAML(r io.Reader) (*bind.Element, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading yaml: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode || len(root.Content) != 2 {
		return nil, fmt.Errorf("line %d: the document must be a mapping with a single root key", root.Line)
	}
	return yamlElement(root.Content[0].Value, root.Content[1])
}

func yamlElement(name string, n *yaml.Node) (*bind.Element, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	el := &bind.Element{XMLName: stdxml.Name{Local: name}}
	switch n.Kind {
	case yaml.ScalarNode:
		el.Text = n.Value
		return el, nil
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("line %d: <%s> must be a scalar or a mapping", n.Line, name)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		switch {
		case key == xmlnsKey:
			el.XMLName.Space = value.Value
		case key == textKey:
			el.Text = value.Value
		case strings.HasPrefix(key, attrPrefix):
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: attribute %s of <%s> must be a scalar", value.Line, key, name)
			}
			el.Attrs = append(el.Attrs, stdxml.Attr{Name: stdxml.Name{Local: key[len(attrPrefix):]}, Value: value.Value})
		case value.Kind == yaml.SequenceNode:
			for _, item := range value.Content {
				child, err := yamlElement(key, item)
				if err != nil {
					return nil, err
				}
				el.Children = append(el.Children, child)
			}
		default:
			child, err := yamlElement(key, value)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	}
	return el, nil
}
