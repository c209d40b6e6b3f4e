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
	"bytes"
	"errors"
	"fmt"
	"io"

	xml "github.com/Goodwine/xmlsource"
	"github.com/Goodwine/xmlsource/intern"
	"github.com/Goodwine/xmlsource/sax"
)

const (
	xmlPrefix    = "xml"
	xmlnsPrefix  = "xmlns"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
	cdataType    = "CDATA"
)

// binding maps a namespace prefix to a URI, an empty prefix is the default namespace.
type binding struct {
	prefix string
	uri    string
}

// openElement is an element whose closing tag hasn't been seen yet.
type openElement struct {
	name  *xml.Name
	uri   string
	qname string
	// mark is the length of driver.bindings before this element declared its own.
	mark int
}

// driver turns decoder tokens into SAX events with namespaces resolved. xmlns attributes are
// reported as prefix mappings only.
type driver struct {
	names *intern.Cache
	h     sax.ContentHandler
	lex   sax.LexicalHandler

	bindings []binding
	open     []openElement
	attrs    sax.Attributes
	qnames   map[*xml.Name]string
}

func newDriver(names *intern.Cache, h sax.ContentHandler) *driver {
	lex, _ := h.(sax.LexicalHandler)
	return &driver{
		names:  names,
		h:      h,
		lex:    lex,
		qnames: make(map[*xml.Name]string),
	}
}

func (dr *driver) run(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := dr.token(tok); err != nil {
			return err
		}
	}
	if n := len(dr.open); n > 0 {
		return fmt.Errorf("%w <%s>", ErrUnclosedTag, dr.open[n-1].qname)
	}
	return nil
}

func (dr *driver) token(tok xml.Token) error {
	switch tok := tok.(type) {
	case *xml.StartTag:
		return dr.start(tok)
	case *xml.CloseTag:
		return dr.end(tok)
	case *xml.CharData:
		if len(tok.Data) == 0 || (len(dr.open) == 0 && len(bytes.TrimSpace(tok.Data)) == 0) {
			return nil
		}
		return dr.h.Characters(tok.Data)
	case *xml.CData:
		if dr.lex != nil {
			if err := dr.lex.StartCDATA(); err != nil {
				return err
			}
		}
		if err := dr.h.Characters(tok.Data); err != nil {
			return err
		}
		if dr.lex != nil {
			return dr.lex.EndCDATA()
		}
	case *xml.Comment:
		if dr.lex != nil {
			return dr.lex.Comment(tok.Data)
		}
	case *xml.ProcInst:
		if tok.Target == xmlPrefix {
			// The XML declaration is not an event.
			return nil
		}
		return dr.h.ProcessingInstruction(tok.Target, string(tok.Inst))
	}
	// Directives are dropped, DTDs are not supported.
	return nil
}

func (dr *driver) start(tok *xml.StartTag) error {
	mark := len(dr.bindings)
	for _, a := range tok.Attr {
		switch {
		case a.Name.Space() == "" && a.Name.Local() == xmlnsPrefix:
			dr.bindings = append(dr.bindings, binding{uri: dr.intern(a.Value)})
		case a.Name.Space() == xmlnsPrefix:
			dr.bindings = append(dr.bindings, binding{prefix: a.Name.Local(), uri: dr.intern(a.Value)})
		}
	}
	for _, b := range dr.bindings[mark:] {
		if err := dr.h.StartPrefixMapping(b.prefix, b.uri); err != nil {
			return err
		}
	}

	dr.attrs = dr.attrs[:0]
	for _, a := range tok.Attr {
		if isNamespaceDecl(a.Name) {
			continue
		}
		// Unprefixed attributes are in no namespace, not the default one.
		var uri string
		if a.Name.Space() != "" {
			var err error
			if uri, err = dr.resolve(a.Name.Space()); err != nil {
				return fmt.Errorf("%w on attribute %s of <%s>", err, a.Name, tok.Name)
			}
		}
		dr.attrs = append(dr.attrs, sax.Attribute{
			URI:   uri,
			Local: a.Name.Local(),
			QName: dr.qname(a.Name),
			Type:  cdataType,
			Value: a.Value,
		})
	}

	uri, err := dr.resolve(tok.Name.Space())
	if err != nil {
		return fmt.Errorf("%w on <%s>", err, tok.Name)
	}
	el := openElement{name: tok.Name, uri: uri, qname: dr.qname(tok.Name), mark: mark}
	dr.open = append(dr.open, el)
	return dr.h.StartElement(el.uri, tok.Name.Local(), el.qname, dr.attrs)
}

func (dr *driver) end(tok *xml.CloseTag) error {
	n := len(dr.open)
	if n == 0 {
		return fmt.Errorf("%w </%s>", ErrMismatchedTag, tok.Name)
	}
	el := dr.open[n-1]
	if el.name != tok.Name && el.qname != tok.Name.String() {
		return fmt.Errorf("%w </%s>, expected </%s>", ErrMismatchedTag, tok.Name, el.qname)
	}
	dr.open = dr.open[:n-1]

	if err := dr.h.EndElement(el.uri, el.name.Local(), el.qname); err != nil {
		return err
	}
	for i := len(dr.bindings) - 1; i >= el.mark; i-- {
		if err := dr.h.EndPrefixMapping(dr.bindings[i].prefix); err != nil {
			return err
		}
	}
	dr.bindings = dr.bindings[:el.mark]
	return nil
}

// resolve returns the URI bound to prefix in the current scope.
func (dr *driver) resolve(prefix string) (string, error) {
	if prefix == xmlPrefix {
		return xmlNamespace, nil
	}
	for i := len(dr.bindings) - 1; i >= 0; i-- {
		if dr.bindings[i].prefix == prefix {
			return dr.bindings[i].uri, nil
		}
	}
	if prefix == "" {
		return "", nil
	}
	return "", fmt.Errorf("%w %q", ErrUndeclaredPrefix, prefix)
}

// qname returns the canonical qualified name for n. Decoders share *Name instances so the lookup
// mostly hits.
func (dr *driver) qname(n *xml.Name) string {
	if q, ok := dr.qnames[n]; ok {
		return q
	}
	q := dr.intern(n.String())
	dr.qnames[n] = q
	return q
}

func (dr *driver) intern(s string) string {
	if dr.names == nil {
		return s
	}
	return dr.names.Intern(s)
}

func isNamespaceDecl(n *xml.Name) bool {
	return n.Space() == xmlnsPrefix || (n.Space() == "" && n.Local() == xmlnsPrefix)
}
