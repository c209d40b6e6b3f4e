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

// Filter repeats content and lexical events to whichever handlers are
// installed at the time of each event. A producer that only accepts one
// handler for the whole run can be given a Filter, and the consumer may then
// swap the real handlers underneath it.
//
// Events are dropped while the matching handler is nil. A Filter is not safe
// for concurrent use.
type Filter struct {
	content ContentHandler
	lexical LexicalHandler
}

// ContentHandler returns the current content handler.
func (f *Filter) ContentHandler() ContentHandler {
	return f.content
}

// SetContentHandler installs the handler for subsequent content events.
func (f *Filter) SetContentHandler(h ContentHandler) {
	f.content = h
}

// LexicalHandler returns the current lexical handler.
func (f *Filter) LexicalHandler() LexicalHandler {
	return f.lexical
}

// SetLexicalHandler installs the handler for subsequent lexical events.
func (f *Filter) SetLexicalHandler(h LexicalHandler) {
	f.lexical = h
}

func (f *Filter) StartDocument() error {
	if f.content == nil {
		return nil
	}
	return f.content.StartDocument()
}

func (f *Filter) EndDocument() error {
	if f.content == nil {
		return nil
	}
	return f.content.EndDocument()
}

func (f *Filter) StartPrefixMapping(prefix, uri string) error {
	if f.content == nil {
		return nil
	}
	return f.content.StartPrefixMapping(prefix, uri)
}

func (f *Filter) EndPrefixMapping(prefix string) error {
	if f.content == nil {
		return nil
	}
	return f.content.EndPrefixMapping(prefix)
}

func (f *Filter) StartElement(uri, local, qname string, attrs Attributes) error {
	if f.content == nil {
		return nil
	}
	return f.content.StartElement(uri, local, qname, attrs)
}

func (f *Filter) EndElement(uri, local, qname string) error {
	if f.content == nil {
		return nil
	}
	return f.content.EndElement(uri, local, qname)
}

func (f *Filter) Characters(ch []byte) error {
	if f.content == nil {
		return nil
	}
	return f.content.Characters(ch)
}

func (f *Filter) IgnorableWhitespace(ch []byte) error {
	if f.content == nil {
		return nil
	}
	return f.content.IgnorableWhitespace(ch)
}

func (f *Filter) ProcessingInstruction(target, data string) error {
	if f.content == nil {
		return nil
	}
	return f.content.ProcessingInstruction(target, data)
}

func (f *Filter) SkippedEntity(name string) error {
	if f.content == nil {
		return nil
	}
	return f.content.SkippedEntity(name)
}

func (f *Filter) StartDTD(name, publicID, systemID string) error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.StartDTD(name, publicID, systemID)
}

func (f *Filter) EndDTD() error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.EndDTD()
}

func (f *Filter) StartEntity(name string) error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.StartEntity(name)
}

func (f *Filter) EndEntity(name string) error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.EndEntity(name)
}

func (f *Filter) StartCDATA() error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.StartCDATA()
}

func (f *Filter) EndCDATA() error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.EndCDATA()
}

func (f *Filter) Comment(ch []byte) error {
	if f.lexical == nil {
		return nil
	}
	return f.lexical.Comment(ch)
}

var (
	_ ContentHandler = (*Filter)(nil)
	_ LexicalHandler = (*Filter)(nil)
)
