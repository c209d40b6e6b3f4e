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

// Package saxtest records SAX events for comparison in tests.
package saxtest

import (
	"fmt"
	"strings"

	"github.com/Goodwine/xmlsource/sax"
)

// Event is one recorded callback. Kind is the callback name, the other
// fields are filled in when the callback carries them.
type Event struct {
	Kind  string
	URI   string
	Local string
	QName string
	Data  string
	Attrs sax.Attributes
}

func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.Kind)
	switch {
	case e.QName != "":
		fmt.Fprintf(&sb, " {%s}%s %s", e.URI, e.Local, e.QName)
		for _, a := range e.Attrs {
			fmt.Fprintf(&sb, " {%s}%s=%q", a.URI, a.Local, a.Value)
		}
	case e.Local != "" || e.URI != "":
		fmt.Fprintf(&sb, " %s=%s", e.Local, e.URI)
	}
	if e.Data != "" {
		fmt.Fprintf(&sb, " %q", e.Data)
	}
	return sb.String()
}

// Recorder keeps every content, lexical and error event it receives.
type Recorder struct {
	Events []Event

	// Fatals counts FatalError calls.
	Fatals int

	// FatalResult is returned from FatalError.
	FatalResult error
}

func (r *Recorder) add(e Event) error {
	r.Events = append(r.Events, e)
	return nil
}

// Kinds returns the Kind of every event in order.
func (r *Recorder) Kinds() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}

func (r *Recorder) StartDocument() error { return r.add(Event{Kind: "StartDocument"}) }
func (r *Recorder) EndDocument() error { return r.add(Event{Kind: "EndDocument"}) }

func (r *Recorder) StartPrefixMapping(prefix, uri string) error {
	return r.add(Event{Kind: "StartPrefixMapping", Local: prefix, URI: uri})
}

func (r *Recorder) EndPrefixMapping(prefix string) error {
	return r.add(Event{Kind: "EndPrefixMapping", Local: prefix})
}

func (r *Recorder) StartElement(uri, local, qname string, attrs sax.Attributes) error {
	return r.add(Event{Kind: "StartElement", URI: uri, Local: local, QName: qname, Attrs: attrs.Copy()})
}

func (r *Recorder) EndElement(uri, local, qname string) error {
	return r.add(Event{Kind: "EndElement", URI: uri, Local: local, QName: qname})
}

func (r *Recorder) Characters(ch []byte) error {
	return r.add(Event{Kind: "Characters", Data: string(ch)})
}

func (r *Recorder) IgnorableWhitespace(ch []byte) error {
	return r.add(Event{Kind: "IgnorableWhitespace", Data: string(ch)})
}

func (r *Recorder) ProcessingInstruction(target, data string) error {
	return r.add(Event{Kind: "ProcessingInstruction", Local: target, Data: data})
}

func (r *Recorder) SkippedEntity(name string) error {
	return r.add(Event{Kind: "SkippedEntity", Local: name})
}

func (r *Recorder) StartDTD(name, publicID, systemID string) error {
	return r.add(Event{Kind: "StartDTD", Local: name, URI: systemID})
}

func (r *Recorder) EndDTD() error { return r.add(Event{Kind: "EndDTD"}) }

func (r *Recorder) StartEntity(name string) error {
	return r.add(Event{Kind: "StartEntity", Local: name})
}

func (r *Recorder) EndEntity(name string) error {
	return r.add(Event{Kind: "EndEntity", Local: name})
}

func (r *Recorder) StartCDATA() error { return r.add(Event{Kind: "StartCDATA"}) }
func (r *Recorder) EndCDATA() error { return r.add(Event{Kind: "EndCDATA"}) }

func (r *Recorder) Comment(ch []byte) error {
	return r.add(Event{Kind: "Comment", Data: string(ch)})
}

func (r *Recorder) Warning(err *sax.ParseError) error { return nil }
func (r *Recorder) Error(err *sax.ParseError) error { return nil }

func (r *Recorder) FatalError(err *sax.ParseError) error {
	r.Fatals++
	return r.FatalResult
}

var (
	_ sax.ContentHandler = (*Recorder)(nil)
	_ sax.LexicalHandler = (*Recorder)(nil)
	_ sax.ErrorHandler   = (*Recorder)(nil)
)
