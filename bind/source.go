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
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Goodwine/xmlsource/sax"
)

// Source is an XML source for one content object. Its reader ignores whatever input it is asked to
// parse and marshals the content object instead, every time Parse is called.
//
// Unlike readers that intern every name they report, the events come straight from the marshaller
// with no extra interning pass.
type Source struct {
	reader *pseudoParser
	input  *sax.InputSource
}

// Option configures a Source.
type Option func(*pseudoParser)

// WithLogger sets the logger used to report marshalling failures at debug level. The default is
// logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *pseudoParser) {
		p.log = log
	}
}

// NewSource creates a Source for v, marshalled by a new Marshaller from ctx.
func NewSource(ctx Context, v interface{}, opts ...Option) (*Source, error) {
	if isNil(ctx) {
		return nil, ErrNilContext
	}
	if isNil(v) {
		return nil, ErrNilContent
	}
	m, err := ctx.NewMarshaller()
	if err != nil {
		return nil, fmt.Errorf("creating marshaller: %w", err)
	}
	return NewMarshallerSource(m, v, opts...)
}

// NewMarshallerSource creates a Source for v, marshalled by m. m must be able to marshal v.
func NewMarshallerSource(m Marshaller, v interface{}, opts ...Option) (*Source, error) {
	if isNil(m) {
		return nil, ErrNilMarshaller
	}
	if isNil(v) {
		return nil, ErrNilContent
	}
	p := &pseudoParser{
		marshaller: m,
		content:    v,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return &Source{
		reader: p,
		// Never read, the reader only cares about the content object.
		input: &sax.InputSource{},
	}, nil
}

// Reader returns the reader that produces the events of the content object.
func (s *Source) Reader() sax.XMLReader {
	return s.reader
}

// Input returns a placeholder input to hand to Reader().Parse.
func (s *Source) Input() *sax.InputSource {
	return s.input
}

// fixedFeature is the only value a pseudoParser feature can take.
type fixedFeature struct {
	value    bool
	settable bool
}

var pseudoParserFeatures = map[string]fixedFeature{
	sax.FeatureNamespaces:        {value: true, settable: true},
	sax.FeatureNamespacePrefixes: {value: false, settable: true},
	// Reported for consumers that check it, names are not interned again here.
	sax.FeatureStringInterning: {value: true},
}

// pseudoParser pretends to be an XMLReader. No matter what it is asked to parse, it marshals its
// content object.
type pseudoParser struct {
	marshaller Marshaller
	content    interface{}
	log        logrus.FieldLogger

	// The marshaller gets the repeater for the whole run, the repeater forwards to the handlers
	// installed on the reader.
	repeater sax.Filter

	// Stored but never used by the reader itself.
	entityResolver sax.EntityResolver
	dtdHandler     sax.DTDHandler

	errorHandler sax.ErrorHandler
}

func (p *pseudoParser) Feature(name string) (bool, error) {
	f, ok := pseudoParserFeatures[name]
	if !ok {
		return false, sax.NotRecognized(name)
	}
	return f.value, nil
}

func (p *pseudoParser) SetFeature(name string, value bool) error {
	f, ok := pseudoParserFeatures[name]
	if !ok || !f.settable {
		return sax.NotRecognized(name)
	}
	if value != f.value {
		return sax.NotSupported(name, value)
	}
	return nil
}

func (p *pseudoParser) Property(name string) (interface{}, error) {
	if name != sax.PropertyLexicalHandler {
		return nil, sax.NotRecognized(name)
	}
	if h := p.repeater.LexicalHandler(); h != nil {
		return h, nil
	}
	return nil, nil
}

func (p *pseudoParser) SetProperty(name string, value interface{}) error {
	if name != sax.PropertyLexicalHandler {
		return sax.NotRecognized(name)
	}
	if value == nil {
		p.repeater.SetLexicalHandler(nil)
		return nil
	}
	h, ok := value.(sax.LexicalHandler)
	if !ok {
		return sax.NotSupported(name, fmt.Sprintf("%T", value))
	}
	p.repeater.SetLexicalHandler(h)
	return nil
}

func (p *pseudoParser) EntityResolver() sax.EntityResolver { return p.entityResolver }
func (p *pseudoParser) SetEntityResolver(r sax.EntityResolver) { p.entityResolver = r }
func (p *pseudoParser) DTDHandler() sax.DTDHandler { return p.dtdHandler }
func (p *pseudoParser) SetDTDHandler(h sax.DTDHandler) { p.dtdHandler = h }
func (p *pseudoParser) ContentHandler() sax.ContentHandler { return p.repeater.ContentHandler() }
func (p *pseudoParser) SetContentHandler(h sax.ContentHandler) { p.repeater.SetContentHandler(h) }
func (p *pseudoParser) ErrorHandler() sax.ErrorHandler { return p.errorHandler }
func (p *pseudoParser) SetErrorHandler(h sax.ErrorHandler) { p.errorHandler = h }

// Parse marshals the content object, input is ignored.
func (p *pseudoParser) Parse(input *sax.InputSource) error {
	return p.parse()
}

// ParseSystemID marshals the content object, systemID is ignored.
func (p *pseudoParser) ParseSystemID(systemID string) error {
	return p.parse()
}

func (p *pseudoParser) parse() error {
	err := p.marshaller.Marshal(p.content, &p.repeater)
	if err == nil {
		return nil
	}

	pe := sax.NewParseError(err)
	p.log.WithError(err).WithField("content", fmt.Sprintf("%T", p.content)).Debug("marshalling content object failed")

	if p.errorHandler != nil {
		// Fatal: the parse aborts whatever the handler answers.
		_ = p.errorHandler.FatalError(pe)
	}
	return pe
}

var _ sax.XMLReader = (*pseudoParser)(nil)
