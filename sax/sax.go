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

// Package sax defines a push-style XML event vocabulary: the handler
// interfaces a producer calls, and the XMLReader surface a consumer drives.
//
// Character data passed to handlers as []byte is only valid for the duration
// of the call, handlers must copy it if they keep it.
package sax

import "io"

// Feature and property names understood by readers in this module.
const (
	FeatureNamespaces        = "http://xml.org/sax/features/namespaces"
	FeatureNamespacePrefixes = "http://xml.org/sax/features/namespace-prefixes"
	FeatureStringInterning   = "http://xml.org/sax/features/string-interning"

	PropertyLexicalHandler = "http://xml.org/sax/properties/lexical-handler"
)

// ContentHandler receives the logical content of a document.
type ContentHandler interface {
	StartDocument() error
	EndDocument() error
	StartPrefixMapping(prefix, uri string) error
	EndPrefixMapping(prefix string) error
	StartElement(uri, local, qname string, attrs Attributes) error
	EndElement(uri, local, qname string) error
	Characters(ch []byte) error
	IgnorableWhitespace(ch []byte) error
	ProcessingInstruction(target, data string) error
	SkippedEntity(name string) error
}

// LexicalHandler receives the parts of a document that carry no content
// model meaning: comments, CDATA boundaries, DTD and entity boundaries.
type LexicalHandler interface {
	StartDTD(name, publicID, systemID string) error
	EndDTD() error
	StartEntity(name string) error
	EndEntity(name string) error
	StartCDATA() error
	EndCDATA() error
	Comment(ch []byte) error
}

// ErrorHandler is notified of problems found while producing events.
//
// Returning a non-nil error asks the producer to stop, though a producer may
// stop anyway, notably after FatalError.
type ErrorHandler interface {
	Warning(err *ParseError) error
	Error(err *ParseError) error
	FatalError(err *ParseError) error
}

// EntityResolver maps external entity identifiers to input.
type EntityResolver interface {
	ResolveEntity(publicID, systemID string) (*InputSource, error)
}

// DTDHandler receives notation and unparsed entity declarations.
type DTDHandler interface {
	NotationDecl(name, publicID, systemID string) error
	UnparsedEntityDecl(name, publicID, systemID, notationName string) error
}

// InputSource identifies a document to parse.
type InputSource struct {
	PublicID string
	SystemID string
	Encoding string
	Reader   io.Reader
}

// XMLReader is the pull side of the vocabulary: a consumer installs handlers
// and negotiates features, then calls Parse.
type XMLReader interface {
	Feature(name string) (bool, error)
	SetFeature(name string, value bool) error
	Property(name string) (interface{}, error)
	SetProperty(name string, value interface{}) error

	EntityResolver() EntityResolver
	SetEntityResolver(r EntityResolver)
	DTDHandler() DTDHandler
	SetDTDHandler(h DTDHandler)
	ContentHandler() ContentHandler
	SetContentHandler(h ContentHandler)
	ErrorHandler() ErrorHandler
	SetErrorHandler(h ErrorHandler)

	Parse(input *InputSource) error
	ParseSystemID(systemID string) error
}
