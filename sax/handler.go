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

// DefaultHandler ignores every event except FatalError, which it returns.
// Embed it to implement only the callbacks you care about.
type DefaultHandler struct{}

func (DefaultHandler) StartDocument() error { return nil }
func (DefaultHandler) EndDocument() error { return nil }
func (DefaultHandler) StartPrefixMapping(prefix, uri string) error { return nil }
func (DefaultHandler) EndPrefixMapping(prefix string) error { return nil }
func (DefaultHandler) StartElement(uri, local, qname string, _ Attributes) error { return nil }
func (DefaultHandler) EndElement(uri, local, qname string) error { return nil }
func (DefaultHandler) Characters(ch []byte) error { return nil }
func (DefaultHandler) IgnorableWhitespace(ch []byte) error { return nil }
func (DefaultHandler) ProcessingInstruction(target, data string) error { return nil }
func (DefaultHandler) SkippedEntity(name string) error { return nil }

func (DefaultHandler) StartDTD(name, publicID, systemID string) error { return nil }
func (DefaultHandler) EndDTD() error { return nil }
func (DefaultHandler) StartEntity(name string) error { return nil }
func (DefaultHandler) EndEntity(name string) error { return nil }
func (DefaultHandler) StartCDATA() error { return nil }
func (DefaultHandler) EndCDATA() error { return nil }
func (DefaultHandler) Comment(ch []byte) error { return nil }

func (DefaultHandler) NotationDecl(name, publicID, systemID string) error { return nil }
func (DefaultHandler) UnparsedEntityDecl(name, publicID, systemID, notationName string) error {
	return nil
}

func (DefaultHandler) ResolveEntity(publicID, systemID string) (*InputSource, error) {
	return nil, nil
}

func (DefaultHandler) Warning(err *ParseError) error { return nil }
func (DefaultHandler) Error(err *ParseError) error { return nil }
func (DefaultHandler) FatalError(err *ParseError) error { return err }

var (
	_ ContentHandler = DefaultHandler{}
	_ LexicalHandler = DefaultHandler{}
	_ DTDHandler     = DefaultHandler{}
	_ EntityResolver = DefaultHandler{}
	_ ErrorHandler   = DefaultHandler{}
)
