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

// Package saxwriter serializes SAX events back into XML text.
package saxwriter

import (
	"bytes"
	stdxml "encoding/xml"
	"errors"
	"io"

	"github.com/Goodwine/xmlsource/sax"
)

const declaration = `version="1.0" encoding="UTF-8"`

var (
	cdataStart = []byte("<![CDATA[")
	cdataEnd   = []byte("]]>")
	// cdataSplit closes the section right after `]]` and reopens it before `>`.
	cdataSplit = []byte("]]]]><![CDATA[>")
)

// Writer is a content and lexical handler that writes the events it gets as XML. Qualified names
// are written as reported, and prefix mappings become xmlns attributes of the next element.
type Writer struct {
	w           io.Writer
	enc         *stdxml.Encoder
	declaration bool

	nsDecls []stdxml.Attr
	inCDATA bool
	cdata   bytes.Buffer
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent indents nested elements, see encoding/xml Encoder.Indent.
func WithIndent(prefix, indent string) Option {
	return func(w *Writer) {
		w.enc.Indent(prefix, indent)
	}
}

// WithDeclaration writes an XML declaration on StartDocument.
func WithDeclaration() Option {
	return func(w *Writer) {
		w.declaration = true
	}
}

// New returns a Writer that writes to w. Call Flush, or deliver EndDocument, once done.
func New(w io.Writer, opts ...Option) *Writer {
	sw := &Writer{
		w:   w,
		enc: stdxml.NewEncoder(w),
	}
	for _, opt := range opts {
		opt(sw)
	}
	return sw
}

// Copy writes the document produced by r as XML into dst.
func Copy(dst io.Writer, r sax.XMLReader, in *sax.InputSource, opts ...Option) error {
	sw := New(dst, opts...)
	r.SetContentHandler(sw)
	if err := r.SetProperty(sax.PropertyLexicalHandler, sw); err != nil && !errors.Is(err, sax.ErrNotRecognized) {
		return err
	}
	if err := r.Parse(in); err != nil {
		return err
	}
	return sw.Flush()
}

// Flush writes any buffered XML to the underlying writer.
func (w *Writer) Flush() error {
	return w.enc.Flush()
}

func (w *Writer) StartDocument() error {
	if !w.declaration {
		return nil
	}
	return w.enc.EncodeToken(stdxml.ProcInst{Target: "xml", Inst: []byte(declaration)})
}

func (w *Writer) EndDocument() error {
	return w.enc.Flush()
}

func (w *Writer) StartPrefixMapping(prefix, uri string) error {
	name := "xmlns"
	if prefix != "" {
		name += ":" + prefix
	}
	w.nsDecls = append(w.nsDecls, stdxml.Attr{Name: stdxml.Name{Local: name}, Value: uri})
	return nil
}

func (w *Writer) EndPrefixMapping(prefix string) error {
	return nil
}

func (w *Writer) StartElement(uri, local, qname string, attrs sax.Attributes) error {
	start := stdxml.StartElement{
		Name: stdxml.Name{Local: qname},
		Attr: make([]stdxml.Attr, 0, len(w.nsDecls)+len(attrs)),
	}
	start.Attr = append(start.Attr, w.nsDecls...)
	w.nsDecls = w.nsDecls[:0]
	for _, a := range attrs {
		start.Attr = append(start.Attr, stdxml.Attr{Name: stdxml.Name{Local: a.QName}, Value: a.Value})
	}
	return w.enc.EncodeToken(start)
}

func (w *Writer) EndElement(uri, local, qname string) error {
	return w.enc.EncodeToken(stdxml.EndElement{Name: stdxml.Name{Local: qname}})
}

func (w *Writer) Characters(ch []byte) error {
	if w.inCDATA {
		w.cdata.Write(ch)
		return nil
	}
	return w.enc.EncodeToken(stdxml.CharData(ch))
}

func (w *Writer) IgnorableWhitespace(ch []byte) error {
	return w.Characters(ch)
}

func (w *Writer) ProcessingInstruction(target, data string) error {
	return w.enc.EncodeToken(stdxml.ProcInst{Target: target, Inst: []byte(data)})
}

func (w *Writer) SkippedEntity(name string) error {
	return nil
}

func (w *Writer) StartDTD(name, publicID, systemID string) error { return nil }
func (w *Writer) EndDTD() error { return nil }
func (w *Writer) StartEntity(name string) error { return nil }
func (w *Writer) EndEntity(name string) error { return nil }

func (w *Writer) StartCDATA() error {
	w.inCDATA = true
	w.cdata.Reset()
	return nil
}

// EndCDATA writes the buffered section directly to the underlying writer, encoding/xml has no
// CDATA token.
func (w *Writer) EndCDATA() error {
	w.inCDATA = false
	if err := w.enc.Flush(); err != nil {
		return err
	}
	var out bytes.Buffer
	out.Write(cdataStart)
	out.Write(bytes.ReplaceAll(w.cdata.Bytes(), cdataEnd, cdataSplit))
	out.Write(cdataEnd)
	_, err := w.w.Write(out.Bytes())
	return err
}

func (w *Writer) Comment(ch []byte) error {
	return w.enc.EncodeToken(stdxml.Comment(ch))
}

var (
	_ sax.ContentHandler = (*Writer)(nil)
	_ sax.LexicalHandler = (*Writer)(nil)
)
