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
	stdxml "encoding/xml"
	"fmt"
	"sync"

	"github.com/chronos-tachyon/assert"

	xml "github.com/Goodwine/xmlsource"
	"github.com/Goodwine/xmlsource/intern"
	"github.com/Goodwine/xmlsource/sax"
)

var gPoolBuffer = sync.Pool{
	New: func() interface{} {
		buf := new(bytes.Buffer)
		buf.Grow(4096)
		return buf
	},
}

func takeBuffer() *bytes.Buffer {
	return gPoolBuffer.Get().(*bytes.Buffer)
}

func giveBuffer(buf *bytes.Buffer) {
	assert.NotNil(&buf)
	buf.Reset()
	gPoolBuffer.Put(buf)
}

// XMLContext is the default binding: it marshals any value encoding/xml can encode.
type XMLContext struct {
	names    *intern.Cache
	prefix   string
	indent   string
	fragment bool
}

// XMLOption configures an XMLContext.
type XMLOption func(*XMLContext)

// WithNames sets the cache used to canonicalize names and namespace URIs. The default is
// intern.Shared().
func WithNames(names *intern.Cache) XMLOption {
	return func(c *XMLContext) {
		c.names = names
	}
}

// WithIndent indents the marshalled document, the indentation is reported as character data.
func WithIndent(prefix, indent string) XMLOption {
	return func(c *XMLContext) {
		c.prefix = prefix
		c.indent = indent
	}
}

// WithFragment skips the StartDocument and EndDocument events, for content that is embedded into
// a larger event stream.
func WithFragment(fragment bool) XMLOption {
	return func(c *XMLContext) {
		c.fragment = fragment
	}
}

// NewXMLContext returns an XMLContext configured by opts.
func NewXMLContext(opts ...XMLOption) *XMLContext {
	c := &XMLContext{names: intern.Shared()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewMarshaller returns an XMLMarshaller with the context settings.
func (c *XMLContext) NewMarshaller() (Marshaller, error) {
	return &XMLMarshaller{ctx: *c}, nil
}

// XMLMarshaller encodes values with encoding/xml and reports the result as SAX events.
type XMLMarshaller struct {
	ctx XMLContext
}

// Marshal encodes v and sends its events to h.
func (m *XMLMarshaller) Marshal(v interface{}, h sax.ContentHandler) error {
	buf := takeBuffer()
	defer giveBuffer(buf)

	enc := stdxml.NewEncoder(buf)
	if m.ctx.prefix != "" || m.ctx.indent != "" {
		enc.Indent(m.ctx.prefix, m.ctx.indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshalling %T: %w", v, err)
	}
	return m.drive(buf.Bytes(), h)
}

// drive tokenizes data and sends its events to h.
func (m *XMLMarshaller) drive(data []byte, h sax.ContentHandler) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Names = m.ctx.names
	d.PreserveSpace = true
	d.ReadComment = true
	d.ReadProcInst = true

	if !m.ctx.fragment {
		if err := h.StartDocument(); err != nil {
			return err
		}
	}
	if err := newDriver(m.ctx.names, h).run(d); err != nil {
		return err
	}
	if !m.ctx.fragment {
		return h.EndDocument()
	}
	return nil
}

var (
	_ Context    = (*XMLContext)(nil)
	_ Marshaller = (*XMLMarshaller)(nil)
)
