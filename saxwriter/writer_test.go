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

package saxwriter

import (
	"bytes"
	stdxml "encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goodwine/xmlsource/bind"
	"github.com/Goodwine/xmlsource/intern"
	"github.com/Goodwine/xmlsource/sax"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	steps := []func() error{
		w.StartDocument,
		func() error { return w.StartPrefixMapping("w", "urn:w") },
		func() error {
			return w.StartElement("urn:w", "doc", "w:doc", sax.Attributes{{QName: "id", Value: "1 & 2"}})
		},
		func() error { return w.Characters([]byte("a<b")) },
		func() error { return w.Comment([]byte(" c ")) },
		w.StartCDATA,
		func() error { return w.Characters([]byte("x]]>y")) },
		w.EndCDATA,
		func() error { return w.ProcessingInstruction("pi", "d") },
		func() error { return w.StartElement("urn:w", "empty", "w:empty", nil) },
		func() error { return w.EndElement("urn:w", "empty", "w:empty") },
		func() error { return w.EndElement("urn:w", "doc", "w:doc") },
		func() error { return w.EndPrefixMapping("w") },
		w.EndDocument,
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
	}

	const want = `<w:doc xmlns:w="urn:w" id="1 &amp; 2">a&lt;b<!-- c -->` +
		`<![CDATA[x]]]]><![CDATA[>y]]><?pi d?><w:empty></w:empty></w:doc>`
	assert.Equal(t, want, buf.String())
}

func TestWriterDeclaration(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, WithDeclaration())
	require.NoError(t, w.StartDocument())
	require.NoError(t, w.StartPrefixMapping("", "urn:d"))
	require.NoError(t, w.StartElement("urn:d", "a", "a", nil))
	require.NoError(t, w.EndElement("urn:d", "a", "a"))
	require.NoError(t, w.EndDocument())
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><a xmlns="urn:d"></a>`, buf.String())
}

func TestWriterMismatchedEnd(t *testing.T) {
	w := New(&bytes.Buffer{})
	require.NoError(t, w.StartElement("", "a", "a", nil))
	assert.Error(t, w.EndElement("", "b", "b"))
}

type order struct {
	XMLName stdxml.Name `xml:"urn:shop order"`
	ID      string      `xml:"id,attr"`
	Items   []string    `xml:"item"`
	Note    string      `xml:",comment"`
}

func TestCopy(t *testing.T) {
	in := &order{ID: "42", Items: []string{"tea", "milk & honey"}, Note: " rush "}
	src, err := bind.NewSource(bind.NewXMLContext(bind.WithNames(intern.New())), in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Copy(&buf, src.Reader(), src.Input()))

	const want = `<order xmlns="urn:shop" id="42"><item>tea</item><item>milk &amp; honey</item><!-- rush --></order>`
	assert.Equal(t, want, buf.String())

	var out order
	require.NoError(t, stdxml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Items, out.Items)
	assert.Equal(t, in.Note, out.Note)
}

func TestCopyIndent(t *testing.T) {
	in := &order{ID: "7", Items: []string{"one"}}
	src, err := bind.NewSource(bind.NewXMLContext(bind.WithNames(intern.New())), in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Copy(&buf, src.Reader(), src.Input(), WithIndent("", "  ")))

	var out order
	require.NoError(t, stdxml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []string{"one"}, out.Items)
	assert.Contains(t, buf.String(), "\n  <item>")
}

func TestCopyParseError(t *testing.T) {
	src, err := bind.NewSource(bind.NewXMLContext(), map[string]string{"a": "b"})
	require.NoError(t, err)

	err = Copy(&bytes.Buffer{}, src.Reader(), src.Input())
	var pe *sax.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, -1, pe.Line)
}
