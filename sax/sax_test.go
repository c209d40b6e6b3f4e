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

package sax_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goodwine/xmlsource/internal/saxtest"
	"github.com/Goodwine/xmlsource/sax"
)

func TestFilterForwardsToCurrentHandler(t *testing.T) {
	var f sax.Filter
	first, second := &saxtest.Recorder{}, &saxtest.Recorder{}

	// No handler installed: events are dropped.
	require.NoError(t, f.StartElement("", "dropped", "dropped", nil))
	require.NoError(t, f.Comment([]byte("dropped")))

	f.SetContentHandler(first)
	require.NoError(t, f.StartElement("urn:a", "a", "p:a", sax.Attributes{{Local: "x", QName: "x", Value: "1"}}))
	require.NoError(t, f.Characters([]byte("one")))

	f.SetContentHandler(second)
	f.SetLexicalHandler(second)
	require.NoError(t, f.Characters([]byte("two")))
	require.NoError(t, f.Comment([]byte("note")))
	require.NoError(t, f.EndElement("urn:a", "a", "p:a"))

	assert.Equal(t, []string{"StartElement", "Characters"}, first.Kinds())
	assert.Equal(t, []string{"Characters", "Comment", "EndElement"}, second.Kinds())
	assert.Equal(t, "one", first.Events[1].Data)
	assert.Same(t, second, f.ContentHandler())
	assert.Same(t, second, f.LexicalHandler())
}

func TestFilterReturnsHandlerError(t *testing.T) {
	want := errors.New("stop")
	var f sax.Filter
	f.SetContentHandler(failingHandler{err: want})
	assert.ErrorIs(t, f.StartDocument(), want)
}

type failingHandler struct {
	sax.DefaultHandler
	err error
}

func (h failingHandler) StartDocument() error { return h.err }

func TestAttributes(t *testing.T) {
	attrs := sax.Attributes{
		{URI: "", Local: "id", QName: "id", Value: "7"},
		{URI: "urn:x", Local: "id", QName: "x:id", Value: "8"},
	}
	assert.Equal(t, 2, attrs.Len())
	assert.Equal(t, 1, attrs.Index("urn:x", "id"))
	assert.Equal(t, -1, attrs.Index("urn:y", "id"))
	assert.Equal(t, 1, attrs.IndexQName("x:id"))

	v, ok := attrs.Value("", "id")
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	c := attrs.Copy()
	c[0].Value = "changed"
	assert.Equal(t, "7", attrs[0].Value)
	assert.Nil(t, sax.Attributes(nil).Copy())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "ErrNotRecognized", fmt.Sprintf("%#v", sax.ErrNotRecognized))
	assert.Equal(t, "ErrNotSupported", sax.ErrNotSupported.GoString())

	err := sax.NotRecognized("urn:feature")
	assert.ErrorIs(t, err, sax.ErrNotRecognized)
	assert.Contains(t, err.Error(), `"urn:feature"`)
	assert.ErrorIs(t, sax.NotSupported(sax.FeatureNamespaces, false), sax.ErrNotSupported)
}

func TestParseError(t *testing.T) {
	cause := errors.New("bad object")
	pe := sax.NewParseError(cause)
	assert.Equal(t, -1, pe.Line)
	assert.Equal(t, -1, pe.Column)
	assert.Equal(t, "bad object", pe.Error())
	assert.ErrorIs(t, pe, cause)

	pe = &sax.ParseError{Msg: "oops", SystemID: "doc.xml", Line: 3, Column: 5}
	assert.Equal(t, "oops in doc.xml at row: 3 col: 5", pe.Error())

	var target *sax.ParseError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", pe), &target))
	assert.Equal(t, "oops", target.Msg)
}

func TestDefaultHandlerFatalError(t *testing.T) {
	var h sax.DefaultHandler
	pe := sax.NewParseError(errors.New("x"))
	assert.Equal(t, error(pe), h.FatalError(pe))
	assert.NoError(t, h.Error(pe))
	assert.NoError(t, h.Warning(pe))
}
