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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Goodwine/xmlsource/sax"
)

// tracer prints one line per event.
type tracer struct {
	sax.DefaultHandler
	w     io.Writer
	depth int
}

func (t *tracer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(t.w, "%s"+format+"\n", append([]interface{}{strings.Repeat("  ", t.depth)}, args...)...)
	return err
}

func (t *tracer) StartDocument() error { return t.printf("start document") }
func (t *tracer) EndDocument() error { return t.printf("end document") }

func (t *tracer) StartPrefixMapping(prefix, uri string) error {
	return t.printf("prefix %q -> %q", prefix, uri)
}

func (t *tracer) StartElement(uri, local, qname string, attrs sax.Attributes) error {
	var b strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&b, " {%s}%s=%q", a.URI, a.Local, a.Value)
	}
	err := t.printf("start {%s}%s%s", uri, local, b.String())
	t.depth++
	return err
}

func (t *tracer) EndElement(uri, local, qname string) error {
	t.depth--
	return t.printf("end {%s}%s", uri, local)
}

func (t *tracer) Characters(ch []byte) error { return t.printf("text %q", ch) }
func (t *tracer) Comment(ch []byte) error { return t.printf("comment %q", ch) }

func (t *tracer) ProcessingInstruction(target, data string) error {
	return t.printf("pi %s %q", target, data)
}
